package service

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxEmailLength    = 254
	maxFullNameLength = 100
	maxWorkspaceLen   = 64
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// presence is validation.Required for mandatory fields and
// validation.NilOrNotEmpty for optional pointer fields.
func emailRules(presence validation.Rule) []validation.Rule {
	return []validation.Rule{
		presence,
		validation.Length(3, maxEmailLength),
		validation.Match(emailPattern).Error("must be a valid email address"),
	}
}

func passwordRules(presence validation.Rule) []validation.Rule {
	return []validation.Rule{
		presence,
		validation.Length(minPasswordLength, maxPasswordLength),
	}
}

func fullNameRules(presence validation.Rule) []validation.Rule {
	return []validation.Rule{
		presence,
		validation.Length(1, maxFullNameLength),
	}
}

// normalizeEmail is applied before every lookup and every write.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, emailRules(validation.Required)...),
		validation.Field(&in.Password, validation.Required),
	)
}

type RegisterInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
	FullName       string `json:"fullname"`
	Workspace      string `json:"workspace"`
}

func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, emailRules(validation.Required)...),
		validation.Field(&in.Password, passwordRules(validation.Required)...),
		validation.Field(&in.RepeatPassword, validation.Required),
		validation.Field(&in.FullName, fullNameRules(validation.Required)...),
		validation.Field(&in.Workspace,
			validation.Required,
			validation.Length(1, maxWorkspaceLen),
			is.PrintableASCII,
		),
	)
}

type ChangePasswordInput struct {
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

func (in ChangePasswordInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Password, passwordRules(validation.Required)...),
		validation.Field(&in.RepeatPassword, validation.Required),
	)
}

// UpdateUserInput is a partial update. Only non-nil fields are validated
// and applied.
type UpdateUserInput struct {
	Email          *string `json:"email,omitempty"`
	FullName       *string `json:"fullname,omitempty"`
	Password       *string `json:"password,omitempty"`
	RepeatPassword *string `json:"repeat_password,omitempty"`
}

// Empty reports whether no updatable field is present.
func (in UpdateUserInput) Empty() bool {
	return in.Email == nil && in.FullName == nil && in.Password == nil
}

func (in UpdateUserInput) Validate() error {
	var repeat []validation.Rule
	if in.Password != nil {
		repeat = append(repeat, validation.Required)
	}

	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, emailRules(validation.NilOrNotEmpty)...),
		validation.Field(&in.FullName, fullNameRules(validation.NilOrNotEmpty)...),
		validation.Field(&in.Password, passwordRules(validation.NilOrNotEmpty)...),
		validation.Field(&in.RepeatPassword, repeat...),
	)
}
