package service

import (
	"errors"
	"fmt"
)

// Kind classifies every failure an account operation can surface. The HTTP
// boundary maps kinds to status codes; nothing else leaks to callers.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a tagged failure. Message is safe to show to clients; Err holds
// the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// internalMessage is the only text an unexpected failure ever shows.
const internalMessage = "Internal server error"

var (
	ErrInvalidCredentials = &Error{Kind: KindBadRequest, Message: "Invalid email or password."}
	ErrEmailTaken         = &Error{Kind: KindBadRequest, Message: "Email has been used"}
	ErrPasswordMismatch   = &Error{Kind: KindBadRequest, Message: "Passwords do not match"}
	ErrWorkspaceTaken     = &Error{Kind: KindBadRequest, Message: "workspace name has been used. Choose unique name"}
	ErrNothingToUpdate    = &Error{Kind: KindBadRequest, Message: "No fields to update"}

	ErrTokenMissing = &Error{Kind: KindUnauthorized, Message: "Token is missing"}
	ErrTokenInvalid = &Error{Kind: KindUnauthorized, Message: "Token is invalid"}

	ErrNotAdmin             = &Error{Kind: KindForbidden, Message: "Forbidden for users without full privileges"}
	ErrCrossWorkspaceUpdate = &Error{Kind: KindForbidden, Message: "Action forbidden! Cannot edit user in another workspace"}
	ErrCrossWorkspaceDelete = &Error{Kind: KindForbidden, Message: "Action forbidden! Cannot remove user in another workspace"}

	ErrUserNotFound = &Error{Kind: KindNotFound, Message: "User not found"}
)

func badRequest(err error) *Error {
	return &Error{Kind: KindBadRequest, Message: err.Error(), Err: err}
}

func forbiddenWorkspace(workspace string) *Error {
	return &Error{
		Kind:    KindForbidden,
		Message: fmt.Sprintf("Forbidden. You are not authorized to add user to workspace %s", workspace),
	}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: internalMessage, Err: err}
}

// KindOf returns the kind of err. Untagged errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage returns the client-safe text for err.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return internalMessage
}
