package domain

import "time"

// User is a single account. Workspace is the name of the one workspace the
// user belongs to; it is fixed at creation.
type User struct {
	PublicID     string
	Email        string
	FullName     string
	PasswordHash string
	Workspace    string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SameWorkspace reports whether u and other belong to the same workspace.
func (u User) SameWorkspace(other User) bool {
	return u.Workspace == other.Workspace
}

// UserPatch carries the fields of a partial user update. Nil fields are left
// untouched.
type UserPatch struct {
	Email        *string
	FullName     *string
	PasswordHash *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.FullName == nil && p.PasswordHash == nil
}
