// Package policy holds the workspace and privilege rules. Every function is
// pure: callers load the acting user and the target, and policy decides.
package policy

import (
	"errors"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
)

var (
	// ErrNotAdmin is returned when a member attempts an admin-only action.
	ErrNotAdmin = errors.New("policy: caller is not an admin")

	// ErrCrossWorkspace is returned when an admin reaches outside their
	// own workspace.
	ErrCrossWorkspace = errors.New("policy: target belongs to another workspace")

	// ErrWorkspaceTaken is returned when an anonymous registration names a
	// workspace that already exists.
	ErrWorkspaceTaken = errors.New("policy: workspace already exists")
)

// Registration is the outcome of an allowed registration.
type Registration struct {
	// Admin is the privilege level the new user is created with.
	Admin bool
	// CreateWorkspace is set when the named workspace must be created first.
	CreateWorkspace bool
}

// CanRegister reports whether caller may register users at all. A nil caller
// is an anonymous self-registration and is always allowed.
func CanRegister(caller *domain.User) error {
	if caller != nil && !caller.IsAdmin {
		return ErrNotAdmin
	}
	return nil
}

// Register decides whether caller may create a user in workspace and with
// which privilege.
//
//   - a brand-new workspace is created and its first user is an admin
//   - an admin adding to their own existing workspace creates a member
//   - an admin naming someone else's existing workspace is refused
//   - an anonymous caller naming an existing workspace is refused
func Register(caller *domain.User, workspace string, workspaceExists bool) (Registration, error) {
	if err := CanRegister(caller); err != nil {
		return Registration{}, err
	}

	if !workspaceExists {
		return Registration{Admin: true, CreateWorkspace: true}, nil
	}

	switch {
	case caller == nil:
		return Registration{}, ErrWorkspaceTaken
	case caller.Workspace != workspace:
		return Registration{}, ErrCrossWorkspace
	default:
		return Registration{Admin: false}, nil
	}
}

// RequireAdmin reports whether actor may manage users at all.
func RequireAdmin(actor domain.User) error {
	if !actor.IsAdmin {
		return ErrNotAdmin
	}
	return nil
}

// ManageUser reports whether actor may update or delete target. Only admins
// may, and only inside their own workspace.
func ManageUser(actor, target domain.User) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if !actor.SameWorkspace(target) {
		return ErrCrossWorkspace
	}
	return nil
}
