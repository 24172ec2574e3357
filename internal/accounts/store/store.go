package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so a Tx can
// hand out the same repos bound to the transaction.
type Store interface {
	Users() Users
	Workspaces() Workspaces

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It commits when fn returns
	// nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByPublicID resolves a token subject.
	GetUserByPublicID(ctx context.Context, publicID string) (domain.User, error)

	// GetUserByEmail expects an already lower-cased email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsersByWorkspace returns every user of the workspace, oldest first.
	ListUsersByWorkspace(ctx context.Context, workspace string) ([]domain.User, error)

	// PublicIDExists is used to collision-check freshly generated public IDs.
	PublicIDExists(ctx context.Context, publicID string) (bool, error)

	// CreateUser inserts a new user. A duplicate email or public ID yields
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash overwrites the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, publicID string, newHash string) error

	// UpdateUser applies the non-nil fields of patch and bumps updated_at.
	UpdateUser(ctx context.Context, publicID string, patch domain.UserPatch) error

	// DeleteUser removes the user. The workspace row is left in place.
	DeleteUser(ctx context.Context, publicID string) error
}

type Workspaces interface {
	GetWorkspaceByName(ctx context.Context, name string) (domain.Workspace, error)

	// CreateWorkspace yields ErrAlreadyExists when the name is taken.
	CreateWorkspace(ctx context.Context, w domain.Workspace) error
}
