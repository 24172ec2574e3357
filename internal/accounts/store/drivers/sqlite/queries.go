package sqlite

import (
	"context"
	"database/sql"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repos run unchanged
// inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const userColumns = `public_id, email, full_name, password_hash, workspace, is_admin, created_at, updated_at`

const (
	getUserByPublicID = `SELECT ` + userColumns + ` FROM users WHERE public_id = ?`

	getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	listUsersByWorkspace = `SELECT ` + userColumns + ` FROM users WHERE workspace = ? ORDER BY created_at, rowid`

	countUsersByPublicID = `SELECT COUNT(*) FROM users WHERE public_id = ?`

	createUser = `
INSERT INTO users (public_id, email, full_name, password_hash, workspace, is_admin)
VALUES (?, ?, ?, ?, ?, ?)`

	updateUserPasswordHash = `
UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
WHERE public_id = ?`

	updateUser = `
UPDATE users SET
    email         = COALESCE(?, email),
    full_name     = COALESCE(?, full_name),
    password_hash = COALESCE(?, password_hash),
    updated_at    = CURRENT_TIMESTAMP
WHERE public_id = ?`

	deleteUser = `DELETE FROM users WHERE public_id = ?`

	getWorkspaceByName = `SELECT id, name, created_at FROM workspaces WHERE name = ?`

	createWorkspace = `INSERT INTO workspaces (id, name) VALUES (?, ?)`
)
