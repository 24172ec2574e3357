package postgres

import (
	"context"
	"database/sql"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const userColumns = `public_id, email, full_name, password_hash, workspace, is_admin, created_at, updated_at`

const (
	getUserByPublicID = `SELECT ` + userColumns + ` FROM users WHERE public_id = $1`

	getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	listUsersByWorkspace = `SELECT ` + userColumns + ` FROM users WHERE workspace = $1 ORDER BY created_at, email`

	publicIDExists = `SELECT EXISTS (SELECT 1 FROM users WHERE public_id = $1)`

	createUser = `
INSERT INTO users (public_id, email, full_name, password_hash, workspace, is_admin)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateUserPasswordHash = `
UPDATE users SET password_hash = $1, updated_at = now()
WHERE public_id = $2`

	updateUser = `
UPDATE users SET
    email         = COALESCE($1, email),
    full_name     = COALESCE($2, full_name),
    password_hash = COALESCE($3, password_hash),
    updated_at    = now()
WHERE public_id = $4`

	deleteUser = `DELETE FROM users WHERE public_id = $1`

	getWorkspaceByName = `SELECT id, name, created_at FROM workspaces WHERE name = $1`

	createWorkspace = `INSERT INTO workspaces (id, name) VALUES ($1, $2)`
)
