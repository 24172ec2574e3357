package postgres

import (
	"context"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
)

type usersRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.PublicID,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.Workspace,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *usersRepo) GetUserByPublicID(ctx context.Context, publicID string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserByPublicID, publicID))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, getUserByEmail, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsersByWorkspace(ctx context.Context, workspace string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersByWorkspace, workspace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) PublicIDExists(ctx context.Context, publicID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, publicIDExists, publicID).Scan(&exists)
	return exists, err
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUser,
		u.PublicID,
		u.Email,
		u.FullName,
		u.PasswordHash,
		u.Workspace,
		u.IsAdmin,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, publicID string, newHash string) error {
	res, err := r.db.ExecContext(ctx, updateUserPasswordHash, newHash, publicID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdateUser(ctx context.Context, publicID string, patch domain.UserPatch) error {
	res, err := r.db.ExecContext(ctx, updateUser,
		mapOptionalString(patch.Email),
		mapOptionalString(patch.FullName),
		mapOptionalString(patch.PasswordHash),
		publicID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, publicID string) error {
	res, err := r.db.ExecContext(ctx, deleteUser, publicID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
