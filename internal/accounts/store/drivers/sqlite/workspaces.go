package sqlite

import (
	"context"

	"github.com/aussiebroadwan/dotes/internal/accounts/domain"
)

type workspacesRepo struct {
	db dbtx
}

func (r *workspacesRepo) GetWorkspaceByName(ctx context.Context, name string) (domain.Workspace, error) {
	var w domain.Workspace
	err := r.db.QueryRowContext(ctx, getWorkspaceByName, name).Scan(&w.ID, &w.Name, &w.CreatedAt)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return w, nil
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	_, err := r.db.ExecContext(ctx, createWorkspace, w.ID, w.Name)
	return mapConstraint(err)
}
