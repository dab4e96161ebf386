package sqlite

import (
	"context"
	"database/sql"

	"github.com/docstash/docstash/internal/archive/domain"
)

type workspacesRepo struct {
	q querier
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, slug, description, author_id)
		 VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Slug, w.Description, nullableID(w.AuthorID))
	return mapConflict(err)
}

func (r *workspacesRepo) GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	var w domain.Workspace
	var author sql.NullString
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, slug, description, author_id, created_at, updated_at
		 FROM workspaces WHERE id = ?`, id).
		Scan(&w.ID, &w.Name, &w.Slug, &w.Description, &author, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	w.AuthorID = idOrEmpty(author)
	return w, nil
}

func (r *workspacesRepo) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, slug, description, author_id, created_at, updated_at
		 FROM workspaces ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Workspace
	for rows.Next() {
		var w domain.Workspace
		var author sql.NullString
		if err := rows.Scan(&w.ID, &w.Name, &w.Slug, &w.Description, &author, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		w.AuthorID = idOrEmpty(author)
		out = append(out, w)
	}
	return out, rows.Err()
}
