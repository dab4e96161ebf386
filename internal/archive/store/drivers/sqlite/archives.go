package sqlite

import (
	"context"
	"database/sql"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
)

type archivesRepo struct {
	q querier
}

func (r *archivesRepo) CreateArchive(ctx context.Context, a domain.Archive) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO archives (id, title, description, author_id)
		 VALUES (?, ?, ?, ?)`,
		a.ID, a.Title, a.Description, nullableID(a.AuthorID))
	return mapConflict(err)
}

func (r *archivesRepo) GetArchiveByID(ctx context.Context, id string) (domain.Archive, error) {
	var a domain.Archive
	var author sql.NullString
	err := r.q.QueryRowContext(ctx,
		`SELECT id, title, description, author_id, created_at, updated_at
		 FROM archives WHERE id = ?`, id).
		Scan(&a.ID, &a.Title, &a.Description, &author, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Archive{}, mapNotFound(err)
	}
	a.AuthorID = idOrEmpty(author)
	return a, nil
}

func (r *archivesRepo) SearchArchives(ctx context.Context, q string, limit, offset int) ([]domain.Archive, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, title, description, author_id, created_at, updated_at
		 FROM archives
		 WHERE title LIKE '%' || ? || '%'
		 ORDER BY created_at DESC
		 LIMIT ? OFFSET ?`,
		q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Archive
	for rows.Next() {
		var a domain.Archive
		var author sql.NullString
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &author, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.AuthorID = idOrEmpty(author)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *archivesRepo) DeleteArchive(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM archives WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
