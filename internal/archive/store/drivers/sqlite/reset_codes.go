package sqlite

import (
	"context"
	"time"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
)

type resetCodesRepo struct {
	q querier
}

func (r *resetCodesRepo) CreateResetCode(ctx context.Context, rc domain.ResetCode) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO reset_codes (id, email, code, user_id, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rc.ID, rc.Email, rc.Code, rc.UserID, rc.ExpiresAt)
	return mapConflict(err)
}

func (r *resetCodesRepo) GetResetCodeByCode(ctx context.Context, code string) (domain.ResetCode, error) {
	var rc domain.ResetCode
	err := r.q.QueryRowContext(ctx,
		`SELECT id, email, code, user_id, expires_at, created_at
		 FROM reset_codes WHERE code = ?`, code).
		Scan(&rc.ID, &rc.Email, &rc.Code, &rc.UserID, &rc.ExpiresAt, &rc.CreatedAt)
	if err != nil {
		return domain.ResetCode{}, mapNotFound(err)
	}
	return rc, nil
}

// DeleteResetCode reports ErrNotFound when no row was deleted so concurrent
// redeemers of the same code can tell they lost the race.
func (r *resetCodesRepo) DeleteResetCode(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM reset_codes WHERE id = ?`, id)
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

func (r *resetCodesRepo) DeleteExpiredResetCodes(ctx context.Context) error {
	// Bind now as a parameter so the comparison uses the same time encoding
	// the driver used when the row was inserted.
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM reset_codes WHERE expires_at < ?`, time.Now().UTC())
	return err
}
