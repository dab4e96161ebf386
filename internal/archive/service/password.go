package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/cryptox"
	"github.com/docstash/docstash/pkg/idx"
)

// ResetNotifier is the slice of the mail dispatcher the password flows need.
// Enqueue must not block; delivery is best-effort.
type ResetNotifier interface {
	Enqueue(to, subject, htmlBody string)
}

// PasswordService owns the credential lifecycle: forgot/reset via mailed
// one-time codes, authenticated change, and account deactivation.
type PasswordService struct {
	Store store.Store
	Mail  ResetNotifier

	// ResetBaseURL is the front-end page the mailed link points at; the code
	// is appended as a query parameter.
	ResetBaseURL string
}

// ForgotPassword mints a single-use reset code for the account and queues
// the notification mail. The code is committed before the mail is attempted,
// so a delivery failure never invalidates it.
func (s *PasswordService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rc := domain.ResetCode{
		ID:        idx.New().String(),
		Email:     user.Email,
		Code:      code,
		UserID:    user.ID,
		ExpiresAt: now.Add(domain.ResetCodeTTL),
	}
	if err := s.Store.ResetCodes().CreateResetCode(ctx, rc); err != nil {
		return err
	}

	s.Mail.Enqueue(user.Email, "Password reset", resetMailBody(s.ResetBaseURL, code))
	return nil
}

// ResetPassword redeems a code. The lookup, hash update and code deletion
// run in one transaction so a concurrent second redemption of the same code
// observes either nothing or the consumed state, never a partial commit.
func (s *PasswordService) ResetPassword(ctx context.Context, code, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		rc, err := tx.ResetCodes().GetResetCodeByCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrResetCodeExpired
			}
			return err
		}
		if rc.Expired(time.Now().UTC()) {
			return ErrResetCodeExpired
		}

		if _, err := tx.Users().GetUserByID(ctx, rc.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := tx.Users().UpdatePasswordHash(ctx, rc.UserID, hash); err != nil {
			return err
		}

		// A zero-row delete means another transaction consumed the code first.
		if err := tx.ResetCodes().DeleteResetCode(ctx, rc.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrResetCodeExpired
			}
			return err
		}
		return nil
	})
}

// ChangePassword rotates the hash after re-proving the current password.
func (s *PasswordService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}

// Deactivate flips the account inactive. Calling it twice is a no-op, not
// an error.
func (s *PasswordService) Deactivate(ctx context.Context, userID string) error {
	err := s.Store.Users().SetActive(ctx, userID, false)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func resetMailBody(baseURL, code string) string {
	link := fmt.Sprintf("%s?reset_password_token=%s", baseURL, code)
	return fmt.Sprintf(
		`<html><body>`+
			`<p>A password reset was requested for your account.</p>`+
			`<p><a href=%q>Reset your password</a></p>`+
			`<p>The link is valid for %d hours. If you did not request this, you can ignore this message.</p>`+
			`</body></html>`,
		link, int(domain.ResetCodeTTL.Hours()))
}
