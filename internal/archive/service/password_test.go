package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/cryptox"
	"github.com/docstash/docstash/pkg/idx"
	"github.com/stretchr/testify/require"
)

// captureNotifier records enqueued mail for assertions.
type captureNotifier struct {
	to      []string
	subject []string
	body    []string
}

func (c *captureNotifier) Enqueue(to, subject, htmlBody string) {
	c.to = append(c.to, to)
	c.subject = append(c.subject, subject)
	c.body = append(c.body, htmlBody)
}

func seedUser(t *testing.T, st store.Store, email, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestForgotPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	notifier := &captureNotifier{}
	svc := &PasswordService{Store: st, Mail: notifier, ResetBaseURL: "https://app.example.com/reset"}

	t.Run("unknown email", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, "ghost@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
		require.Empty(t, notifier.to)
	})

	user := seedUser(t, st, "dora@example.com", "original")

	t.Run("mints code and queues mail", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(ctx, user.Email))

		require.Equal(t, []string{user.Email}, notifier.to)
		require.Contains(t, notifier.body[0], "https://app.example.com/reset?reset_password_token=")

		// The mailed link carries a code that resolves in the store.
		_, after, ok := strings.Cut(notifier.body[0], "reset_password_token=")
		require.True(t, ok)
		code := after[:strings.IndexByte(after, '"')]

		rc, err := st.ResetCodes().GetResetCodeByCode(ctx, code)
		require.NoError(t, err)
		require.Equal(t, user.ID, rc.UserID)
		require.WithinDuration(t, time.Now().UTC().Add(domain.ResetCodeTTL), rc.ExpiresAt, time.Minute)
	})
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := &PasswordService{Store: st, Mail: discardNotifier{}}

	user := seedUser(t, st, "erin@example.com", "before")

	mint := func(t *testing.T, expiresAt time.Time) domain.ResetCode {
		t.Helper()
		code, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		rc := domain.ResetCode{
			ID:        idx.New().String(),
			Email:     user.Email,
			Code:      code,
			UserID:    user.ID,
			ExpiresAt: expiresAt,
		}
		require.NoError(t, st.ResetCodes().CreateResetCode(ctx, rc))
		return rc
	}

	t.Run("confirm mismatch wins over everything", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "whatever", "new", "different")
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("unknown code", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "no-such-code", "new", "new")
		require.ErrorIs(t, err, ErrResetCodeExpired)
	})

	t.Run("expired code", func(t *testing.T) {
		rc := mint(t, time.Now().UTC().Add(-time.Minute))
		err := svc.ResetPassword(ctx, rc.Code, "new", "new")
		require.ErrorIs(t, err, ErrResetCodeExpired)
	})

	t.Run("success updates hash and consumes the code", func(t *testing.T) {
		rc := mint(t, time.Now().UTC().Add(domain.ResetCodeTTL))
		require.NoError(t, svc.ResetPassword(ctx, rc.Code, "after", "after"))

		got, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("after", got.PasswordHash))
		require.ErrorIs(t, cryptox.VerifyPassword("before", got.PasswordHash), cryptox.ErrPasswordMismatch)

		// Single use: the second redemption must fail.
		err = svc.ResetPassword(ctx, rc.Code, "third", "third")
		require.ErrorIs(t, err, ErrResetCodeExpired)
	})
}

func TestDeactivateUnknownUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := &PasswordService{Store: st, Mail: discardNotifier{}}

	err := svc.Deactivate(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)
	svc := &PasswordService{Store: st, Mail: discardNotifier{}}

	user := seedUser(t, st, "finn@example.com", "old-pw")

	t.Run("confirm mismatch", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "old-pw", "new", "other")
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "not-it", "new-pw", "new-pw")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rotates the hash", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, user.ID, "old-pw", "new-pw", "new-pw"))

		got, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("new-pw", got.PasswordHash))
	})
}
