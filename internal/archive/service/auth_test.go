package service

import (
	"context"
	"testing"
	"time"

	"github.com/docstash/docstash/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	hs, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	return &AuthService{
		Store:    newTestStore(t),
		Signer:   hs,
		Verifier: hs,
		Issuer:   "docstash-test",
		TokenTTL: time.Hour,
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)

	user, err := svc.Register(ctx, RegisterParams{
		Email:     "alice@example.com",
		Password:  "hunter22",
		Firstname: "Alice",
		Lastname:  "Archer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.True(t, user.IsActive)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterParams{
			Email:    "alice@example.com",
			Password: "other",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown email is distinct from bad password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		require.ErrorIs(t, err, ErrUserNotFound)

		_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("successful login yields verifiable token", func(t *testing.T) {
		token, got, err := svc.Login(ctx, "alice@example.com", "hunter22")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", claims.Subject)
	})

	t.Run("mismatched confirm password is accepted", func(t *testing.T) {
		// Confirm is not compared against the password; the account is
		// created from Password alone.
		u, err := svc.Register(ctx, RegisterParams{
			Email:           "bob@example.com",
			Password:        "correct",
			ConfirmPassword: "different",
		})
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, u.Email, "correct")
		require.NoError(t, err)
	})
}

func TestAuthVerifyToken(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := svc.VerifyToken("not.a.jwt")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong secret is invalid", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("different-secret"))
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewAccessClaims("alice@example.com", nil, time.Hour, svc.Issuer, time.Now().UTC()))
		require.NoError(t, err)

		_, verr := svc.VerifyToken(tok)
		require.ErrorIs(t, verr, ErrTokenInvalid)
	})

	t.Run("expired is reported distinctly", func(t *testing.T) {
		tok, err := svc.Signer.Sign(jwtx.NewAccessClaims(
			"alice@example.com", nil, time.Hour, svc.Issuer,
			time.Now().UTC().Add(-2*time.Hour)))
		require.NoError(t, err)

		_, verr := svc.VerifyToken(tok)
		require.ErrorIs(t, verr, ErrTokenExpired)
	})

	t.Run("issuer mismatch is invalid", func(t *testing.T) {
		tok, err := svc.Signer.Sign(jwtx.NewAccessClaims(
			"alice@example.com", nil, time.Hour, "someone-else", time.Now().UTC()))
		require.NoError(t, err)

		_, verr := svc.VerifyToken(tok)
		require.ErrorIs(t, verr, ErrTokenInvalid)
	})
}

func TestCurrentActiveUserGate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newAuthService(t)

	user, err := svc.Register(ctx, RegisterParams{Email: "carol@example.com", Password: "pw"})
	require.NoError(t, err)

	got, err := svc.CurrentActiveUser(ctx, user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	t.Run("vanished subject", func(t *testing.T) {
		_, err := svc.CurrentActiveUser(ctx, "ghost@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		pw := &PasswordService{Store: svc.Store, Mail: discardNotifier{}}
		require.NoError(t, pw.Deactivate(ctx, user.ID))
		// idempotent
		require.NoError(t, pw.Deactivate(ctx, user.ID))

		_, err := svc.CurrentActiveUser(ctx, user.Email)
		require.ErrorIs(t, err, ErrInactiveUser)
	})
}

type discardNotifier struct{}

func (discardNotifier) Enqueue(to, subject, htmlBody string) {}
