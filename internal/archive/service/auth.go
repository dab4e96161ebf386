package service

import (
	"context"
	"errors"
	"time"

	"github.com/docstash/docstash/internal/archive/domain"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/pkg/cryptox"
	"github.com/docstash/docstash/pkg/idx"
	"github.com/docstash/docstash/pkg/jwtx"
)

// AuthService owns login, registration and token verification. Tokens are
// self-contained HS256 JWTs with the account email as subject; there is no
// server-side session state.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	Issuer   string
	TokenTTL time.Duration

	// InitialRoles are granted to every account created through Register.
	InitialRoles []string
}

// RegisterParams carries the registration form. ConfirmPassword is accepted
// but not compared against Password; see DESIGN.md for why the original
// contract is preserved.
type RegisterParams struct {
	Email           string
	Password        string
	ConfirmPassword string
	Firstname       string
	Lastname        string
	Middlename      string
}

// Login authenticates by email and password and mints an access token.
// An unknown email is reported distinctly from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrUserNotFound
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.mintToken(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Register creates a new active account. The email is the uniqueness key.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        p.Email,
		PasswordHash: hash,
		Firstname:    p.Firstname,
		Lastname:     p.Lastname,
		Middlename:   p.Middlename,
		IsActive:     true,
		Roles:        s.InitialRoles,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}
	return user, nil
}

// VerifyToken checks signature, issuer and expiry, in that order, so an
// expired-but-genuine token yields ErrTokenExpired rather than the generic
// ErrTokenInvalid.
func (s *AuthService) VerifyToken(token string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, ErrTokenInvalid
	}
	if err := claims.ValidateIssuer(s.Issuer); err != nil {
		return jwtx.Claims{}, ErrTokenInvalid
	}
	if err := claims.ValidateExpiry(); err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return jwtx.Claims{}, ErrTokenExpired
		}
		return jwtx.Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

// CurrentActiveUser resolves a token subject to an account and enforces the
// active gate used by every authenticated endpoint.
func (s *AuthService) CurrentActiveUser(ctx context.Context, subject string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	if !user.IsActive {
		return domain.User{}, ErrInactiveUser
	}
	return user, nil
}

func (s *AuthService) mintToken(user domain.User) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(user.Email, user.Roles, ttl, s.Issuer, time.Now().UTC())
	return s.Signer.Sign(claims)
}
