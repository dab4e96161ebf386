package store

import (
	"context"
	"errors"

	"github.com/docstash/docstash/internal/archive/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally opening transactions
// within transactions.
type Store interface {
	Users() Users
	ResetCodes() ResetCodes
	Archives() Archives
	Workspaces() Workspaces

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., password
	// reset). The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error, the transaction is rolled back; otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the lookup used by login and token-subject
	// resolution. Email comparison is case-sensitive as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetActive flips the is_active flag and bumps updated_at.
	SetActive(ctx context.Context, userID string, active bool) error
}

type ResetCodes interface {
	// CreateResetCode persists a freshly minted reset code.
	CreateResetCode(ctx context.Context, rc domain.ResetCode) error

	// GetResetCodeByCode fetches a code by its opaque token value.
	GetResetCodeByCode(ctx context.Context, code string) (domain.ResetCode, error)

	// DeleteResetCode consumes a code. Returns ErrNotFound when the code was
	// already consumed, letting concurrent redeemers detect they lost.
	DeleteResetCode(ctx context.Context, id string) error

	// DeleteExpiredResetCodes is housekeeping.
	DeleteExpiredResetCodes(ctx context.Context) error
}

type Archives interface {
	CreateArchive(ctx context.Context, a domain.Archive) error
	GetArchiveByID(ctx context.Context, id string) (domain.Archive, error)

	// SearchArchives returns archives whose title contains q, ordered by
	// creation date (newest first), with limit/offset pagination.
	SearchArchives(ctx context.Context, q string, limit, offset int) ([]domain.Archive, error)

	DeleteArchive(ctx context.Context, id string) error
}

type Workspaces interface {
	CreateWorkspace(ctx context.Context, w domain.Workspace) error
	GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
}
