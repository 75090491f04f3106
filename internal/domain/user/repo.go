package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repo is the credential store contract. The *WithHash variants are the only
// lookups that load password_hash; the default getters omit it at query
// level so a hash can never ride along by accident.
type Repo interface {
	// Create persists a new user and maps a unique-constraint violation on
	// email to ErrAlreadyExists. The constraint, not the caller's pre-check,
	// is the authoritative duplicate guard.
	Create(ctx context.Context, u User) (uuid.UUID, error)

	GetByID(ctx context.Context, id uuid.UUID) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	GetByIDWithHash(ctx context.Context, id uuid.UUID) (User, error)

	GetByEmailWithHash(ctx context.Context, email string) (User, error)

	Update(ctx context.Context, u User) error

	// UpdateLastLogin touches only the last_login_at column.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
