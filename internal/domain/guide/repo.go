package guide

import (
	"context"

	"github.com/google/uuid"
)

// Repo abstracts guide storage. Listings are ordered by creation time so
// every backend pages through the same sequence.
type Repo interface {
	Create(ctx context.Context, g Guide) (uuid.UUID, error)

	GetByID(ctx context.Context, id uuid.UUID) (Guide, error)

	Update(ctx context.Context, g Guide) error

	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of guides matching the filter plus the total
	// match count across all pages.
	List(ctx context.Context, f Filter, offset, limit int) ([]Guide, int64, error)
}
