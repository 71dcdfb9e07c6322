package repository

import (
	"context"

	"cards/internal/domain/entity"
	"cards/internal/domain/filter"
	"cards/internal/errors"
)

// ErrCardNotFound is returned when no card matches the lookup key.
var ErrCardNotFound = errors.New("card not found")

// CardRepository defines the operations for card persistence.
type CardRepository interface {
	// Create persists a new card and fills in the generated ID and timestamps.
	// Constraint violations are reported as domainerrors.ErrCardWriteFailed.
	Create(ctx context.Context, card *entity.Card) error

	// Update saves the mutable fields of an existing card. CreatedAt is never written.
	Update(ctx context.Context, card *entity.Card) error

	// Delete removes a card by ID. Returns ErrCardNotFound when nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a card regardless of owner.
	FindByID(ctx context.Context, id int64) (*entity.Card, error)

	// FindByIDAndOwner retrieves a card only when it belongs to ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Card, error)

	// FindByOwner lists every card of one owner ordered by ID.
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Card, error)

	// FindAll lists every card in storage ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Card, error)

	// Query returns the page of cards selected by spec.
	Query(ctx context.Context, spec *filter.Spec) (*filter.Page, error)
}
