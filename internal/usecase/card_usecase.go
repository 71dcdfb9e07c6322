package usecase

import (
	"context"

	"cards/internal/domain/entity"
	"cards/internal/domain/filter"
)

// CreateCardInput carries the fields of a new card. Status defaults to To Do.
type CreateCardInput struct {
	Name        string
	Description *string
	Color       *string
	Status      *string
}

// UpdateCardInput carries a card update.
// Name and Status are changed only when set. Description and Color are
// replaced by whatever is given, so leaving them nil clears them.
type UpdateCardInput struct {
	Name        *string
	Description *string
	Color       *string
	Status      *string
}

// CardUsecase defines the card operations. Every call is authorized against the identity.
type CardUsecase interface {
	ListAllCards(ctx context.Context, identity *entity.Identity) ([]*entity.Card, error)
	ListUserCards(ctx context.Context, identity *entity.Identity, userID int64) ([]*entity.Card, error)
	CreateCard(ctx context.Context, identity *entity.Identity, input *CreateCardInput) (*entity.Card, error)
	GetCard(ctx context.Context, identity *entity.Identity, cardID int64) (*entity.Card, error)
	UpdateCard(ctx context.Context, identity *entity.Identity, cardID int64, input *UpdateCardInput) (*entity.Card, error)
	DeleteCard(ctx context.Context, identity *entity.Identity, cardID int64) error
	FilterUserCards(
		ctx context.Context,
		identity *entity.Identity,
		userID int64,
		filters filter.RawFilters,
		paging filter.RawPagination,
	) (*filter.Page, error)
}
