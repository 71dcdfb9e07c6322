package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cards/internal/delivery/context"
	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/filter"
	"cards/internal/domain/repository"
	"cards/internal/domain/service"
	"cards/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	memberOrAdmin = entity.Roles{entity.RoleMember, entity.RoleAdmin}
	adminOnly     = entity.Roles{entity.RoleAdmin}
)

// cardService implements the CardUsecase interface.
type cardService struct {
	txManager repository.TransactionManager
	cardRepo  repository.CardRepository
	guard     service.AuthorizationGuard
	logger    *slog.Logger
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CardRepo  repository.CardRepository
	Guard     service.AuthorizationGuard
	Logger    *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	return &cardService{
		txManager: params.TxManager,
		cardRepo:  params.CardRepo,
		guard:     params.Guard,
		logger:    params.Logger,
	}
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

func (srv *cardService) ListAllCards(ctx context.Context, identity *entity.Identity) ([]*entity.Card, error) {
	if err := srv.guard.Authorize(identity, adminOnly, nil); err != nil {
		return nil, err
	}

	cards, err := srv.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all cards")
	}

	return cards, nil
}

func (srv *cardService) ListUserCards(ctx context.Context, identity *entity.Identity, userID int64) ([]*entity.Card, error) {
	if err := srv.guard.Authorize(identity, memberOrAdmin, &userID); err != nil {
		return nil, err
	}

	cards, err := srv.cardRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list cards of user %d", userID)
	}

	return cards, nil
}

// CreateCard stores a card owned by the caller.
func (srv *cardService) CreateCard(ctx context.Context, identity *entity.Identity, input *usecase.CreateCardInput) (*entity.Card, error) {
	if err := srv.guard.Authorize(identity, memberOrAdmin, nil); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "card name is required")
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}

	status := entity.CardStatusToDo
	if input.Status != nil {
		parsed, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	card := &entity.Card{
		OwnerID:     identity.PrincipalID,
		Name:        name,
		Description: input.Description,
		Color:       input.Color,
		Status:      status,
	}

	if err := srv.cardRepo.Create(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to create card")
	}

	srv.log(ctx).Debug("Card created", slog.Int64("cardID", card.ID), slog.Int64("ownerID", card.OwnerID))

	return card, nil
}

// GetCard returns a card to its owner or an admin. For other callers a foreign
// card is reported as not found.
func (srv *cardService) GetCard(ctx context.Context, identity *entity.Identity, cardID int64) (*entity.Card, error) {
	if err := srv.guard.Authorize(identity, memberOrAdmin, nil); err != nil {
		return nil, err
	}

	var (
		card *entity.Card
		err  error
	)
	if identity.IsAdmin() {
		card, err = srv.cardRepo.FindByID(ctx, cardID)
	} else {
		card, err = srv.cardRepo.FindByIDAndOwner(ctx, cardID, identity.PrincipalID)
	}
	if err != nil {
		return nil, mapCardLookupError(err, cardID)
	}

	if err := srv.guard.Authorize(identity, memberOrAdmin, &card.OwnerID); err != nil {
		return nil, err
	}

	return card, nil
}

// UpdateCard loads, authorizes and rewrites the card in one transaction.
func (srv *cardService) UpdateCard(
	ctx context.Context,
	identity *entity.Identity,
	cardID int64,
	input *usecase.UpdateCardInput,
) (*entity.Card, error) {
	if err := srv.guard.Authorize(identity, memberOrAdmin, nil); err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}

	var updated *entity.Card
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cardRepo := repoFactory.NewCardRepository()

		card, err := cardRepo.FindByID(ctx, cardID)
		if err != nil {
			return mapCardLookupError(err, cardID)
		}

		if err := srv.guard.Authorize(identity, memberOrAdmin, &card.OwnerID); err != nil {
			return err
		}

		if err := applyCardUpdate(card, input); err != nil {
			return err
		}

		if err := cardRepo.Update(ctx, card); err != nil {
			return errors.Wrap(err, "failed to update card")
		}
		updated = card

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCard removes a card. Missing cards yield 404 and foreign cards 403.
func (srv *cardService) DeleteCard(ctx context.Context, identity *entity.Identity, cardID int64) error {
	if err := srv.guard.Authorize(identity, memberOrAdmin, nil); err != nil {
		return err
	}

	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return mapCardLookupError(err, cardID)
	}

	if err := srv.guard.Authorize(identity, memberOrAdmin, &card.OwnerID); err != nil {
		return err
	}

	if err := srv.cardRepo.Delete(ctx, cardID); err != nil {
		return mapCardLookupError(err, cardID)
	}

	srv.log(ctx).Info("Card deleted", slog.Int64("cardID", cardID), slog.Int64("principalID", identity.PrincipalID))

	return nil
}

// FilterUserCards returns one page of the user's cards narrowed by the filters.
func (srv *cardService) FilterUserCards(
	ctx context.Context,
	identity *entity.Identity,
	userID int64,
	filters filter.RawFilters,
	paging filter.RawPagination,
) (*filter.Page, error) {
	if err := srv.guard.Authorize(identity, memberOrAdmin, &userID); err != nil {
		return nil, err
	}

	spec, err := filter.Build(userID, filters, paging)
	if err != nil {
		return nil, err
	}

	page, err := srv.cardRepo.Query(ctx, spec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to filter cards of user %d", userID)
	}

	return page, nil
}

// applyCardUpdate merges input into card. CreatedAt is never touched.
func applyCardUpdate(card *entity.Card, input *usecase.UpdateCardInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "card name must not be empty")
		}
		card.Name = name
	}

	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return err
		}
		card.Status = status
	}

	card.Description = input.Description
	card.Color = input.Color

	return nil
}

func parseStatus(raw string) (entity.CardStatus, error) {
	status, err := entity.ParseCardStatus(raw)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUnknownCardStatus, err.Error())
	}

	return status, nil
}

func validateColor(color *string) error {
	if color != nil && !entity.IsValidCardColor(*color) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "color %q must be '#' followed by 6 hex digits", *color)
	}

	return nil
}

func mapCardLookupError(err error, cardID int64) error {
	if errors.Is(err, repository.ErrCardNotFound) {
		return errors.Wrapf(domainerrors.ErrCardNotFound, "card %d", cardID)
	}

	return errors.Wrapf(err, "failed to load card %d", cardID)
}
