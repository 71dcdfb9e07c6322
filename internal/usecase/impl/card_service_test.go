package impl

import (
	"context"
	"testing"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/filter"
	"cards/internal/domain/repository"
	"cards/internal/infra/auth"
	mockRepo "cards/internal/mocks/repository"
	"cards/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cardServiceFixtures struct {
	service   usecase.CardUsecase
	cardRepo  *mockRepo.MockCardRepository
	txManager *mockRepo.MockTransactionManager
	txRepo    *mockRepo.MockCardRepository
}

func createTestCardService(t *testing.T) cardServiceFixtures {
	cardRepo := mockRepo.NewMockCardRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	srv := NewCardService(CardServiceParams{
		TxManager: txManager,
		CardRepo:  cardRepo,
		Guard:     auth.NewOwnershipGuard(),
		Logger:    newDiscardLogger(),
	})

	return cardServiceFixtures{
		service:   srv,
		cardRepo:  cardRepo,
		txManager: txManager,
		txRepo:    mockRepo.NewMockCardRepository(t),
	}
}

// expectTransaction runs the callback against a factory handing out txRepo.
func (fx cardServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCardRepository().Return(fx.txRepo)

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func sampleCard(id, ownerID int64) *entity.Card {
	return &entity.Card{
		ID:          id,
		OwnerID:     ownerID,
		Name:        "Write report",
		Description: strPtr("quarterly"),
		Color:       strPtr("#A1B2C3"),
		Status:      entity.CardStatusToDo,
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCardService_CreateCard(t *testing.T) {
	t.Run("defaults status to To Do and assigns the caller as owner", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().Create(ctx, mock.MatchedBy(func(card *entity.Card) bool {
			return card.OwnerID == 7 && card.Name == "Groceries" && card.Status == entity.CardStatusToDo
		})).RunAndReturn(func(_ context.Context, card *entity.Card) error {
			card.ID = 11
			return nil
		})

		card, err := fx.service.CreateCard(ctx, memberIdentity(7), &usecase.CreateCardInput{Name: "  Groceries "})

		require.NoError(t, err)
		assert.Equal(t, int64(11), card.ID)
		assert.Equal(t, entity.CardStatusToDo, card.Status)
	})

	t.Run("accepts a display name status", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

		card, err := fx.service.CreateCard(ctx, memberIdentity(7), &usecase.CreateCardInput{
			Name:   "Groceries",
			Status: strPtr("In Progress"),
			Color:  strPtr("#00ff00"),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.CardStatusInProgress, card.Status)
	})

	tests := []struct {
		name     string
		identity *entity.Identity
		input    *usecase.CreateCardInput
		wantErr  error
	}{
		{
			name:     "anonymous caller",
			identity: nil,
			input:    &usecase.CreateCardInput{Name: "x"},
			wantErr:  domainerrors.ErrForbidden,
		},
		{
			name:     "blank name",
			identity: memberIdentity(7),
			input:    &usecase.CreateCardInput{Name: "   "},
			wantErr:  domainerrors.ErrValidationFailed,
		},
		{
			name:     "bad color",
			identity: memberIdentity(7),
			input:    &usecase.CreateCardInput{Name: "x", Color: strPtr("red")},
			wantErr:  domainerrors.ErrValidationFailed,
		},
		{
			name:     "unknown status",
			identity: memberIdentity(7),
			input:    &usecase.CreateCardInput{Name: "x", Status: strPtr("Blocked")},
			wantErr:  domainerrors.ErrUnknownCardStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCardService(t)

			card, err := fx.service.CreateCard(context.Background(), tt.identity, tt.input)

			assert.Nil(t, card)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCardService_GetCard(t *testing.T) {
	t.Run("owner reads through the owner scoped lookup", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		want := sampleCard(3, 7)

		fx.cardRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), int64(7)).Return(want, nil)

		card, err := fx.service.GetCard(ctx, memberIdentity(7), 3)

		require.NoError(t, err)
		assert.Equal(t, want, card)
	})

	t.Run("admin reads any card", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		want := sampleCard(3, 7)

		fx.cardRepo.EXPECT().FindByID(ctx, int64(3)).Return(want, nil)

		card, err := fx.service.GetCard(ctx, adminIdentity(1), 3)

		require.NoError(t, err)
		assert.Equal(t, want, card)
	})

	t.Run("foreign card is not found for members", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), int64(8)).Return(nil, repository.ErrCardNotFound)

		card, err := fx.service.GetCard(ctx, memberIdentity(8), 3)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
	})

	t.Run("storage failure is passed through", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		dbErr := errors.New("connection reset")

		fx.cardRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, dbErr)

		_, err := fx.service.GetCard(ctx, adminIdentity(1), 3)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domainerrors.ErrCardNotFound)
	})
}

func TestCardService_UpdateCard(t *testing.T) {
	t.Run("merges the update and keeps createdAt", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		stored := sampleCard(3, 7)
		createdAt := stored.CreatedAt

		fx.expectTransaction(t, ctx)
		fx.txRepo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)
		fx.txRepo.EXPECT().Update(ctx, stored).Return(nil)

		card, err := fx.service.UpdateCard(ctx, memberIdentity(7), 3, &usecase.UpdateCardInput{
			Status: strPtr("done"),
			Color:  strPtr("#FFFFFF"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Write report", card.Name)
		assert.Equal(t, entity.CardStatusDone, card.Status)
		assert.Equal(t, "#FFFFFF", *card.Color)
		assert.Nil(t, card.Description)
		assert.Equal(t, createdAt, card.CreatedAt)
	})

	t.Run("admin may update foreign cards", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		stored := sampleCard(3, 7)

		fx.expectTransaction(t, ctx)
		fx.txRepo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)
		fx.txRepo.EXPECT().Update(ctx, stored).Return(nil)

		card, err := fx.service.UpdateCard(ctx, adminIdentity(1), 3, &usecase.UpdateCardInput{Name: strPtr("Renamed")})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", card.Name)
	})

	t.Run("foreign card is forbidden", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.expectTransaction(t, ctx)
		fx.txRepo.EXPECT().FindByID(ctx, int64(3)).Return(sampleCard(3, 7), nil)

		card, err := fx.service.UpdateCard(ctx, memberIdentity(8), 3, &usecase.UpdateCardInput{Name: strPtr("mine now")})

		assert.Nil(t, card)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing card", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.expectTransaction(t, ctx)
		fx.txRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrCardNotFound)

		_, err := fx.service.UpdateCard(ctx, memberIdentity(7), 99, &usecase.UpdateCardInput{})

		assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
	})

	t.Run("bad color is rejected before the transaction", func(t *testing.T) {
		fx := createTestCardService(t)

		_, err := fx.service.UpdateCard(context.Background(), memberIdentity(7), 3, &usecase.UpdateCardInput{Color: strPtr("#12")})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCardService_DeleteCard(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().FindByID(ctx, int64(3)).Return(sampleCard(3, 7), nil)
		fx.cardRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

		require.NoError(t, fx.service.DeleteCard(ctx, memberIdentity(7), 3))
	})

	t.Run("missing card", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrCardNotFound)

		assert.ErrorIs(t, fx.service.DeleteCard(ctx, memberIdentity(7), 3), domainerrors.ErrCardNotFound)
	})

	t.Run("foreign card is forbidden", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().FindByID(ctx, int64(3)).Return(sampleCard(3, 7), nil)

		assert.ErrorIs(t, fx.service.DeleteCard(ctx, memberIdentity(8), 3), domainerrors.ErrForbidden)
	})

	t.Run("card vanished between lookup and delete", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().FindByID(ctx, int64(3)).Return(sampleCard(3, 7), nil)
		fx.cardRepo.EXPECT().Delete(ctx, int64(3)).Return(repository.ErrCardNotFound)

		assert.ErrorIs(t, fx.service.DeleteCard(ctx, adminIdentity(1), 3), domainerrors.ErrCardNotFound)
	})
}

func TestCardService_Listing(t *testing.T) {
	t.Run("list all requires admin", func(t *testing.T) {
		fx := createTestCardService(t)

		cards, err := fx.service.ListAllCards(context.Background(), memberIdentity(7))

		assert.Nil(t, cards)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin lists all", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		want := []*entity.Card{sampleCard(1, 7), sampleCard(2, 8)}

		fx.cardRepo.EXPECT().FindAll(ctx).Return(want, nil)

		cards, err := fx.service.ListAllCards(ctx, adminIdentity(1))

		require.NoError(t, err)
		assert.Equal(t, want, cards)
	})

	t.Run("member lists own cards", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()

		fx.cardRepo.EXPECT().FindByOwner(ctx, int64(7)).Return([]*entity.Card{sampleCard(1, 7)}, nil)

		cards, err := fx.service.ListUserCards(ctx, memberIdentity(7), 7)

		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("member cannot list another user's cards", func(t *testing.T) {
		fx := createTestCardService(t)

		_, err := fx.service.ListUserCards(context.Background(), memberIdentity(7), 8)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestCardService_FilterUserCards(t *testing.T) {
	t.Run("builds the spec and queries", func(t *testing.T) {
		fx := createTestCardService(t)
		ctx := context.Background()
		page, size := 1, 5
		want := &filter.Page{Cards: []*entity.Card{sampleCard(1, 7)}, Total: 6}

		fx.cardRepo.EXPECT().Query(ctx, mock.MatchedBy(func(spec *filter.Spec) bool {
			return spec.OwnerID == 7 &&
				spec.Pagination == filter.Pagination{PageIndex: 1, PageSize: 5, Paged: true} &&
				spec.Sort == filter.Sort{Field: filter.FieldCreatedAt, Direction: filter.Desc}
		})).Return(want, nil)

		got, err := fx.service.FilterUserCards(ctx, memberIdentity(7), 7,
			filter.RawFilters{Status: strPtr("to do")},
			filter.RawPagination{Page: &page, Size: &size, SortBy: "createdAt", SortDirection: "desc"},
		)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown status never reaches storage", func(t *testing.T) {
		fx := createTestCardService(t)

		_, err := fx.service.FilterUserCards(context.Background(), memberIdentity(7), 7,
			filter.RawFilters{Status: strPtr("Blocked")}, filter.RawPagination{})

		assert.ErrorIs(t, err, domainerrors.ErrUnknownCardStatus)
	})

	t.Run("foreign user is forbidden", func(t *testing.T) {
		fx := createTestCardService(t)

		_, err := fx.service.FilterUserCards(context.Background(), memberIdentity(7), 8,
			filter.RawFilters{}, filter.RawPagination{})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
