package postgres

import (
	"context"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/filter"
	"cards/internal/domain/repository"
	"cards/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cardRepository implements the domain.CardRepository interface using GORM.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// Create inserts the card. created_at is written once here and never updated.
func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	if err := checkCardStatus(card); err != nil {
		return err
	}
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		return translateCardWriteError(err, "failed to create card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// Update writes the mutable columns. NULL description or color clears the column.
func (repo *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	if err := checkCardStatus(card); err != nil {
		return err
	}
	cardM := fromCardDomain(card)

	result := repo.db.WithContext(ctx).
		Model(cardM).
		Select("Name", "Description", "Color", "Status", "UpdatedAt").
		Updates(cardM)
	if result.Error != nil {
		return translateCardWriteError(result.Error, "failed to update card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

func (repo *cardRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CardModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

func (repo *cardRepository) FindByID(ctx context.Context, id int64) (*entity.Card, error) {
	return repo.first(ctx, "failed to find card by id", clause.Eq{Column: clause.Column{Name: string(filter.FieldID)}, Value: id})
}

func (repo *cardRepository) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Card, error) {
	return repo.first(ctx, "failed to find card by id and owner",
		clause.Eq{Column: clause.Column{Name: string(filter.FieldID)}, Value: id},
		clause.Eq{Column: clause.Column{Name: string(filter.FieldOwnerID)}, Value: ownerID},
	)
}

func (repo *cardRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Card, error) {
	var cardsM []model.CardModel

	err := repo.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: string(filter.FieldOwnerID)}, Value: ownerID}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: string(filter.FieldID)}}).
		Find(&cardsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cards by owner")
	}

	return toCardsDomain(cardsM), nil
}

func (repo *cardRepository) FindAll(ctx context.Context) ([]*entity.Card, error) {
	var cardsM []model.CardModel

	err := repo.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: string(filter.FieldID)}}).
		Find(&cardsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cards")
	}

	return toCardsDomain(cardsM), nil
}

// Query counts the cards matching spec and loads the requested page.
func (repo *cardRepository) Query(ctx context.Context, spec *filter.Spec) (*filter.Page, error) {
	base := filteredQuery(repo.db.WithContext(ctx), spec).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count cards")
	}

	var cardsM []model.CardModel
	if err := pagedQuery(base, spec).Find(&cardsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query cards")
	}

	return &filter.Page{
		Cards:      toCardsDomain(cardsM),
		Total:      total,
		Pagination: spec.Pagination,
	}, nil
}

func (repo *cardRepository) first(ctx context.Context, msg string, conds ...clause.Expression) (*entity.Card, error) {
	var cardM model.CardModel

	tx := repo.db.WithContext(ctx)
	for _, cond := range conds {
		tx = tx.Where(cond)
	}

	if err := tx.First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toCardDomain(&cardM), nil
}

// filteredQuery applies every condition of spec as an ANDed WHERE clause.
func filteredQuery(tx *gorm.DB, spec *filter.Spec) *gorm.DB {
	tx = tx.Model(&model.CardModel{})
	for _, cond := range spec.Conditions {
		tx = tx.Where(conditionExpression(cond))
	}

	return tx
}

// pagedQuery orders the result with id as the tie breaker and applies the page window.
func pagedQuery(tx *gorm.DB, spec *filter.Spec) *gorm.DB {
	tx = tx.Order(clause.OrderByColumn{
		Column: clause.Column{Name: string(spec.Sort.Field)},
		Desc:   spec.Sort.Direction == filter.Desc,
	})
	if spec.Sort.Field != filter.FieldID {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: string(filter.FieldID)}})
	}

	if spec.Pagination.Paged {
		tx = tx.Offset(spec.Pagination.Offset()).Limit(spec.Pagination.PageSize)
	}

	return tx
}

func conditionExpression(cond filter.Condition) clause.Expression {
	column := clause.Column{Name: string(cond.Field)}

	switch v := cond.Value.(type) {
	case time.Time:
		return clause.And(
			clause.Gte{Column: column, Value: v},
			clause.Lt{Column: column, Value: v.Add(filter.CreatedAtPrecision)},
		)
	case entity.CardStatus:
		return clause.Eq{Column: column, Value: string(v)}
	default:
		return clause.Eq{Column: column, Value: v}
	}
}

func translateCardWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrCardWriteFailed.WrapMessage("card color or status is invalid")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrCardWriteFailed.WrapMessage("card name is required")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrCardWriteFailed.WrapMessage("card owner does not exist")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// checkCardStatus stops an unknown status before it reaches the status check constraint.
// An empty status is stored as To Do.
func checkCardStatus(card *entity.Card) error {
	if card.Status != "" && !card.Status.IsValid() {
		return domainerrors.ErrCardWriteFailed.WrapMessage("card status " + string(card.Status) + " is invalid")
	}

	return nil
}

// --- Mapper Functions ---

func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	return &entity.Card{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Color:       data.Color,
		Status:      entity.CardStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCardsDomain(data []model.CardModel) []*entity.Card {
	cards := make([]*entity.Card, 0, len(data))
	for i := range data {
		cards = append(cards, toCardDomain(&data[i]))
	}

	return cards
}

func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.CardStatusToDo
	}

	return &model.CardModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Color:       data.Color,
		Status:      string(status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
