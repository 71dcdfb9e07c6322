package postgres

import (
	"context"
	"testing"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/filter"
	"cards/internal/domain/repository"
	"cards/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.Open("host=localhost user=cards dbname=cards sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func TestCardQuery_TranslatesSpec(t *testing.T) {
	db := newDryRunDB(t)

	spec, err := filter.Build(7,
		filter.RawFilters{Name: strPtr("Task"), Status: strPtr("in progress")},
		filter.RawPagination{Offset: intPtr(25), Limit: intPtr(10), SortBy: "createdAt", SortDirection: "desc"},
	)
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var cards []model.CardModel

		return pagedQuery(filteredQuery(tx, spec), spec).Find(&cards)
	})

	assert.Contains(t, sql, `FROM "cards"`)
	assert.Contains(t, sql, `"owner_id" = 7`)
	assert.Contains(t, sql, `"name" = 'Task'`)
	assert.Contains(t, sql, `"status" = 'IN_PROGRESS'`)
	assert.Contains(t, sql, `ORDER BY "created_at" DESC,"id"`)
	assert.Contains(t, sql, "LIMIT 10 OFFSET 20")
}

func TestCardQuery_UnpagedDefaultSort(t *testing.T) {
	db := newDryRunDB(t)

	spec, err := filter.Build(3, filter.RawFilters{}, filter.RawPagination{})
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var cards []model.CardModel

		return pagedQuery(filteredQuery(tx, spec), spec).Find(&cards)
	})

	assert.Contains(t, sql, `"owner_id" = 3`)
	assert.Contains(t, sql, `ORDER BY "name","id"`)
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
}

func TestCardQuery_SortByIDHasNoTieBreaker(t *testing.T) {
	db := newDryRunDB(t)

	spec, err := filter.Build(3, filter.RawFilters{}, filter.RawPagination{SortBy: "id"})
	require.NoError(t, err)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var cards []model.CardModel

		return pagedQuery(filteredQuery(tx, spec), spec).Find(&cards)
	})

	assert.Contains(t, sql, `ORDER BY "id"`)
	assert.NotContains(t, sql, `"id","id"`)
}

func TestCardQuery_CreatedAtCoversOneSecond(t *testing.T) {
	db := newDryRunDB(t)

	spec := &filter.Spec{OwnerID: 1}
	spec.Conditions = append(spec.Conditions, filter.Condition{Field: filter.FieldCreatedAt, Value: mustTime(t, "2024-01-01T12:00:00Z")})
	spec.Sort = filter.DefaultSort

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var cards []model.CardModel

		return pagedQuery(filteredQuery(tx, spec), spec).Find(&cards)
	})

	assert.Contains(t, sql, `"created_at" >= '2024-01-01 12:00:00`)
	assert.Contains(t, sql, `"created_at" < '2024-01-01 12:00:01`)
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}

func TestCardRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectExec(`DELETE FROM "cards"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, repository.ErrCardNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_CreateCheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectQuery(`INSERT INTO "cards"`).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "cards_color_check"})

	err := repo.Create(context.Background(), &entity.Card{OwnerID: 1, Name: "Task", Color: strPtr("red")})

	assert.ErrorIs(t, err, domainerrors.ErrCardWriteFailed)
}

func TestCardRepository_RejectsUnknownStatusBeforeWriting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)
	card := &entity.Card{ID: 3, OwnerID: 1, Name: "Task", Status: entity.CardStatus("ARCHIVED")}

	assert.ErrorIs(t, repo.Create(context.Background(), card), domainerrors.ErrCardWriteFailed)
	assert.ErrorIs(t, repo.Update(context.Background(), card), domainerrors.ErrCardWriteFailed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_FindByIDAndOwnerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "cards" WHERE "id" = \$1 AND "owner_id" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDAndOwner(context.Background(), 5, 8)

	assert.ErrorIs(t, err, repository.ErrCardNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Query(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)
	now := time.Now()

	spec, err := filter.Build(7, filter.RawFilters{}, filter.RawPagination{Page: intPtr(0), Size: intPtr(2)})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "cards"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`SELECT \* FROM "cards" WHERE "owner_id" = \$1 ORDER BY "name","id" LIMIT \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "status", "created_at", "updated_at"}).
			AddRow(int64(1), int64(7), "A", "TO_DO", now, now).
			AddRow(int64(2), int64(7), "B", "DONE", now, now))

	page, err := repo.Query(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Cards, 2)
	assert.Equal(t, entity.CardStatusDone, page.Cards[1].Status)
	assert.Equal(t, spec.Pagination, page.Pagination)
	require.NoError(t, mock.ExpectationsWereMet())
}
