package filter

import (
	"testing"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleCards(t0 time.Time) []*entity.Card {
	return []*entity.Card{
		{ID: 1, OwnerID: 7, Name: "Task", Color: ptr("#FFFFFF"), Status: entity.CardStatusToDo, CreatedAt: t0},
		{ID: 2, OwnerID: 7, Name: "Task", Color: ptr("#000000"), Status: entity.CardStatusDone, CreatedAt: t0.Add(time.Minute)},
		{ID: 3, OwnerID: 7, Name: "Other", Status: entity.CardStatusToDo, CreatedAt: t0.Add(500 * time.Millisecond)},
		{ID: 4, OwnerID: 8, Name: "Task", Color: ptr("#FFFFFF"), Status: entity.CardStatusToDo, CreatedAt: t0},
	}
}

func matchingIDs(spec *Spec, cards []*entity.Card) []int64 {
	ids := []int64{}
	for _, card := range cards {
		if spec.Matches(card) {
			ids = append(ids, card.ID)
		}
	}

	return ids
}

func TestBuild_OwnerConditionAlwaysFirst(t *testing.T) {
	spec, err := Build(7, RawFilters{Name: ptr("Task")}, RawPagination{})
	require.NoError(t, err)

	require.Len(t, spec.Conditions, 2)
	assert.Equal(t, Condition{Field: FieldOwnerID, Value: int64(7)}, spec.Conditions[0])
	assert.Equal(t, int64(7), spec.OwnerID)
}

func TestBuild_Filters(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cards := sampleCards(t0)

	tests := []struct {
		name    string
		filters RawFilters
		want    []int64
	}{
		{name: "owner only", filters: RawFilters{}, want: []int64{1, 2, 3}},
		{name: "name", filters: RawFilters{Name: ptr("Task")}, want: []int64{1, 2}},
		{name: "name and color", filters: RawFilters{Name: ptr("Task"), Color: ptr("#FFFFFF")}, want: []int64{1}},
		{name: "status by display name", filters: RawFilters{Status: ptr("to do")}, want: []int64{1, 3}},
		{name: "status by constant", filters: RawFilters{Status: ptr("DONE")}, want: []int64{2}},
		{name: "created at within the second", filters: RawFilters{CreatedAt: ptr(t0)}, want: []int64{1, 3}},
		{name: "no match", filters: RawFilters{Name: ptr("missing")}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Build(7, tt.filters, RawPagination{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, matchingIDs(spec, cards))
		})
	}
}

func TestBuild_UnknownStatus(t *testing.T) {
	_, err := Build(7, RawFilters{Status: ptr("archived")}, RawPagination{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCardStatus)
}

func TestBuild_Pagination(t *testing.T) {
	tests := []struct {
		name   string
		paging RawPagination
		want   Pagination
	}{
		{
			name:   "page and size",
			paging: RawPagination{Page: ptr(2), Size: ptr(10)},
			want:   Pagination{PageIndex: 2, PageSize: 10, Paged: true},
		},
		{
			name:   "offset and limit",
			paging: RawPagination{Offset: ptr(25), Limit: ptr(10)},
			want:   Pagination{PageIndex: 2, PageSize: 10, Paged: true},
		},
		{
			name:   "page and size win over offset and limit",
			paging: RawPagination{Page: ptr(1), Size: ptr(5), Offset: ptr(40), Limit: ptr(20)},
			want:   Pagination{PageIndex: 1, PageSize: 5, Paged: true},
		},
		{
			name:   "page without size is unpaged",
			paging: RawPagination{Page: ptr(1)},
			want:   Unpaged(),
		},
		{
			name:   "nothing is unpaged",
			paging: RawPagination{},
			want:   Unpaged(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Build(1, RawFilters{}, tt.paging)
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Pagination)
		})
	}
}

func TestBuild_InvalidPagination(t *testing.T) {
	tests := []struct {
		name   string
		paging RawPagination
	}{
		{name: "zero size", paging: RawPagination{Page: ptr(0), Size: ptr(0)}},
		{name: "negative page", paging: RawPagination{Page: ptr(-1), Size: ptr(10)}},
		{name: "zero limit", paging: RawPagination{Offset: ptr(0), Limit: ptr(0)}},
		{name: "negative offset", paging: RawPagination{Offset: ptr(-5), Limit: ptr(10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(1, RawFilters{}, tt.paging)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBuild_Sort(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		direction string
		want      Sort
		wantErr   error
	}{
		{name: "defaults", want: Sort{Field: FieldName, Direction: Asc}},
		{name: "created at descending", sortBy: "createdAt", direction: "DESC", want: Sort{Field: FieldCreatedAt, Direction: Desc}},
		{name: "legacy status name", sortBy: "cardStatus", direction: "asc", want: Sort{Field: FieldStatus, Direction: Asc}},
		{name: "unknown field", sortBy: "password", wantErr: domainerrors.ErrUnknownSortField},
		{name: "bad direction", sortBy: "name", direction: "sideways", wantErr: domainerrors.ErrBadSortDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Build(1, RawFilters{}, RawPagination{SortBy: tt.sortBy, SortDirection: tt.direction})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Sort)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Unpaged().Offset())
	assert.Equal(t, 30, Pagination{PageIndex: 3, PageSize: 10, Paged: true}.Offset())
}
