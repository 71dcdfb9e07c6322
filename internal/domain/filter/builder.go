package filter

import (
	"strings"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/errors"
)

// RawFilters carries the optional equality filters of a list request.
// A nil field contributes no condition.
type RawFilters struct {
	Name      *string
	Color     *string
	Status    *string
	CreatedAt *time.Time
}

// RawPagination carries the optional paging and sorting parameters.
// Page and Size are used when both are set, otherwise Offset and Limit when
// both are set, otherwise the result is unpaged.
type RawPagination struct {
	Page          *int
	Size          *int
	Offset        *int
	Limit         *int
	SortBy        string
	SortDirection string
}

// DefaultSort is applied when the request names no sort field or direction.
var DefaultSort = Sort{Field: FieldName, Direction: Asc}

var sortFields = map[string]Field{
	"id":         FieldID,
	"name":       FieldName,
	"color":      FieldColor,
	"status":     FieldStatus,
	"cardstatus": FieldStatus,
	"createdat":  FieldCreatedAt,
	"created_at": FieldCreatedAt,
}

type step func(spec *Spec) error

// Build composes the filter for cards owned by ownerID.
func Build(ownerID int64, filters RawFilters, paging RawPagination) (*Spec, error) {
	spec := &Spec{
		OwnerID:    ownerID,
		Conditions: []Condition{{Field: FieldOwnerID, Value: ownerID}},
	}

	steps := []step{
		withName(filters.Name),
		withColor(filters.Color),
		withStatus(filters.Status),
		withCreatedAt(filters.CreatedAt),
		withSort(paging.SortBy, paging.SortDirection),
		withPagination(paging),
	}

	for _, apply := range steps {
		if err := apply(spec); err != nil {
			return nil, err
		}
	}

	return spec, nil
}

func withName(name *string) step {
	return func(spec *Spec) error {
		if name != nil {
			spec.Conditions = append(spec.Conditions, Condition{Field: FieldName, Value: *name})
		}

		return nil
	}
}

func withColor(color *string) step {
	return func(spec *Spec) error {
		if color != nil {
			spec.Conditions = append(spec.Conditions, Condition{Field: FieldColor, Value: *color})
		}

		return nil
	}
}

func withStatus(status *string) step {
	return func(spec *Spec) error {
		if status == nil {
			return nil
		}

		parsed, err := entity.ParseCardStatus(*status)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnknownCardStatus, err.Error())
		}
		spec.Conditions = append(spec.Conditions, Condition{Field: FieldStatus, Value: parsed})

		return nil
	}
}

func withCreatedAt(createdAt *time.Time) step {
	return func(spec *Spec) error {
		if createdAt != nil {
			spec.Conditions = append(spec.Conditions, Condition{
				Field: FieldCreatedAt,
				Value: createdAt.Truncate(CreatedAtPrecision),
			})
		}

		return nil
	}
}

func withSort(sortBy, direction string) step {
	return func(spec *Spec) error {
		spec.Sort = DefaultSort

		if sortBy = strings.TrimSpace(sortBy); sortBy != "" {
			field, ok := sortFields[strings.ToLower(sortBy)]
			if !ok {
				return errors.Wrapf(domainerrors.ErrUnknownSortField, "sort field %q", sortBy)
			}
			spec.Sort.Field = field
		}

		switch strings.ToLower(strings.TrimSpace(direction)) {
		case "", string(Asc):
			spec.Sort.Direction = Asc
		case string(Desc):
			spec.Sort.Direction = Desc
		default:
			return errors.Wrapf(domainerrors.ErrBadSortDirection, "sort direction %q", direction)
		}

		return nil
	}
}

func withPagination(paging RawPagination) step {
	return func(spec *Spec) error {
		switch {
		case paging.Page != nil && paging.Size != nil:
			if *paging.Page < 0 || *paging.Size <= 0 {
				return errors.Wrap(domainerrors.ErrValidationFailed, "page must be >= 0 and size > 0")
			}
			spec.Pagination = Pagination{PageIndex: *paging.Page, PageSize: *paging.Size, Paged: true}
		case paging.Offset != nil && paging.Limit != nil:
			if *paging.Offset < 0 || *paging.Limit <= 0 {
				return errors.Wrap(domainerrors.ErrValidationFailed, "offset must be >= 0 and limit > 0")
			}
			spec.Pagination = Pagination{PageIndex: *paging.Offset / *paging.Limit, PageSize: *paging.Limit, Paged: true}
		default:
			spec.Pagination = Unpaged()
		}

		return nil
	}
}
