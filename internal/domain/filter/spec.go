// Package filter builds the declarative description of which cards a list
// request returns and how they are paged. It performs no I/O: storage
// implementations translate a Spec into their own query language.
package filter

import (
	"time"

	"cards/internal/domain/entity"
)

// Field names a filterable or sortable card attribute. The value is the column name.
type Field string

const (
	FieldID        Field = "id"
	FieldOwnerID   Field = "owner_id"
	FieldName      Field = "name"
	FieldColor     Field = "color"
	FieldStatus    Field = "status"
	FieldCreatedAt Field = "created_at"
)

// CreatedAtPrecision is the granularity of the created-at equality condition.
// Timestamps are exchanged with clients at second precision.
const CreatedAtPrecision = time.Second

// Condition is a single equality predicate on one field.
// Value holds an int64 for FieldOwnerID, a string for FieldName and FieldColor,
// an entity.CardStatus for FieldStatus and a time.Time for FieldCreatedAt.
type Condition struct {
	Field Field
	Value any
}

// Matches evaluates the condition against a card in memory.
func (c Condition) Matches(card *entity.Card) bool {
	if card == nil {
		return false
	}

	switch c.Field {
	case FieldOwnerID:
		v, ok := c.Value.(int64)
		return ok && card.OwnerID == v
	case FieldName:
		v, ok := c.Value.(string)
		return ok && card.Name == v
	case FieldColor:
		v, ok := c.Value.(string)
		return ok && card.Color != nil && *card.Color == v
	case FieldStatus:
		v, ok := c.Value.(entity.CardStatus)
		return ok && card.Status == v
	case FieldCreatedAt:
		v, ok := c.Value.(time.Time)
		return ok && !card.CreatedAt.Before(v) && card.CreatedAt.Before(v.Add(CreatedAtPrecision))
	default:
		return false
	}
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders the result. Ties are always broken by id ascending so equal keys
// keep insertion order.
type Sort struct {
	Field     Field
	Direction Direction
}

// Pagination selects a window of the ordered result.
// The zero value is unpaged: the full matching set is returned.
type Pagination struct {
	PageIndex int
	PageSize  int
	Paged     bool
}

// Unpaged returns a Pagination that selects every matching record.
func Unpaged() Pagination {
	return Pagination{}
}

// Offset returns the number of records skipped before the page starts.
func (p Pagination) Offset() int {
	if !p.Paged {
		return 0
	}

	return p.PageIndex * p.PageSize
}

// Spec is the composed filter for one list request. Conditions are combined
// with logical AND; the owner condition is always present and always first.
type Spec struct {
	OwnerID    int64
	Conditions []Condition
	Sort       Sort
	Pagination Pagination
}

// Matches reports whether the card satisfies every condition of the spec.
func (s *Spec) Matches(card *entity.Card) bool {
	for _, cond := range s.Conditions {
		if !cond.Matches(card) {
			return false
		}
	}

	return true
}

// Page is one window of cards returned for a Spec.
type Page struct {
	Cards      []*entity.Card
	Total      int64
	Pagination Pagination
}
