package handler

import (
	"strconv"
	"time"

	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/filter"

	"github.com/labstack/echo/v4"
)

// CreatedAtLayout is the wire format of card timestamps, e.g. "31/01/2024 - 13:45:00".
const CreatedAtLayout = "02/01/2006 - 15:04:05"

// CardResponse is the JSON rendering of a card.
type CardResponse struct {
	ID          int64   `json:"id"`
	OwnerID     int64   `json:"ownerId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	CardStatus  string  `json:"cardStatus"`
	CreatedAt   string  `json:"createdAt"`
}

// UserResponse is the JSON rendering of a user. The password hash never leaves the service.
type UserResponse struct {
	ID        int64          `json:"id"`
	Email     string         `json:"email"`
	Roles     []string       `json:"roles"`
	Cards     []CardResponse `json:"cards,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PageResponse is one page of filtered cards.
type PageResponse struct {
	Cards []CardResponse `json:"cards"`
	Total int64          `json:"total"`
	Page  *int           `json:"page,omitempty"`
	Size  *int           `json:"size,omitempty"`
}

func newCardResponse(card *entity.Card) CardResponse {
	return CardResponse{
		ID:          card.ID,
		OwnerID:     card.OwnerID,
		Name:        card.Name,
		Description: card.Description,
		Color:       card.Color,
		CardStatus:  card.Status.DisplayName(),
		CreatedAt:   card.CreatedAt.UTC().Format(CreatedAtLayout),
	}
}

func newCardResponses(cards []*entity.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, newCardResponse(card))
	}

	return out
}

func newUserResponse(user *entity.User) UserResponse {
	var cards []CardResponse
	if len(user.Cards) > 0 {
		cards = newCardResponses(user.Cards)
	}

	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Roles:     user.Roles.ToStrings(),
		Cards:     cards,
		CreatedAt: user.CreatedAt,
	}
}

func newPageResponse(page *filter.Page) PageResponse {
	resp := PageResponse{
		Cards: newCardResponses(page.Cards),
		Total: page.Total,
	}
	if page.Pagination.Paged {
		index, size := page.Pagination.PageIndex, page.Pagination.PageSize
		resp.Page, resp.Size = &index, &size
	}

	return resp
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return &v, nil
}

func queryString(c echo.Context, names ...string) *string {
	for _, name := range names {
		if v := c.QueryParam(name); v != "" {
			return &v
		}
	}

	return nil
}

// queryCreatedAt accepts CreatedAtLayout (read as UTC) or RFC 3339.
func queryCreatedAt(c echo.Context) (*time.Time, error) {
	raw := c.QueryParam("createdAt")
	if raw == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}

	for _, layout := range []string{CreatedAtLayout, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails("createdAt must look like " + CreatedAtLayout)
}
