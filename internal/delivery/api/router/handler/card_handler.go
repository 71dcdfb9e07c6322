package handler

import (
	"log/slog"
	"net/http"

	"cards/internal/delivery/api/middleware"
	"cards/internal/delivery/api/response"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/domain/filter"
	"cards/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler serves the card routes. Authorization happens in the use case.
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// CreateCardRequest represents the request body for creating a card
type CreateCardRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,cardcolor"`
	CardStatus  *string `json:"cardStatus"`
}

// UpdateCardRequest represents the request body for updating a card.
// Omitting description or color clears it.
type UpdateCardRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,cardcolor"`
	CardStatus  *string `json:"cardStatus"`
}

func bindCard[T any](c echo.Context) (*T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON card")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// ListAllCards returns every card. Admins only.
func (h *CardHandler) ListAllCards(c echo.Context) error {
	cards, err := h.cardUC.ListAllCards(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newCardResponses(cards))
}

// ListUserCards returns all cards of one user.
func (h *CardHandler) ListUserCards(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	cards, err := h.cardUC.ListUserCards(c.Request().Context(), middleware.Identity(c), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newCardResponses(cards))
}

// FilterUserCards returns one page of a user's cards matching the query parameters.
func (h *CardHandler) FilterUserCards(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	filters, err := parseFilters(c)
	if err != nil {
		return err
	}
	paging, err := parsePagination(c)
	if err != nil {
		return err
	}

	h.logger.DebugContext(c.Request().Context(), "Filtering cards",
		slog.Int64("userID", userID),
		slog.String("query", c.QueryString()),
	)

	page, err := h.cardUC.FilterUserCards(c.Request().Context(), middleware.Identity(c), userID, filters, paging)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newPageResponse(page))
}

// CreateCard stores a new card owned by the caller.
func (h *CardHandler) CreateCard(c echo.Context) error {
	req, err := bindCard[CreateCardRequest](c)
	if err != nil {
		return err
	}

	card, err := h.cardUC.CreateCard(c.Request().Context(), middleware.Identity(c), &usecase.CreateCardInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Status:      req.CardStatus,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newCardResponse(card))
}

// GetCard returns one card.
func (h *CardHandler) GetCard(c echo.Context) error {
	cardID, err := pathID(c, "cardId")
	if err != nil {
		return err
	}

	card, err := h.cardUC.GetCard(c.Request().Context(), middleware.Identity(c), cardID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newCardResponse(card))
}

// UpdateCard rewrites one card.
func (h *CardHandler) UpdateCard(c echo.Context) error {
	cardID, err := pathID(c, "cardId")
	if err != nil {
		return err
	}

	req, err := bindCard[UpdateCardRequest](c)
	if err != nil {
		return err
	}

	card, err := h.cardUC.UpdateCard(c.Request().Context(), middleware.Identity(c), cardID, &usecase.UpdateCardInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Status:      req.CardStatus,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newCardResponse(card))
}

// DeleteCard removes one card and answers 202 with no body.
func (h *CardHandler) DeleteCard(c echo.Context) error {
	cardID, err := pathID(c, "cardId")
	if err != nil {
		return err
	}

	if err := h.cardUC.DeleteCard(c.Request().Context(), middleware.Identity(c), cardID); err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}

func parseFilters(c echo.Context) (filter.RawFilters, error) {
	createdAt, err := queryCreatedAt(c)
	if err != nil {
		return filter.RawFilters{}, err
	}

	return filter.RawFilters{
		Name:      queryString(c, "name"),
		Color:     queryString(c, "color"),
		Status:    queryString(c, "cardStatus", "status"),
		CreatedAt: createdAt,
	}, nil
}

func parsePagination(c echo.Context) (filter.RawPagination, error) {
	paging := filter.RawPagination{
		SortBy:        c.QueryParam("sortBy"),
		SortDirection: c.QueryParam("sortDirection"),
	}

	for name, dst := range map[string]**int{
		"page":   &paging.Page,
		"size":   &paging.Size,
		"offset": &paging.Offset,
		"limit":  &paging.Limit,
	} {
		v, err := queryInt(c, name)
		if err != nil {
			return filter.RawPagination{}, err
		}
		*dst = v
	}

	return paging, nil
}
