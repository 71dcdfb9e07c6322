// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cards/internal/delivery/api/middleware"
	"cards/internal/delivery/api/response"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/usecase"
	"cards/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration, login and profiles.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse confirms a registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

// IdentityResponse describes the caller as the server sees it.
type IdentityResponse struct {
	PrincipalID int64    `json:"principalId"`
	Roles       []string `json:"roles"`
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object with email and password")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// Register creates a member account.
func (h *UserHandler) Register(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		Message: "User was successfully created.",
		User:    newUserResponse(output.User),
	})
}

// Login issues a bearer token, returned in the body and the Authorization header.
func (h *UserHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderAuthorization, impl.BearerPrefix+output.AccessToken)

	return response.Success(c, http.StatusOK, LoginResponse{
		User:        newUserResponse(output.User),
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
	})
}

// GetProfile returns a user with their cards.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), middleware.Identity(c), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// WhoAmI echoes the resolved identity of the caller.
func (h *UserHandler) WhoAmI(c echo.Context) error {
	identity := middleware.Identity(c)
	if identity == nil {
		return domainerrors.ErrAuthenticationRequired
	}

	return response.Success(c, http.StatusOK, IdentityResponse{
		PrincipalID: identity.PrincipalID,
		Roles:       identity.Roles.ToStrings(),
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
