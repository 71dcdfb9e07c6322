package middleware

import (
	"log/slog"

	deliverycontext "cards/internal/delivery/context"
	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	"cards/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthMiddleware derives the request identity from the Authorization header.
type AuthMiddleware struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// Authenticate resolves the bearer token, if any. Anonymous requests pass
// through untouched; a bad token ends the request with the resolver's error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		identity, err := m.identityUC.Resolve(req.Context(), req.Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}
		if identity == nil {
			return next(c)
		}

		deliverycontext.SetIdentity(c, identity)

		ctx := deliverycontext.WithIdentity(req.Context(), identity)
		reqLogger := deliverycontext.Logger(ctx, m.logger).
			With(slog.Int64("principal_id", identity.PrincipalID))
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// RequireIdentity rejects anonymous callers. It must run after Authenticate.
func (m *AuthMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetIdentity(c); !ok {
			return domainerrors.ErrAuthenticationRequired
		}

		return next(c)
	}
}

// Identity returns the identity stored by Authenticate, or nil.
func Identity(c echo.Context) *entity.Identity {
	identity, _ := deliverycontext.GetIdentity(c)

	return identity
}
