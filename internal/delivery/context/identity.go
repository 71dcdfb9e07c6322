package context

import (
	"context"

	"cards/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the resolved identity.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the resolved identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the identity resolved for this request, if any.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}

// WithIdentity returns a new context carrying the identity.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext extracts the identity from context.Context.
// It returns nil for anonymous requests.
func GetIdentityFromContext(ctx context.Context) *entity.Identity {
	if identity, ok := ctx.Value(KeyIdentity).(*entity.Identity); ok {
		return identity
	}

	return nil
}
