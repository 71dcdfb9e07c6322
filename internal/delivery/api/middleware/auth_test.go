package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cards/internal/delivery/context"
	"cards/internal/domain/entity"
	domainerrors "cards/internal/domain/errors"
	mockUC "cards/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUC.MockIdentityUsecase) {
	uc := mockUC.NewMockIdentityUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{IdentityUC: uc, Logger: newDiscardLogger()}), uc
}

func newAuthContext(header string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/cards/1", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("identity is stored in both contexts", func(t *testing.T) {
		m, uc := newTestAuthMiddleware(t)
		c := newAuthContext("Bearer tok")
		want := &entity.Identity{PrincipalID: 7, Roles: entity.Roles{entity.RoleMember}}

		uc.EXPECT().Resolve(mock.Anything, "Bearer tok").Return(want, nil)

		called := false
		err := m.Authenticate(func(c echo.Context) error {
			called = true
			assert.Equal(t, want, Identity(c))
			assert.Equal(t, want, deliverycontext.GetIdentityFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.Logger(c.Request().Context(), nil))

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		m, uc := newTestAuthMiddleware(t)
		c := newAuthContext("")

		uc.EXPECT().Resolve(mock.Anything, "").Return(nil, nil)

		err := m.Authenticate(func(c echo.Context) error {
			assert.Nil(t, Identity(c))

			return nil
		})(c)

		require.NoError(t, err)
	})

	t.Run("resolver error stops the chain", func(t *testing.T) {
		m, uc := newTestAuthMiddleware(t)
		c := newAuthContext("Bearer expired")

		uc.EXPECT().Resolve(mock.Anything, "Bearer expired").Return(nil, domainerrors.ErrTokenExpired)

		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("next must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})
}

func TestAuthMiddleware_RequireIdentity(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	next := func(echo.Context) error { return nil }

	c := newAuthContext("")
	assert.ErrorIs(t, m.RequireIdentity(next)(c), domainerrors.ErrAuthenticationRequired)

	deliverycontext.SetIdentity(c, &entity.Identity{PrincipalID: 1, Roles: entity.Roles{entity.RoleMember}})
	assert.NoError(t, m.RequireIdentity(next)(c))
}
