package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"cards/internal/delivery/api/validator"
	deliverycontext "cards/internal/delivery/context"
	"cards/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type testRequest struct {
	method   string
	target   string
	body     string
	params   map[string]string
	identity *entity.Identity
}

func newTestContext(t *testing.T, tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	// Echo sizes a context's path values by the widest registered route.
	e.GET("/:userId/:cardId", func(echo.Context) error { return nil })

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for name, value := range tr.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if tr.identity != nil {
		deliverycontext.SetIdentity(c, tr.identity)
	}

	return c, rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memberIdentity(id int64) *entity.Identity {
	return &entity.Identity{PrincipalID: id, Roles: entity.Roles{entity.RoleMember}}
}

func strPtr(s string) *string {
	return &s
}
