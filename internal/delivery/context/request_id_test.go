package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID_GeneratedOnceWhenUnbound(t *testing.T) {
	c := newContext()

	first := RequestID(c)
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	assert.Equal(t, first, RequestID(c))
}

func TestBindRequest(t *testing.T) {
	var buf bytes.Buffer
	c := newContext()

	BindRequest(c, "req-9", slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-9")))

	assert.Equal(t, "req-9", RequestID(c))
	Logger(c.Request().Context(), nil).Info("bound")
	assert.Contains(t, buf.String(), "request_id=req-9")
}

func TestLogger_FallsBack(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Same(t, fallback, Logger(WithLogger(context.Background(), nil), fallback))
}
