package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values the delivery layer stores on a request.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID carries the request id in both directions.
	HeaderXRequestID = "X-Request-Id"
)

// RequestID returns the id assigned to the request. A request that bypassed
// the request id middleware gets one on first use and keeps it afterwards,
// so every envelope rendered for it agrees.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	c.Set(string(KeyRequestID), id)

	return id
}

// BindRequest tags c with requestID and attaches logger to its request context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), logger)))
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// Logger returns the request-scoped logger carried by ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
