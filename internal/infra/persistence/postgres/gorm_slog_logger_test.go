package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"cards/config"
	deliverycontext "cards/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer

	gl := newGormSlogLogger(newBufferedLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferedLogger(&scoped).With(slog.String("request_id", "req-1")))

	gl.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "boom")
}

func TestGormSlogLogger_LevelsAndNotFound(t *testing.T) {
	var buf bytes.Buffer

	gl := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})
	ctx := context.Background()

	gl.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged below info level")

	gl.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is expected")

	gl.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return "SELECT pg_sleep(1)", 1 }, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	newGormSlogLogger(newBufferedLogger(&buf), debugCfg).
		Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 2", 1 }, nil)
	assert.Contains(t, buf.String(), "SELECT 2")
}
