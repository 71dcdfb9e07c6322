// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedded embed.FS

// Files returns the embedded migration sources.
func Files() fs.FS {
	return embedded
}

// Migrator applies the embedded migrations to a PostgreSQL database.
type Migrator struct {
	provider *goose.Provider
	logger   *slog.Logger
}

// NewMigrator builds a goose provider over db.
func NewMigrator(db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedded)
	if err != nil {
		return nil, errors.Wrap(err, "goose.NewProvider")
	}

	return &Migrator{provider: provider, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, result := range results {
		m.logResult(ctx, result)
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if result != nil {
		m.logResult(ctx, result)
	}
	if err != nil {
		return errors.Wrap(err, "roll back migration")
	}

	return nil
}

// Status logs the state of every known migration.
func (m *Migrator) Status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return errors.Wrap(err, "migration status")
	}

	for _, status := range statuses {
		m.logger.InfoContext(ctx, "Migration status",
			slog.Int64("version", status.Source.Version),
			slog.String("path", status.Source.Path),
			slog.String("state", string(status.State)),
			slog.Time("appliedAt", status.AppliedAt),
		)
	}

	return nil
}

func (m *Migrator) logResult(ctx context.Context, result *goose.MigrationResult) {
	attrs := []slog.Attr{
		slog.Int64("version", result.Source.Version),
		slog.String("path", result.Source.Path),
		slog.String("direction", result.Direction),
		slog.Duration("duration", result.Duration),
	}

	if result.Error != nil {
		attrs = append(attrs, slog.String("error", result.Error.Error()))
		m.logger.LogAttrs(ctx, slog.LevelError, "Migration failed", attrs...)

		return
	}

	m.logger.LogAttrs(ctx, slog.LevelInfo, "Migration applied", attrs...)
}
