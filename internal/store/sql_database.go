package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/migrations"
	"github.com/jmoiron/sqlx"
)

// DB is the connection pool shared by the repositories. It is created once by
// [NewConnectPostgres] and owned by [Storages].
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB.DB); err != nil {
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Msg("users table is ready")
	return nil
}
