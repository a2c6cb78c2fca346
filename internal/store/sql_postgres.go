package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a database/sql pool on the pgx driver.
//
// With cfg.SimpleProtocol set, statements are sent without server-side
// preparation so the pool works behind PgBouncer in transaction mode (the
// Supabase pooler on port 6543).
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error parsing database DSN")
		return nil, fmt.Errorf("error parsing database DSN: %w", err)
	}
	if cfg.SimpleProtocol {
		connConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	if _, ok := connConfig.RuntimeParams["application_name"]; !ok {
		connConfig.RuntimeParams["application_name"] = "bpl-web-backend"
	}

	// establish connection
	conn := stdlib.OpenDB(*connConfig)
	configurePool(conn, cfg)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Bool("simple_protocol", cfg.SimpleProtocol).
		Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}
