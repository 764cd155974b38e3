// Package factory constructs the gateway's dependencies from config.
package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vitalbridge/vitalbridge/internal/config"
	storepkg "github.com/vitalbridge/vitalbridge/internal/store"
	storepg "github.com/vitalbridge/vitalbridge/internal/store/postgres"
	storelite "github.com/vitalbridge/vitalbridge/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured driver. The local
// target uses an embedded SQLite file; the cloud target requires Postgres.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		st, err := storelite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store opened")
		return st, nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("HEALTH_GATEWAY_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.Info().Str("driver", cfg.DBDriver).Msg("store opened")
		return storepg.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
