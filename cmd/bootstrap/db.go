package bootstrap

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/infra/migrations"
	"vehicle-rental/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := migrations.Up(ctx, cfg.DB.BuildDSN()); err != nil {
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
