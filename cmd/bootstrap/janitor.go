package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/infra/repository"
	"vehicle-rental/internal/pkg/clock"

	"go.uber.org/fx"
)

const idempotencySweepInterval = time.Hour

var JanitorModule = fx.Module("janitor",
	fx.Invoke(startIdempotencyJanitor),
)

// startIdempotencyJanitor deletes expired idempotency keys once an hour while
// the application runs.
func startIdempotencyJanitor(lc fx.Lifecycle, dbtx db.DBTX, clk clock.Clock, logger *slog.Logger) {
	repo := repository.NewIdempotencyRepository(dbtx)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencySweepInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						deleted, err := repo.DeleteExpired(ctx, clk.Now())
						if err != nil {
							logger.Warn("idempotency sweep failed", "error", err)
							continue
						}
						if deleted > 0 {
							logger.Info("expired idempotency keys removed", "count", deleted)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
