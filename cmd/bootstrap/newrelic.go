package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/pkg/config"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/fx"
)

var NewRelicModule = fx.Module("newrelic",
	fx.Provide(
		NewNewRelicApp,
	),
)

// NewNewRelicApp returns nil when no licence key is configured or the agent
// cannot start; every consumer treats nil as "instrumentation off".
func NewNewRelicApp(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *newrelic.Application {
	if !cfg.NewRelic.Enabled() {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		logger.Warn("failed to initialize New Relic", "error", err)
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			app.Shutdown(5 * time.Second)
			return nil
		},
	})

	logger.Info("New Relic enabled", "app_name", cfg.NewRelic.AppName)
	return app
}
