package components

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/pkg/config"
	"mealpedeal/internal/worker"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(
			orderRepo worker.OrderRepository,
			offerRepo worker.OfferRepository,
			pool *pgxpool.Pool,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) *worker.ExpiryWorker {
			return worker.NewExpiryWorker(orderRepo, offerRepo, pool, clk, cfg.Scheduler.ExpirySweepInterval, logger)
		},
	),
	fx.Invoke(runExpiryWorker),
)

func runExpiryWorker(lc fx.Lifecycle, w *worker.ExpiryWorker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go w.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
