package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/domain/order"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/infra/repository"
	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/usecase/shared"
)

const defaultSweepInterval = 60 * time.Second

var (
	expirySweepRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mealpedeal_expiry_sweep_runs_total",
		Help: "Total number of expiry sweep runs grouped by result.",
	}, []string{"result"})
	expiryExpiredOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealpedeal_expiry_expired_orders_total",
		Help: "Total number of reservations expired by the sweep.",
	})
	expiryRestoredQuantityTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealpedeal_expiry_restored_quantity_total",
		Help: "Total quantity restored to offers by the expiry sweep.",
	})
	expiryLastExpired = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mealpedeal_expiry_last_expired",
		Help: "Number of reservations expired during the last sweep.",
	})
)

type OrderRepository interface {
	ListOverdueReserved(ctx context.Context, now time.Time) ([]repository.OverdueReservation, error)
	UpdateStatusIfCurrent(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to order.Status) (*order.Order, bool, error)
}

type OfferRepository interface {
	RestoreAtomic(ctx context.Context, tx db.DBTX, id uuid.UUID, qty int32) (*offer.Offer, error)
}

// ExpiryWorker sweeps RESERVED orders whose pickup window has ended,
// marks them EXPIRED and puts the reserved quantity back on the offer.
// Each reservation is handled in its own transaction, so one broken row
// never blocks the rest of the sweep.
type ExpiryWorker struct {
	orderRepo OrderRepository
	offerRepo OfferRepository
	db        *pgxpool.Pool
	clock     clock.Clock
	interval  time.Duration
	logger    *slog.Logger
}

func NewExpiryWorker(
	orderRepo OrderRepository,
	offerRepo OfferRepository,
	pool *pgxpool.Pool,
	clk clock.Clock,
	interval time.Duration,
	logger *slog.Logger,
) *ExpiryWorker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ExpiryWorker{
		orderRepo: orderRepo,
		offerRepo: offerRepo,
		db:        pool,
		clock:     clk,
		interval:  interval,
		logger:    logger.With("component", "expiry-worker"),
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (w *ExpiryWorker) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	expired, err := w.SweepOnce(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		expirySweepRunsTotal.WithLabelValues("error").Inc()
		w.logger.Warn("expiry sweep failed", "error", err)
		return
	}

	expirySweepRunsTotal.WithLabelValues("ok").Inc()
	expiryLastExpired.Set(float64(expired))
	if expired > 0 {
		w.logger.Info("expiry sweep completed", "expired", expired)
	}
}

// SweepOnce expires every overdue reservation visible at the current clock
// reading and returns how many were transitioned. The status flip is guarded
// on RESERVED inside the same transaction as the stock restore: an order
// cancelled or collected between the list and the flip loses the guard and
// is skipped without restoring anything.
func (w *ExpiryWorker) SweepOnce(ctx context.Context) (int, error) {
	now := w.clock.Now()

	overdue, err := w.orderRepo.ListOverdueReserved(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, reservation := range overdue {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		transitioned, err := w.expireOne(ctx, reservation)
		if err != nil {
			w.logger.Warn("failed to expire reservation",
				"order_id", reservation.OrderID,
				"error", err,
			)
			continue
		}
		if transitioned {
			expired++
			expiryExpiredOrdersTotal.Inc()
			expiryRestoredQuantityTotal.Add(float64(reservation.Quantity))
		}
	}
	return expired, nil
}

func (w *ExpiryWorker) expireOne(ctx context.Context, reservation repository.OverdueReservation) (bool, error) {
	return shared.WithDefaultRetry(ctx, w.db, func(tx db.DBTX) (bool, error) {
		_, transitioned, err := w.orderRepo.UpdateStatusIfCurrent(ctx, tx, reservation.OrderID, order.StatusReserved, order.StatusExpired)
		if err != nil {
			return false, err
		}
		if !transitioned {
			return false, nil
		}
		if _, err := w.offerRepo.RestoreAtomic(ctx, tx, reservation.OfferID, reservation.Quantity); err != nil {
			return false, err
		}
		return true, nil
	})
}
