package repository

import (
	"context"
	"time"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/domain/order"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `
	id, offer_id, restaurant_id, customer_id, customer_name, customer_phone,
	quantity, amount_paise, status, pickup_code,
	pickup_window_start, pickup_window_end, payment_order_id,
	collected_at, created_at, updated_at`

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool db.DBTX) *OrderRepository {
	return &OrderRepository{db: pool}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO orders (
			id, offer_id, restaurant_id, customer_id, customer_name, customer_phone,
			quantity, amount_paise, status, pickup_code,
			pickup_window_start, pickup_window_end, payment_order_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID(), o.OfferID(), o.RestaurantID(), o.CustomerID(),
		o.CustomerName(), o.CustomerPhone(),
		o.Quantity(), o.AmountPaise(), string(o.Status()), o.PickupCode(),
		o.PickupWindow().Start(), o.PickupWindow().End(), o.PaymentOrderID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return o, nil
}

func (r *OrderRepository) FindByPaymentOrderID(ctx context.Context, paymentOrderID string) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE payment_order_id = $1`, paymentOrderID)

	o, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found for payment order", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by payment order ID", err)
	}
	return o, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer orders", err)
	}
	defer rows.Close()

	var result []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return result, nil
}

// UpdateStatusIfCurrent flips the status only when the row is still in the
// expected state. This single guarded write is what makes compensation
// at-most-once: a second caller sees transitioned=false and skips the
// restock.
func (r *OrderRepository) UpdateStatusIfCurrent(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to order.Status) (*order.Order, bool, error) {
	row := tx.QueryRow(ctx, `
		UPDATE orders
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+orderColumns,
		id, string(from), string(to),
	)

	o, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to update order status", err)
	}
	return o, true, nil
}

// MarkCollected records the pickup. Guarded on RESERVED so collected_at is
// written exactly once.
func (r *OrderRepository) MarkCollected(ctx context.Context, tx db.DBTX, id uuid.UUID, collectedAt time.Time) (*order.Order, bool, error) {
	row := tx.QueryRow(ctx, `
		UPDATE orders
		SET status = $3, collected_at = $2, updated_at = now()
		WHERE id = $1 AND status = $4
		RETURNING `+orderColumns,
		id, collectedAt, string(order.StatusCollected), string(order.StatusReserved),
	)

	o, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to mark order collected", err)
	}
	return o, true, nil
}

// OverdueReservation is the minimal row the expiry sweep needs.
type OverdueReservation struct {
	OrderID  uuid.UUID
	OfferID  uuid.UUID
	Quantity int32
}

// ListOverdueReserved selects RESERVED orders whose pickup window ended
// before now. Rows already expired by a previous sweep no longer match the
// status predicate and are never selected again.
func (r *OrderRepository) ListOverdueReserved(ctx context.Context, now time.Time) ([]OverdueReservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, offer_id, quantity
		FROM orders
		WHERE status = $1 AND pickup_window_end < $2`,
		string(order.StatusReserved), now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue reservations", err)
	}
	defer rows.Close()

	var result []OverdueReservation
	for rows.Next() {
		var item OverdueReservation
		if err := rows.Scan(&item.OrderID, &item.OfferID, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue reservation", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overdue reservations", err)
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id, restaurantID, customerID uuid.UUID
		offerID                      pgtype.UUID
		customerName, customerPhone  string
		quantity, amountPaise        int32
		status                       string
		pickupCode                   string
		windowStart, windowEnd       time.Time
		paymentOrderID               string
		collectedAt                  pgtype.Timestamptz
		createdAt, updatedAt         time.Time
	)

	err := row.Scan(
		&id, &offerID, &restaurantID, &customerID, &customerName, &customerPhone,
		&quantity, &amountPaise, &status, &pickupCode,
		&windowStart, &windowEnd, &paymentOrderID,
		&collectedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window, err := offer.NewPickupWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	var offerUUID uuid.UUID
	if offerID.Valid {
		offerUUID = uuid.UUID(offerID.Bytes)
	}

	return order.ReconstructOrder(
		id, offerUUID, restaurantID, customerID,
		customerName, customerPhone,
		quantity, amountPaise,
		order.Status(status), pickupCode, window, paymentOrderID,
		pgconv.TimePtrFromPgtype(collectedAt),
		createdAt, updatedAt,
	), nil
}
