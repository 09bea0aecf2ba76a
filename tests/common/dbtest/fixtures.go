//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRestaurant(t *testing.T, db DBLike, name string, lat, lng float64) uuid.UUID {
	t.Helper()

	restaurantID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO restaurants (id, name, phone, latitude, longitude, cuisine) VALUES ($1, $2, '9876543210', $3, $4, 'South Indian')",
		restaurantID, name, lat, lng)
	require.NoError(t, err)

	return restaurantID
}

type OfferFixture struct {
	RestaurantID uuid.UUID
	Title        string
	PricePaise   int32
	Quantity     int32
	WindowStart  time.Time
	WindowEnd    time.Time
	IsActive     bool
}

func CreateTestOffer(t *testing.T, db DBLike, f OfferFixture) uuid.UUID {
	t.Helper()

	offerID := uuid.New()
	ctx := context.Background()

	if f.Title == "" {
		f.Title = "Test surprise bag"
	}
	if f.PricePaise == 0 {
		f.PricePaise = 14900
	}
	if f.WindowEnd.IsZero() {
		f.WindowStart = time.Now().Add(time.Hour)
		f.WindowEnd = time.Now().Add(3 * time.Hour)
	}

	_, err := db.Exec(ctx, `
		INSERT INTO offers (id, restaurant_id, title, original_value_paise, price_paise,
		                    discount_percentage, quantity_total, quantity_available,
		                    pickup_window_start, pickup_window_end, is_active)
		VALUES ($1, $2, $3, $4, $5, 50, $6, $6, $7, $8, $9)`,
		offerID, f.RestaurantID, f.Title, f.PricePaise*2, f.PricePaise,
		f.Quantity, f.WindowStart, f.WindowEnd, f.IsActive)
	require.NoError(t, err)

	return offerID
}

type OrderFixture struct {
	OfferID        uuid.UUID
	RestaurantID   uuid.UUID
	CustomerID     uuid.UUID
	Quantity       int32
	Status         string
	PickupCode     string
	WindowStart    time.Time
	WindowEnd      time.Time
	PaymentOrderID string
}

func CreateTestOrder(t *testing.T, db DBLike, f OrderFixture) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	ctx := context.Background()

	if f.CustomerID == uuid.Nil {
		f.CustomerID = uuid.New()
	}
	if f.Quantity == 0 {
		f.Quantity = 1
	}
	if f.Status == "" {
		f.Status = "RESERVED"
	}
	if f.PickupCode == "" {
		f.PickupCode = "AB12CD34"
	}
	if f.WindowEnd.IsZero() {
		f.WindowStart = time.Now().Add(time.Hour)
		f.WindowEnd = time.Now().Add(3 * time.Hour)
	}
	if f.PaymentOrderID == "" {
		f.PaymentOrderID = "order_" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:14]
	}

	_, err := db.Exec(ctx, `
		INSERT INTO orders (id, offer_id, restaurant_id, customer_id, customer_name, customer_phone,
		                    quantity, amount_paise, status, pickup_code,
		                    pickup_window_start, pickup_window_end, payment_order_id)
		VALUES ($1, $2, $3, $4, 'Asha', '9876543210', $5, $6, $7, $8, $9, $10, $11)`,
		orderID, f.OfferID, f.RestaurantID, f.CustomerID,
		f.Quantity, f.Quantity*14900, f.Status, f.PickupCode,
		f.WindowStart, f.WindowEnd, f.PaymentOrderID)
	require.NoError(t, err)

	return orderID
}

func OfferAvailability(t *testing.T, db DBLike, offerID uuid.UUID) int32 {
	t.Helper()

	var available int32
	err := db.QueryRow(context.Background(),
		"SELECT quantity_available FROM offers WHERE id = $1", offerID).Scan(&available)
	require.NoError(t, err)
	return available
}

func OrderStatus(t *testing.T, db DBLike, orderID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM orders WHERE id = $1", orderID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
