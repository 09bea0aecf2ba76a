//go:build e2e

package reservation_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/domain/order"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/infra/repository"
	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/usecase/shared"
	"mealpedeal/internal/worker"
	"mealpedeal/tests/common/dbtest"
	"mealpedeal/tests/common/httptest"
	"mealpedeal/tests/e2e"
)

type reservationSuite struct {
	e2e.SharedSuite
	offerRepo *repository.OfferRepository
	orderRepo *repository.OrderRepository
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.offerRepo = repository.NewOfferRepository(s.DB)
	s.orderRepo = repository.NewOrderRepository(s.DB)
}

func (s *reservationSuite) reserve(offerID uuid.UUID, qty int32) error {
	_, err := shared.RunInTx(context.Background(), s.DB, func(tx db.DBTX) (*offer.Offer, error) {
		return s.offerRepo.ReserveAtomic(context.Background(), tx, offerID, qty)
	})
	return err
}

func (s *reservationSuite) TestReserveAtomic() {
	s.Run("success: decrements availability while stock holds", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})

		s.Require().NoError(s.reserve(offerID, 2))
		s.Equal(int32(3), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})

	s.Run("error: reserving past availability leaves the row untouched", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     2,
			IsActive:     true,
		})

		err := s.reserve(offerID, 3)
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindInsufficientStock))
		s.Equal(int32(2), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})

	s.Run("success: two buyers racing for the last bag, exactly one wins", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     1,
			IsActive:     true,
		})

		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = s.reserve(offerID, 1)
			}(i)
		}
		wg.Wait()

		var won, lost int
		for _, err := range errs {
			switch {
			case err == nil:
				won++
			case infra.IsKind(err, infra.KindInsufficientStock):
				lost++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}
		s.Equal(1, won)
		s.Equal(1, lost)
		s.Equal(int32(0), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})

	s.Run("success: restore puts cancelled quantity back", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})

		s.Require().NoError(s.reserve(offerID, 4))
		s.Equal(int32(1), dbtest.OfferAvailability(s.T(), s.DB, offerID))

		_, err := shared.RunInTx(context.Background(), s.DB, func(tx db.DBTX) (*offer.Offer, error) {
			return s.offerRepo.RestoreAtomic(context.Background(), tx, offerID, 4)
		})
		s.Require().NoError(err)
		s.Equal(int32(5), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})
}

func (s *reservationSuite) TestGuardedStatusTransition() {
	s.Run("success: only the first transition wins", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     3,
			IsActive:     true,
		})
		orderID := dbtest.CreateTestOrder(s.T(), s.DB, dbtest.OrderFixture{
			OfferID:      offerID,
			RestaurantID: restaurantID,
			Status:       "RESERVED",
		})

		_, transitioned, err := s.orderRepo.UpdateStatusIfCurrent(
			context.Background(), s.DB, orderID, order.StatusReserved, order.StatusCancelled)
		s.Require().NoError(err)
		s.True(transitioned)

		_, transitioned, err = s.orderRepo.UpdateStatusIfCurrent(
			context.Background(), s.DB, orderID, order.StatusReserved, order.StatusCancelled)
		s.Require().NoError(err)
		s.False(transitioned, "second attempt must observe the changed status")

		s.Equal("CANCELLED", dbtest.OrderStatus(s.T(), s.DB, orderID))
	})
}

func (s *reservationSuite) TestExpirySweep() {
	s.Run("success: overdue reservations expire and stock returns", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})

		s.Require().NoError(s.reserve(offerID, 2))

		now := time.Now()
		overdueID := dbtest.CreateTestOrder(s.T(), s.DB, dbtest.OrderFixture{
			OfferID:      offerID,
			RestaurantID: restaurantID,
			Quantity:     2,
			Status:       "RESERVED",
			WindowStart:  now.Add(-3 * time.Hour),
			WindowEnd:    now.Add(-time.Hour),
		})
		currentID := dbtest.CreateTestOrder(s.T(), s.DB, dbtest.OrderFixture{
			OfferID:      offerID,
			RestaurantID: restaurantID,
			Status:       "RESERVED",
			WindowStart:  now.Add(time.Hour),
			WindowEnd:    now.Add(3 * time.Hour),
		})

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		w := worker.NewExpiryWorker(s.orderRepo, s.offerRepo, s.DB, clock.NewMockClock(now), time.Minute, logger)

		expired, err := w.SweepOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(1, expired)

		s.Equal("EXPIRED", dbtest.OrderStatus(s.T(), s.DB, overdueID))
		s.Equal("RESERVED", dbtest.OrderStatus(s.T(), s.DB, currentID))
		s.Equal(int32(5), dbtest.OfferAvailability(s.T(), s.DB, offerID))

		// the expired row no longer matches the sweep predicate
		expired, err = w.SweepOnce(context.Background())
		s.Require().NoError(err)
		s.Equal(0, expired)
		s.Equal(int32(5), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})
}

func (s *reservationSuite) TestPaymentWebhookFlow() {
	signBody := func(body []byte) string {
		mac := hmac.New(sha256.New, []byte(s.Config.Razorpay.WebhookSecret))
		mac.Write(body)
		return hex.EncodeToString(mac.Sum(nil))
	}

	s.Run("success: payment.captured confirms the pending order", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})
		s.Require().NoError(s.reserve(offerID, 1))
		orderID := dbtest.CreateTestOrder(s.T(), s.DB, dbtest.OrderFixture{
			OfferID:        offerID,
			RestaurantID:   restaurantID,
			Status:         "PENDING",
			PaymentOrderID: "order_E2ECAPTURED01",
		})

		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_E2ECAPTURED01","status":"captured"}}}}`)
		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/razorpay", body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body),
		})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		s.Equal("RESERVED", dbtest.OrderStatus(s.T(), s.DB, orderID))
		s.Equal(int32(4), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})

	s.Run("success: payment.failed cancels and restores stock", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})
		s.Require().NoError(s.reserve(offerID, 1))
		orderID := dbtest.CreateTestOrder(s.T(), s.DB, dbtest.OrderFixture{
			OfferID:        offerID,
			RestaurantID:   restaurantID,
			Status:         "PENDING",
			PaymentOrderID: "order_E2EFAILED01",
		})

		body := []byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_E2EFAILED01","status":"failed"}}}}`)
		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/razorpay", body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body),
		})
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		s.Equal("CANCELLED", dbtest.OrderStatus(s.T(), s.DB, orderID))
		s.Equal(int32(5), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})

	s.Run("error: a forged signature changes nothing", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})
		orderID := dbtest.CreateTestOrder(s.T(), s.DB, dbtest.OrderFixture{
			OfferID:        offerID,
			RestaurantID:   restaurantID,
			Status:         "PENDING",
			PaymentOrderID: "order_E2EFORGED01",
		})

		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_E2EFORGED01"}}}}`)
		rec := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/razorpay", body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": fmt.Sprintf("%064x", 0),
		})
		s.Equal(http.StatusBadRequest, rec.Code)

		s.Equal("PENDING", dbtest.OrderStatus(s.T(), s.DB, orderID))
	})
}

func (s *reservationSuite) TestStockCeiling() {
	s.Run("error: restoring past the total is rejected by the table", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})

		_, err := shared.RunInTx(context.Background(), s.DB, func(tx db.DBTX) (*offer.Offer, error) {
			return s.offerRepo.RestoreAtomic(context.Background(), tx, offerID, 1)
		})
		s.Require().Error(err)
		s.Equal(int32(5), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})

	s.Run("success: reserve then restore conserves the total", func() {
		restaurantID := dbtest.CreateTestRestaurant(s.T(), s.DB, "Udupi Grand", 12.9352, 77.6245)
		offerID := dbtest.CreateTestOffer(s.T(), s.DB, dbtest.OfferFixture{
			RestaurantID: restaurantID,
			Quantity:     5,
			IsActive:     true,
		})

		s.Require().NoError(s.reserve(offerID, 3))
		_, err := shared.RunInTx(context.Background(), s.DB, func(tx db.DBTX) (*offer.Offer, error) {
			return s.offerRepo.RestoreAtomic(context.Background(), tx, offerID, 3)
		})
		s.Require().NoError(err)
		s.Equal(int32(5), dbtest.OfferAvailability(s.T(), s.DB, offerID))
	})
}

func (s *reservationSuite) TestTransactionRetry() {
	serializationFailure := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}

	s.Run("success: a serialization failure is retried", func() {
		attempts := 0
		result, err := shared.WithDefaultRetry(context.Background(), s.DB, func(tx db.DBTX) (int, error) {
			attempts++
			if attempts == 1 {
				return 0, serializationFailure
			}
			return 42, nil
		})
		s.Require().NoError(err)
		s.Equal(42, result)
		s.Equal(2, attempts)
	})

	s.Run("error: a non-retryable failure surfaces immediately", func() {
		attempts := 0
		_, err := shared.WithDefaultRetry(context.Background(), s.DB, func(tx db.DBTX) (int, error) {
			attempts++
			return 0, errors.New("boom")
		})
		s.Require().Error(err)
		s.Equal(1, attempts)
	})

	s.Run("error: persistent contention exhausts the retry budget", func() {
		attempts := 0
		_, err := shared.RunInTxWithRetry(context.Background(), s.DB, 1, func(tx db.DBTX) (int, error) {
			attempts++
			return 0, serializationFailure
		})
		s.Require().Error(err)
		s.ErrorIs(err, shared.ErrMaxRetriesExceeded)
		s.Equal(2, attempts)
	})
}
