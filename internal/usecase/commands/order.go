package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mealpedeal/internal/domain/order"
	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/pkg/errs"
	"mealpedeal/internal/usecase/queries"
	"mealpedeal/internal/usecase/shared"
)

var (
	ErrOrderNotFound       = errs.New("order not found")
	ErrOfferNotAvailable   = errs.New("offer not available")
	ErrInsufficientStock   = errs.New("insufficient stock")
	ErrOrderNotCancellable = errs.New("order not cancellable")
	ErrOrderNotCollectable = errs.New("order not collectable")
	ErrPickupCodeMismatch  = errs.New("pickup code mismatch")
	ErrPaymentGateway      = errs.New("payment gateway error")
)

type PlaceOrderResult struct {
	Order *queries.OrderView
	// Gateway fields the client needs to open the checkout flow.
	PaymentOrderID string
	AmountPaise    int32
	Currency       string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, customerID uuid.UUID) (*PlaceOrderResult, error)
	CancelOrder(ctx context.Context, orderID, customerID uuid.UUID) (*queries.OrderView, error)
	CollectOrder(ctx context.Context, orderID, restaurantID uuid.UUID, pickupCode string) (*queries.OrderView, error)
}

type orderUseCaseImpl struct {
	orderRepo    OrderRepository
	offerRepo    OfferRepository
	gateway      PaymentGateway
	orderQueries queries.OrderQueries
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	offerRepo OfferRepository,
	gateway PaymentGateway,
	orderQueries queries.OrderQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) OrderCommands {
	return &orderUseCaseImpl{
		orderRepo:    orderRepo,
		offerRepo:    offerRepo,
		gateway:      gateway,
		orderQueries: orderQueries,
		db:           db,
		clock:        clock,
	}
}

// PlaceOrder creates the gateway order first, then reserves stock and writes
// the order row in one transaction. The conditional reserve is the sole
// authority on availability; the pre-checks only exist to fail fast before
// paying the gateway round trip.
func (u *orderUseCaseImpl) PlaceOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	customerID uuid.UUID,
) (*PlaceOrderResult, error) {
	offerEntity, err := u.offerRepo.FindByID(ctx, req.OfferID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := u.clock.Now()
	if !offerEntity.IsActive() || offerEntity.PickupWindow().EndedAt(now) {
		return nil, ErrOfferNotAvailable
	}
	if offerEntity.QuantityAvailable() < req.Quantity {
		return nil, ErrInsufficientStock
	}

	amountPaise := offerEntity.PricePaise() * req.Quantity
	receipt := uuid.New().String()
	gatewayOrder, err := u.gateway.CreateOrder(ctx, int64(amountPaise), "INR", receipt, map[string]string{
		"offer_id":    offerEntity.ID().String(),
		"customer_id": customerID.String(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	orderEntity, err := order.NewOrder(
		offerEntity,
		customerID,
		req.CustomerName,
		req.CustomerPhone,
		req.Quantity,
		gatewayOrder.ID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		if _, reserveErr := u.offerRepo.ReserveAtomic(ctx, tx, offerEntity.ID(), req.Quantity); reserveErr != nil {
			return struct{}{}, reserveErr
		}
		return struct{}{}, u.orderRepo.Create(ctx, tx, orderEntity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.orderQueries.GetByID(ctx, customerID, orderEntity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &PlaceOrderResult{
		Order:          view,
		PaymentOrderID: gatewayOrder.ID,
		AmountPaise:    amountPaise,
		Currency:       "INR",
	}, nil
}

// CancelOrder flips the order to CANCELLED and puts the reserved quantity
// back. The status flip is guarded on the current value, so a racing cancel,
// expiry sweep or webhook loses the race cleanly and no quantity is ever
// restored twice.
func (u *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID, customerID uuid.UUID) (*queries.OrderView, error) {
	orderEntity, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if orderEntity.CustomerID() != customerID {
		return nil, ErrPermissionDenied
	}

	current := orderEntity.Status()
	if !current.CanTransitionTo(order.StatusCancelled) {
		return nil, ErrOrderNotCancellable
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		_, transitioned, txErr := u.orderRepo.UpdateStatusIfCurrent(ctx, tx, orderID, current, order.StatusCancelled)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if !transitioned {
			return struct{}{}, ErrOrderNotCancellable
		}
		if current.HoldsStock() {
			if _, txErr := u.offerRepo.RestoreAtomic(ctx, tx, orderEntity.OfferID(), orderEntity.Quantity()); txErr != nil {
				return struct{}{}, txErr
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotCancellable) {
			return nil, ErrOrderNotCancellable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.orderQueries.GetByID(ctx, customerID, orderID)
}

// CollectOrder is the restaurant-side handover: the manager presents the
// customer's pickup code and the order moves RESERVED -> COLLECTED.
func (u *orderUseCaseImpl) CollectOrder(
	ctx context.Context,
	orderID, restaurantID uuid.UUID,
	pickupCode string,
) (*queries.OrderView, error) {
	orderEntity, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if orderEntity.RestaurantID() != restaurantID {
		return nil, ErrPermissionDenied
	}

	now := u.clock.Now()
	if err := orderEntity.Collect(pickupCode, now); err != nil {
		switch {
		case errors.Is(err, order.ErrPickupCodeMismatch):
			return nil, ErrPickupCodeMismatch
		default:
			return nil, errs.Mark(err, ErrOrderNotCollectable)
		}
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		_, transitioned, txErr := u.orderRepo.MarkCollected(ctx, tx, orderID, now)
		if txErr != nil {
			return struct{}{}, txErr
		}
		if !transitioned {
			return struct{}{}, ErrOrderNotCollectable
		}
		return struct{}{}, nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotCollectable) {
			return nil, ErrOrderNotCollectable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.orderQueries.GetByID(ctx, orderEntity.CustomerID(), orderID)
}
