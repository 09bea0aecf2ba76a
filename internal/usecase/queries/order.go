package queries

import (
	"context"

	"github.com/google/uuid"

	"mealpedeal/internal/domain/order"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/pkg/errs"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrderAccessDenied = errs.New("order access denied")
)

type OrderReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*order.Order, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	orderRepo      OrderReadRepo
	offerRepo      OfferReadRepo
	restaurantRepo RestaurantReadRepo
}

func NewOrderQueries(orderRepo OrderReadRepo, offerRepo OfferReadRepo, restaurantRepo RestaurantReadRepo) OrderQueries {
	return &orderQueriesImpl{
		orderRepo:      orderRepo,
		offerRepo:      offerRepo,
		restaurantRepo: restaurantRepo,
	}
}

// GetByID enforces ownership: a customer only ever sees their own orders.
func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderView, error) {
	o, err := q.orderRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.CustomerID() != actorID {
		return nil, ErrOrderAccessDenied
	}
	return q.buildOrderView(ctx, o)
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error) {
	orders, err := q.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		view, err := q.buildOrderView(ctx, o)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *orderQueriesImpl) buildOrderView(ctx context.Context, o *order.Order) (*OrderView, error) {
	view := &OrderView{
		ID:                o.ID(),
		OfferID:           o.OfferID(),
		RestaurantID:      o.RestaurantID(),
		CustomerID:        o.CustomerID(),
		Quantity:          o.Quantity(),
		AmountPaise:       o.AmountPaise(),
		Status:            string(o.Status()),
		PickupCode:        o.PickupCode(),
		PickupWindowStart: o.PickupWindow().Start(),
		PickupWindowEnd:   o.PickupWindow().End(),
		PaymentOrderID:    o.PaymentOrderID(),
		CollectedAt:       o.CollectedAt(),
		CreatedAt:         o.CreatedAt(),
	}

	if offerEntity, err := q.offerRepo.FindByID(ctx, o.OfferID()); err == nil {
		view.OfferTitle = offerEntity.Title()
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if snapshot, err := q.restaurantRepo.FindByID(ctx, o.RestaurantID()); err == nil {
		view.RestaurantName = snapshot.Name
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	return view, nil
}
