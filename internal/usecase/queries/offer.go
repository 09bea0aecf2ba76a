package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/repository"
	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/pkg/errs"
	"mealpedeal/internal/pkg/geo"
)

var ErrOfferNotFound = errs.New("offer not found")

const defaultRadiusKm = 10.0

// NearbyFilters narrows the discovery feed. Zero values mean "no filter";
// the dietary booleans are opt-in and only exclude when set.
type NearbyFilters struct {
	Location      geo.Point
	RadiusKm      float64
	Vegetarian    bool
	Jain          bool
	Vegan         bool
	Cuisine       *string
	SpiceLevel    *offer.SpiceLevel
	FoodCategory  *offer.FoodCategory
	MaxPricePaise *int32
	MinDiscount   *int32
}

type OfferReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	ListActive(ctx context.Context, now time.Time) ([]*offer.Offer, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, onlyActive bool) ([]*offer.Offer, error)
}

type RestaurantReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.RestaurantSnapshot, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*repository.RestaurantSnapshot, error)
}

type OfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	ListNearby(ctx context.Context, filters NearbyFilters) ([]*NearbyOfferItem, error)
	ListByCategory(ctx context.Context, category offer.FoodCategory) ([]*OfferView, error)
	ListVegetarian(ctx context.Context) ([]*OfferView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, onlyActive bool) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	offerRepo      OfferReadRepo
	restaurantRepo RestaurantReadRepo
	clock          clock.Clock
}

func NewOfferQueries(offerRepo OfferReadRepo, restaurantRepo RestaurantReadRepo, clock clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		offerRepo:      offerRepo,
		restaurantRepo: restaurantRepo,
		clock:          clock,
	}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	o, err := q.offerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	snapshot, err := q.restaurantRepo.FindByID(ctx, o.RestaurantID())
	if err != nil {
		return nil, err
	}
	return buildOfferView(o, snapshot), nil
}

// ListNearby walks the active offers, joins restaurant coordinates and keeps
// offers within the radius that pass every requested filter. Restaurants
// without coordinates never appear in the feed. Order follows the store's
// discount-descending listing.
func (q *offerQueriesImpl) ListNearby(ctx context.Context, filters NearbyFilters) ([]*NearbyOfferItem, error) {
	radius := filters.RadiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}

	offers, err := q.offerRepo.ListActive(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	restaurants, err := q.lookupRestaurants(ctx, offers)
	if err != nil {
		return nil, err
	}

	items := make([]*NearbyOfferItem, 0, len(offers))
	for _, o := range offers {
		snapshot := restaurants[o.RestaurantID()]
		if snapshot == nil || snapshot.Latitude == nil || snapshot.Longitude == nil {
			continue
		}
		if o.QuantityAvailable() < 1 {
			continue
		}
		if !matchesFilters(o, filters) {
			continue
		}

		distance := geo.DistanceKm(filters.Location, geo.Point{
			Latitude:  *snapshot.Latitude,
			Longitude: *snapshot.Longitude,
		})
		if distance > radius {
			continue
		}

		items = append(items, &NearbyOfferItem{
			OfferView:  *buildOfferView(o, snapshot),
			DistanceKm: distance,
		})
	}
	return items, nil
}

func (q *offerQueriesImpl) ListByCategory(ctx context.Context, category offer.FoodCategory) ([]*OfferView, error) {
	return q.listActiveWhere(ctx, func(o *offer.Offer) bool {
		return o.FoodCategory() != nil && *o.FoodCategory() == category
	})
}

func (q *offerQueriesImpl) ListVegetarian(ctx context.Context) ([]*OfferView, error) {
	return q.listActiveWhere(ctx, func(o *offer.Offer) bool {
		return o.IsVegetarian() != nil && *o.IsVegetarian()
	})
}

func (q *offerQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, onlyActive bool) ([]*OfferView, error) {
	snapshot, err := q.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	offers, err := q.offerRepo.ListByRestaurant(ctx, restaurantID, onlyActive)
	if err != nil {
		return nil, err
	}

	views := make([]*OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, buildOfferView(o, snapshot))
	}
	return views, nil
}

func (q *offerQueriesImpl) listActiveWhere(ctx context.Context, keep func(*offer.Offer) bool) ([]*OfferView, error) {
	offers, err := q.offerRepo.ListActive(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	kept := make([]*offer.Offer, 0, len(offers))
	for _, o := range offers {
		if o.QuantityAvailable() >= 1 && keep(o) {
			kept = append(kept, o)
		}
	}

	restaurants, err := q.lookupRestaurants(ctx, kept)
	if err != nil {
		return nil, err
	}

	views := make([]*OfferView, 0, len(kept))
	for _, o := range kept {
		views = append(views, buildOfferView(o, restaurants[o.RestaurantID()]))
	}
	return views, nil
}

func (q *offerQueriesImpl) lookupRestaurants(ctx context.Context, offers []*offer.Offer) (map[uuid.UUID]*repository.RestaurantSnapshot, error) {
	seen := make(map[uuid.UUID]struct{}, len(offers))
	ids := make([]uuid.UUID, 0, len(offers))
	for _, o := range offers {
		if _, ok := seen[o.RestaurantID()]; ok {
			continue
		}
		seen[o.RestaurantID()] = struct{}{}
		ids = append(ids, o.RestaurantID())
	}
	if len(ids) == 0 {
		return map[uuid.UUID]*repository.RestaurantSnapshot{}, nil
	}
	return q.restaurantRepo.FindByIDs(ctx, ids)
}

func matchesFilters(o *offer.Offer, f NearbyFilters) bool {
	if f.Vegetarian && (o.IsVegetarian() == nil || !*o.IsVegetarian()) {
		return false
	}
	if f.Jain && (o.IsJain() == nil || !*o.IsJain()) {
		return false
	}
	if f.Vegan && (o.IsVegan() == nil || !*o.IsVegan()) {
		return false
	}
	if f.Cuisine != nil {
		if o.Cuisine() == nil || !strings.EqualFold(*o.Cuisine(), *f.Cuisine) {
			return false
		}
	}
	if f.SpiceLevel != nil {
		if o.SpiceLevel() == nil || *o.SpiceLevel() != *f.SpiceLevel {
			return false
		}
	}
	if f.FoodCategory != nil {
		if o.FoodCategory() == nil || *o.FoodCategory() != *f.FoodCategory {
			return false
		}
	}
	if f.MaxPricePaise != nil && o.PricePaise() > *f.MaxPricePaise {
		return false
	}
	if f.MinDiscount != nil && o.DiscountPercentage() < *f.MinDiscount {
		return false
	}
	return true
}

func buildOfferView(o *offer.Offer, snapshot *repository.RestaurantSnapshot) *OfferView {
	view := &OfferView{
		ID:                 o.ID(),
		RestaurantID:       o.RestaurantID(),
		Title:              o.Title(),
		Description:        o.Description(),
		ImageURL:           o.ImageURL(),
		OriginalValuePaise: o.OriginalValuePaise(),
		PricePaise:         o.PricePaise(),
		DiscountPercentage: o.DiscountPercentage(),
		QuantityAvailable:  o.QuantityAvailable(),
		PickupWindowStart:  o.PickupWindow().Start(),
		PickupWindowEnd:    o.PickupWindow().End(),
		IsActive:           o.IsActive(),
		IsVegetarian:       o.IsVegetarian(),
		IsJain:             o.IsJain(),
		IsVegan:            o.IsVegan(),
		Cuisine:            o.Cuisine(),
		PreparationTimeMin: o.PreparationTimeMin(),
		Allergens:          o.Allergens(),
		CreatedAt:          o.CreatedAt(),
	}
	if s := o.SpiceLevel(); s != nil {
		v := string(*s)
		view.SpiceLevel = &v
	}
	if c := o.FoodCategory(); c != nil {
		v := string(*c)
		view.FoodCategory = &v
	}
	if snapshot != nil {
		view.RestaurantName = snapshot.Name
	}
	return view
}
