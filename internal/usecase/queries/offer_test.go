//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/infra/repository"
	"mealpedeal/internal/pkg/clock"
	"mealpedeal/internal/pkg/geo"
	"mealpedeal/internal/usecase/queries"
	queriesmock "mealpedeal/tests/mock/queries"
)

var (
	// Koramangala, Bangalore
	testOrigin = geo.Point{Latitude: 12.9352, Longitude: 77.6245}
	testNow    = time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)
)

type offerFixture struct {
	restaurantID uuid.UUID
	title        string
	pricePaise   int32
	discount     int32
	available    int32
	vegetarian   *bool
	category     *offer.FoodCategory
	cuisine      *string
}

func buildOffer(t *testing.T, f offerFixture) *offer.Offer {
	t.Helper()

	window, err := offer.NewPickupWindow(testNow.Add(time.Hour), testNow.Add(3*time.Hour))
	require.NoError(t, err)

	original := f.pricePaise * 2
	return offer.ReconstructOffer(
		uuid.New(), f.restaurantID,
		f.title,
		nil, nil,
		original, f.pricePaise, f.discount, 10, f.available,
		window,
		true,
		f.vegetarian, nil, nil, nil,
		f.cuisine,
		nil,
		f.category,
		nil,
		nil,
		testNow.Add(-time.Hour), testNow.Add(-time.Hour),
	)
}

func snapshotAt(name string, lat, lng float64) *repository.RestaurantSnapshot {
	phone := "9876543210"
	return &repository.RestaurantSnapshot{
		ID:        uuid.New(),
		Name:      name,
		Phone:     &phone,
		Latitude:  &lat,
		Longitude: &lng,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestOfferQueries_ListNearby(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := queriesmock.NewMockOfferReadRepo(ctrl)
	restaurantRepo := queriesmock.NewMockRestaurantReadRepo(ctrl)

	// ~1km away from the origin
	near := snapshotAt("Near Kitchen", 12.9400, 77.6300)
	// Mysore, well beyond any sane radius
	far := snapshotAt("Far Kitchen", 12.2958, 76.6394)
	// no coordinates
	unlocated := &repository.RestaurantSnapshot{ID: uuid.New(), Name: "Unlocated"}

	nearOffer := buildOffer(t, offerFixture{restaurantID: near.ID, title: "near bag", pricePaise: 9900, discount: 50, available: 3})
	farOffer := buildOffer(t, offerFixture{restaurantID: far.ID, title: "far bag", pricePaise: 9900, discount: 60, available: 3})
	unlocatedOffer := buildOffer(t, offerFixture{restaurantID: unlocated.ID, title: "unlocated bag", pricePaise: 9900, discount: 70, available: 3})
	soldOutOffer := buildOffer(t, offerFixture{restaurantID: near.ID, title: "sold out bag", pricePaise: 9900, discount: 80, available: 0})

	offerRepo.EXPECT().ListActive(gomock.Any(), testNow).
		Return([]*offer.Offer{nearOffer, farOffer, unlocatedOffer, soldOutOffer}, nil)
	restaurantRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]*repository.RestaurantSnapshot{
			near.ID:      near,
			far.ID:       far,
			unlocated.ID: unlocated,
		}, nil)

	q := queries.NewOfferQueries(offerRepo, restaurantRepo, clock.NewMockClock(testNow))
	items, err := q.ListNearby(context.Background(), queries.NearbyFilters{Location: testOrigin})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "near bag", items[0].Title)
	assert.Equal(t, "Near Kitchen", items[0].RestaurantName)
	assert.InDelta(t, 0.8, items[0].DistanceKm, 0.5)
}

func TestOfferQueries_ListNearby_Filters(t *testing.T) {
	restaurant := snapshotAt("Veg Corner", 12.9400, 77.6300)

	vegOffer := buildOffer(t, offerFixture{
		restaurantID: restaurant.ID, title: "veg thali", pricePaise: 9900, discount: 50,
		available: 3, vegetarian: boolPtr(true),
	})
	nonVegOffer := buildOffer(t, offerFixture{
		restaurantID: restaurant.ID, title: "chicken biryani", pricePaise: 14900, discount: 40,
		available: 3, vegetarian: boolPtr(false),
	})
	cheapOffer := buildOffer(t, offerFixture{
		restaurantID: restaurant.ID, title: "idli box", pricePaise: 4900, discount: 30,
		available: 3, vegetarian: boolPtr(true),
	})
	all := []*offer.Offer{vegOffer, nonVegOffer, cheapOffer}

	tests := []struct {
		name    string
		filters queries.NearbyFilters
		want    []string
	}{
		{
			name:    "no filters returns everything in radius",
			filters: queries.NearbyFilters{Location: testOrigin},
			want:    []string{"veg thali", "chicken biryani", "idli box"},
		},
		{
			name:    "vegetarian only",
			filters: queries.NearbyFilters{Location: testOrigin, Vegetarian: true},
			want:    []string{"veg thali", "idli box"},
		},
		{
			name: "max price",
			filters: queries.NearbyFilters{
				Location:      testOrigin,
				MaxPricePaise: int32Ptr(5000),
			},
			want: []string{"idli box"},
		},
		{
			name: "min discount",
			filters: queries.NearbyFilters{
				Location:    testOrigin,
				MinDiscount: int32Ptr(40),
			},
			want: []string{"veg thali", "chicken biryani"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			offerRepo := queriesmock.NewMockOfferReadRepo(ctrl)
			restaurantRepo := queriesmock.NewMockRestaurantReadRepo(ctrl)

			offerRepo.EXPECT().ListActive(gomock.Any(), testNow).Return(all, nil)
			restaurantRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
				Return(map[uuid.UUID]*repository.RestaurantSnapshot{restaurant.ID: restaurant}, nil)

			q := queries.NewOfferQueries(offerRepo, restaurantRepo, clock.NewMockClock(testNow))
			items, err := q.ListNearby(context.Background(), tt.filters)

			require.NoError(t, err)
			got := make([]string, 0, len(items))
			for _, item := range items {
				got = append(got, item.Title)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOfferQueries_ListByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := queriesmock.NewMockOfferReadRepo(ctrl)
	restaurantRepo := queriesmock.NewMockRestaurantReadRepo(ctrl)

	restaurant := snapshotAt("Sweet Shop", 12.9400, 77.6300)
	sweets := offer.CategorySweets
	lunch := offer.CategoryLunch

	sweetOffer := buildOffer(t, offerFixture{restaurantID: restaurant.ID, title: "mysore pak", pricePaise: 9900, discount: 50, available: 2, category: &sweets})
	lunchOffer := buildOffer(t, offerFixture{restaurantID: restaurant.ID, title: "meals", pricePaise: 9900, discount: 50, available: 2, category: &lunch})

	offerRepo.EXPECT().ListActive(gomock.Any(), testNow).Return([]*offer.Offer{sweetOffer, lunchOffer}, nil)
	restaurantRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]*repository.RestaurantSnapshot{restaurant.ID: restaurant}, nil)

	q := queries.NewOfferQueries(offerRepo, restaurantRepo, clock.NewMockClock(testNow))
	views, err := q.ListByCategory(context.Background(), offer.CategorySweets)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "mysore pak", views[0].Title)
}

func TestOfferQueries_ListVegetarian(t *testing.T) {
	ctrl := gomock.NewController(t)
	offerRepo := queriesmock.NewMockOfferReadRepo(ctrl)
	restaurantRepo := queriesmock.NewMockRestaurantReadRepo(ctrl)

	restaurant := snapshotAt("Udupi", 12.9400, 77.6300)
	vegOffer := buildOffer(t, offerFixture{restaurantID: restaurant.ID, title: "veg box", pricePaise: 9900, discount: 50, available: 2, vegetarian: boolPtr(true)})
	unknownOffer := buildOffer(t, offerFixture{restaurantID: restaurant.ID, title: "mystery box", pricePaise: 9900, discount: 50, available: 2})

	offerRepo.EXPECT().ListActive(gomock.Any(), testNow).Return([]*offer.Offer{vegOffer, unknownOffer}, nil)
	restaurantRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]*repository.RestaurantSnapshot{restaurant.ID: restaurant}, nil)

	q := queries.NewOfferQueries(offerRepo, restaurantRepo, clock.NewMockClock(testNow))
	views, err := q.ListVegetarian(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "veg box", views[0].Title)
}

func int32Ptr(v int32) *int32 { return &v }
