package repository

import (
	"context"
	"time"

	"mealpedeal/internal/domain/offer"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const offerColumns = `
	id, restaurant_id, title, description, image_url,
	original_value_paise, price_paise, discount_percentage,
	quantity_total, quantity_available,
	pickup_window_start, pickup_window_end, is_active,
	is_vegetarian, is_jain, is_vegan, contains_alcohol,
	cuisine, spice_level, food_category, preparation_time_min, allergens,
	created_at, updated_at`

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(pool db.DBTX) *OfferRepository {
	return &OfferRepository{db: pool}
}

func (r *OfferRepository) Create(ctx context.Context, tx db.DBTX, o *offer.Offer) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO offers (
			id, restaurant_id, title, description, image_url,
			original_value_paise, price_paise, discount_percentage,
			quantity_total, quantity_available,
			pickup_window_start, pickup_window_end, is_active,
			is_vegetarian, is_jain, is_vegan, contains_alcohol,
			cuisine, spice_level, food_category, preparation_time_min, allergens
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)`,
		o.ID(), o.RestaurantID(), o.Title(),
		pgconv.StringPtrToPgtype(o.Description()), pgconv.StringPtrToPgtype(o.ImageURL()),
		o.OriginalValuePaise(), o.PricePaise(), o.DiscountPercentage(),
		o.QuantityTotal(), o.QuantityAvailable(),
		o.PickupWindow().Start(), o.PickupWindow().End(), o.IsActive(),
		pgconv.BoolPtrToPgtype(o.IsVegetarian()), pgconv.BoolPtrToPgtype(o.IsJain()),
		pgconv.BoolPtrToPgtype(o.IsVegan()), pgconv.BoolPtrToPgtype(o.ContainsAlcohol()),
		pgconv.StringPtrToPgtype(o.Cuisine()), spiceLevelToPgtype(o.SpiceLevel()),
		foodCategoryToPgtype(o.FoodCategory()), pgconv.Int32PtrToPgtype(o.PreparationTimeMin()),
		pgconv.StringPtrToPgtype(o.Allergens()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)

	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer by ID", err)
	}
	return o, nil
}

type OfferPatch struct {
	Title             *string
	Description       *string
	ImageURL          *string
	PricePaise        *int32
	PickupWindowStart *time.Time
	PickupWindowEnd   *time.Time
	IsActive          *bool
	IsVegetarian      *bool
	IsJain            *bool
	IsVegan           *bool
	Cuisine           *string
	SpiceLevel        *offer.SpiceLevel
	FoodCategory      *offer.FoodCategory
}

// Update applies a partial edit. Quantity columns are deliberately not
// updatable here; stock moves only through ReserveAtomic/RestoreAtomic.
// The discount is recomputed in the same statement when the price changes.
func (r *OfferRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch OfferPatch) (*offer.Offer, error) {
	var spice, category pgtype.Text
	if patch.SpiceLevel != nil {
		spice = pgconv.StringToPgtype(string(*patch.SpiceLevel))
	}
	if patch.FoodCategory != nil {
		category = pgconv.StringToPgtype(string(*patch.FoodCategory))
	}

	row := tx.QueryRow(ctx, `
		UPDATE offers SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			price_paise = COALESCE($5, price_paise),
			discount_percentage = CASE WHEN $5::int IS NULL THEN discount_percentage
				ELSE ROUND((original_value_paise - $5)::numeric / original_value_paise * 100)::int END,
			pickup_window_start = COALESCE($6, pickup_window_start),
			pickup_window_end = COALESCE($7, pickup_window_end),
			is_active = COALESCE($8, is_active),
			is_vegetarian = COALESCE($9, is_vegetarian),
			is_jain = COALESCE($10, is_jain),
			is_vegan = COALESCE($11, is_vegan),
			cuisine = COALESCE($12, cuisine),
			spice_level = COALESCE($13, spice_level),
			food_category = COALESCE($14, food_category),
			updated_at = now()
		WHERE id = $1
		RETURNING `+offerColumns,
		id,
		pgconv.StringPtrToPgtype(patch.Title), pgconv.StringPtrToPgtype(patch.Description),
		pgconv.StringPtrToPgtype(patch.ImageURL), pgconv.Int32PtrToPgtype(patch.PricePaise),
		pgconv.TimePtrToPgtype(patch.PickupWindowStart), pgconv.TimePtrToPgtype(patch.PickupWindowEnd),
		pgconv.BoolPtrToPgtype(patch.IsActive), pgconv.BoolPtrToPgtype(patch.IsVegetarian),
		pgconv.BoolPtrToPgtype(patch.IsJain), pgconv.BoolPtrToPgtype(patch.IsVegan),
		pgconv.StringPtrToPgtype(patch.Cuisine), spice, category,
	)

	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update offer", err)
	}
	return o, nil
}

func (r *OfferRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, onlyActive bool) ([]*offer.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offers
		WHERE restaurant_id = $1 AND ($2 = false OR is_active = true)
		ORDER BY created_at DESC`,
		restaurantID, onlyActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant offers", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

// ListActive returns offers that are enabled and whose pickup window has not
// yet ended.
func (r *OfferRepository) ListActive(ctx context.Context, now time.Time) ([]*offer.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offers
		WHERE is_active = true AND pickup_window_end > $1
		ORDER BY discount_percentage DESC`,
		now,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active offers", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

// ReserveAtomic decrements quantity_available by qty as a single conditional
// write. The availability predicate is evaluated by the database against the
// current row value, so concurrent reserves serialize on the row and can
// never drive availability negative.
func (r *OfferRepository) ReserveAtomic(ctx context.Context, tx db.DBTX, id uuid.UUID, qty int32) (*offer.Offer, error) {
	row := tx.QueryRow(ctx, `
		UPDATE offers
		SET quantity_available = quantity_available - $2, updated_at = now()
		WHERE id = $1 AND quantity_available >= $2
		RETURNING `+offerColumns,
		id, qty,
	)

	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, r.classifyReserveMiss(ctx, tx, id, err)
		}
		return nil, infra.WrapRepoErr("failed to reserve offer stock", err)
	}
	return o, nil
}

// classifyReserveMiss distinguishes a depleted offer from a missing one when
// the conditional update matched no row.
func (r *OfferRepository) classifyReserveMiss(ctx context.Context, tx db.DBTX, id uuid.UUID, cause error) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM offers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to classify reserve failure", err)
	}
	if !exists {
		return infra.WrapRepoErr("offer not found", cause, infra.KindNotFound)
	}
	return infra.WrapRepoErr("offer stock depleted", cause, infra.KindInsufficientStock)
}

// RestoreAtomic increments quantity_available by qty unconditionally, as a
// single write. Safe against racing reserves: both deltas commit in row-lock
// order, so no update is lost.
func (r *OfferRepository) RestoreAtomic(ctx context.Context, tx db.DBTX, id uuid.UUID, qty int32) (*offer.Offer, error) {
	row := tx.QueryRow(ctx, `
		UPDATE offers
		SET quantity_available = quantity_available + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+offerColumns,
		id, qty,
	)

	o, err := scanOffer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to restore offer stock", err)
	}
	return o, nil
}

func collectOffers(rows pgx.Rows) ([]*offer.Offer, error) {
	var result []*offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}
	return result, nil
}

func scanOffer(row pgx.Row) (*offer.Offer, error) {
	var (
		id, restaurantID                       uuid.UUID
		title                                  string
		description, imageURL                  pgtype.Text
		originalValue, price, discount         int32
		quantityTotal, quantityAvailable       int32
		windowStart, windowEnd                 time.Time
		isActive                               bool
		isVegetarian, isJain, isVegan, alcohol pgtype.Bool
		cuisine, spiceLevel, foodCategory      pgtype.Text
		preparationTime                        pgtype.Int4
		allergens                              pgtype.Text
		createdAt, updatedAt                   time.Time
	)

	err := row.Scan(
		&id, &restaurantID, &title, &description, &imageURL,
		&originalValue, &price, &discount,
		&quantityTotal, &quantityAvailable,
		&windowStart, &windowEnd, &isActive,
		&isVegetarian, &isJain, &isVegan, &alcohol,
		&cuisine, &spiceLevel, &foodCategory, &preparationTime, &allergens,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window, err := offer.NewPickupWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	return offer.ReconstructOffer(
		id, restaurantID, title,
		pgconv.StringPtrFromPgtype(description), pgconv.StringPtrFromPgtype(imageURL),
		originalValue, price, discount, quantityTotal, quantityAvailable,
		window, isActive,
		pgconv.BoolPtrFromPgtype(isVegetarian), pgconv.BoolPtrFromPgtype(isJain),
		pgconv.BoolPtrFromPgtype(isVegan), pgconv.BoolPtrFromPgtype(alcohol),
		pgconv.StringPtrFromPgtype(cuisine),
		spiceLevelFromPgtype(spiceLevel), foodCategoryFromPgtype(foodCategory),
		pgconv.Int32PtrFromPgtype(preparationTime), pgconv.StringPtrFromPgtype(allergens),
		createdAt, updatedAt,
	), nil
}

func spiceLevelToPgtype(s *offer.SpiceLevel) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(string(*s))
}

func spiceLevelFromPgtype(pt pgtype.Text) *offer.SpiceLevel {
	if !pt.Valid {
		return nil
	}
	s := offer.SpiceLevel(pt.String)
	return &s
}

func foodCategoryToPgtype(c *offer.FoodCategory) pgtype.Text {
	if c == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(string(*c))
}

func foodCategoryFromPgtype(pt pgtype.Text) *offer.FoodCategory {
	if !pt.Valid {
		return nil
	}
	c := offer.FoodCategory(pt.String)
	return &c
}
