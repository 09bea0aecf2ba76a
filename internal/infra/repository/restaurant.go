package repository

import (
	"context"

	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// RestaurantSnapshot is the read-only projection this service needs from the
// restaurant catalogue, which is owned elsewhere. Coordinates are nullable:
// unlocated restaurants are excluded from nearby search.
type RestaurantSnapshot struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Latitude  *float64
	Longitude *float64
	Cuisine   *string
}

type RestaurantRepository struct {
	db db.DBTX
}

func NewRestaurantRepository(pool db.DBTX) *RestaurantRepository {
	return &RestaurantRepository{db: pool}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, phone, latitude, longitude, cuisine
		FROM restaurants
		WHERE id = $1`,
		id,
	)

	var (
		snapshot            RestaurantSnapshot
		phone, cuisine      pgtype.Text
		latitude, longitude pgtype.Float8
	)
	err := row.Scan(&snapshot.ID, &snapshot.Name, &phone, &latitude, &longitude, &cuisine)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}

	snapshot.Phone = pgconv.StringPtrFromPgtype(phone)
	snapshot.Cuisine = pgconv.StringPtrFromPgtype(cuisine)
	if snapshot.Latitude, err = pgconv.Float64PtrFromPgtype(latitude); err != nil {
		return nil, infra.WrapRepoErr("invalid restaurant latitude", err)
	}
	if snapshot.Longitude, err = pgconv.Float64PtrFromPgtype(longitude); err != nil {
		return nil, infra.WrapRepoErr("invalid restaurant longitude", err)
	}

	return &snapshot, nil
}

// FindByIDs batch-loads restaurants for the nearby search join.
func (r *RestaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*RestaurantSnapshot, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*RestaurantSnapshot{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, latitude, longitude, cuisine
		FROM restaurants
		WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*RestaurantSnapshot, len(ids))
	for rows.Next() {
		var (
			snapshot            RestaurantSnapshot
			phone, cuisine      pgtype.Text
			latitude, longitude pgtype.Float8
		)
		if err := rows.Scan(&snapshot.ID, &snapshot.Name, &phone, &latitude, &longitude, &cuisine); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restaurant row", err)
		}
		snapshot.Phone = pgconv.StringPtrFromPgtype(phone)
		snapshot.Cuisine = pgconv.StringPtrFromPgtype(cuisine)
		if snapshot.Latitude, err = pgconv.Float64PtrFromPgtype(latitude); err != nil {
			return nil, infra.WrapRepoErr("invalid restaurant latitude", err)
		}
		if snapshot.Longitude, err = pgconv.Float64PtrFromPgtype(longitude); err != nil {
			return nil, infra.WrapRepoErr("invalid restaurant longitude", err)
		}
		s := snapshot
		result[snapshot.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate restaurant rows", err)
	}

	return result, nil
}
