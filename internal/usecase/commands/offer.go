package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"mealpedeal/internal/domain/offer"
	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/infra"
	"mealpedeal/internal/infra/db"
	"mealpedeal/internal/pkg/errs"
	"mealpedeal/internal/usecase/queries"
	"mealpedeal/internal/usecase/shared"
)

var (
	ErrOfferNotFound           = errs.New("offer not found")
	ErrRestaurantNotFound      = errs.New("restaurant not found")
	ErrPermissionDenied        = errs.New("permission denied")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type OfferCommands interface {
	CreateOffer(ctx context.Context, req reqdto.CreateOfferRequest, restaurantID uuid.UUID) (*queries.OfferView, error)
	UpdateOffer(ctx context.Context, req reqdto.UpdateOfferRequest, offerID, restaurantID uuid.UUID) (*queries.OfferView, error)
}

type offerUseCaseImpl struct {
	offerRepo      OfferRepository
	restaurantRepo RestaurantRepository
	offerQueries   queries.OfferQueries
	db             *pgxpool.Pool
}

func NewOfferUseCase(
	offerRepo OfferRepository,
	restaurantRepo RestaurantRepository,
	offerQueries queries.OfferQueries,
	db *pgxpool.Pool,
) OfferCommands {
	return &offerUseCaseImpl{
		offerRepo:      offerRepo,
		restaurantRepo: restaurantRepo,
		offerQueries:   offerQueries,
		db:             db,
	}
}

func (u *offerUseCaseImpl) CreateOffer(
	ctx context.Context,
	req reqdto.CreateOfferRequest,
	restaurantID uuid.UUID,
) (*queries.OfferView, error) {
	if _, err := u.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	offerEntity, err := req.ToDomain(restaurantID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	_, err = shared.RunInTx(ctx, u.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, u.offerRepo.Create(ctx, tx, offerEntity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.offerQueries.GetByID(ctx, offerEntity.ID())
}

// UpdateOffer applies a partial edit after an ownership check. Stock
// quantities are never editable through this path.
func (u *offerUseCaseImpl) UpdateOffer(
	ctx context.Context,
	req reqdto.UpdateOfferRequest,
	offerID, restaurantID uuid.UUID,
) (*queries.OfferView, error) {
	existing, err := u.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.RestaurantID() != restaurantID {
		return nil, ErrPermissionDenied
	}

	patch, err := req.ToPatch()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := validateWindowPatch(existing, req); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if req.PricePaise != nil && *req.PricePaise > existing.OriginalValuePaise() {
		return nil, errs.Mark(offer.ErrInvalidPrice, ErrDomainValidation)
	}

	updated, err := shared.RunInTx(ctx, u.db, func(tx db.DBTX) (*offer.Offer, error) {
		return u.offerRepo.Update(ctx, tx, offerID, patch)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.offerQueries.GetByID(ctx, updated.ID())
}

// validateWindowPatch checks the start<end invariant against whichever bound
// the patch leaves unchanged.
func validateWindowPatch(existing *offer.Offer, req reqdto.UpdateOfferRequest) error {
	if req.PickupWindowStart == nil && req.PickupWindowEnd == nil {
		return nil
	}
	start := existing.PickupWindow().Start()
	end := existing.PickupWindow().End()
	if req.PickupWindowStart != nil {
		start = *req.PickupWindowStart
	}
	if req.PickupWindowEnd != nil {
		end = *req.PickupWindowEnd
	}
	_, err := offer.NewPickupWindow(start, end)
	return err
}
