package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"mealpedeal/internal/infra/db"
	repo_impl "mealpedeal/internal/infra/repository"
	"mealpedeal/internal/usecase/commands"
	"mealpedeal/internal/usecase/queries"
	"mealpedeal/internal/worker"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repo_impl.NewOfferRepository,
		repo_impl.NewOrderRepository,
		repo_impl.NewRestaurantRepository,

		// Port bindings. One concrete repository serves the write side,
		// the read side and the expiry worker.
		func(r *repo_impl.OfferRepository) commands.OfferRepository { return r },
		func(r *repo_impl.OfferRepository) queries.OfferReadRepo { return r },
		func(r *repo_impl.OfferRepository) worker.OfferRepository { return r },
		func(r *repo_impl.OrderRepository) commands.OrderRepository { return r },
		func(r *repo_impl.OrderRepository) queries.OrderReadRepo { return r },
		func(r *repo_impl.OrderRepository) worker.OrderRepository { return r },
		func(r *repo_impl.RestaurantRepository) commands.RestaurantRepository { return r },
		func(r *repo_impl.RestaurantRepository) queries.RestaurantReadRepo { return r },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
