package components

import (
	"storefront/internal/infra/cartstore"
	"storefront/internal/infra/readstore"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/infra/uow"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// Write side goes through the unit of work
		uow.NewPostgresUoW,
		// Read-side stores for queries
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.OrderReadStore {
				return readstore.NewOrderReadStore(q, db)
			},
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.UserReadStore {
				return readstore.NewUserReadStore(q, db)
			},
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.ProductReadStore {
				return readstore.NewProductReadStore(q, db)
			},
			fx.As(new(commands.ProductReader)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(commands.CartStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewCartStore(client *redis.Client, cfg config.Config) *cartstore.RedisCartStore {
	return cartstore.NewRedisCartStore(client, cfg.Cart.KeyPrefix, cfg.Cart.TTL)
}
