package components

import (
	"storefront/internal/domain/user"
	"storefront/internal/infra/uow"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/password"
	"storefront/internal/usecase"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *password.Hasher {
		return password.NewHasher(cfg.Auth.BcryptCost)
	},
	func(cfg config.Config) user.LockoutPolicy {
		return user.LockoutPolicy{
			MaxFailedAttempts: cfg.Auth.MaxFailedAttempts,
			LockoutDuration:   cfg.Auth.LockoutDuration,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewPaymentCommands,
		commands.NewOrderStatusCommands,
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOrderQueries,
		queries.NewRateQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// AuthOnlyModule is the minimal graph for account provisioning tools.
var AuthOnlyModule = fx.Module("usecase/auth",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
	),
	usecaseBaseOption,
	fx.Provide(commands.NewAuthCommands),
)
