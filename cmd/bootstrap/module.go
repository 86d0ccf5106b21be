package bootstrap

import (
	"storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	RedisModule,
	JWTModule,
	PaymentModule,
	RatesModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
