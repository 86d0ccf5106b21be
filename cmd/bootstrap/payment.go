package bootstrap

import (
	"storefront/internal/infra/payment"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *payment.StripeGateway {
				return payment.NewStripeGateway(cfg.Stripe)
			},
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			func(cfg config.Config) *payment.StripeWebhookVerifier {
				return payment.NewStripeWebhookVerifier(cfg.Stripe.WebhookSecret)
			},
			fx.As(new(commands.WebhookVerifier)),
		),
	),
)
