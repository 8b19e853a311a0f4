package components

import (
	"log/slog"

	"maison-storefront/internal/infra/commerce"
	"maison-storefront/internal/infra/draftstore"
	"maison-storefront/internal/infra/paystack"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// GatewayModule binds the commerce HTTP client and the Redis draft store
// to every port the use cases consume. One client instance serves all
// gateway interfaces.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewCommerceClient,
			fx.As(new(queries.CatalogGateway)),
			fx.As(new(queries.ReviewGateway)),
			fx.As(new(queries.AnnouncementGateway)),
			fx.As(new(queries.OrderReadGateway)),
			fx.As(new(commands.CartGateway)),
			fx.As(new(commands.OrderGateway)),
			fx.As(new(commands.PromoGateway)),
			fx.As(new(commands.ReviewWriteGateway)),
			fx.As(new(paystack.ConfigFetcher)),
		),
		fx.Annotate(
			NewDraftStore,
			fx.As(new(commands.DraftStore)),
		),
		fx.Annotate(
			paystack.NewKeySource,
			fx.As(new(commands.PaystackKeySource)),
		),
	),
)

func NewCommerceClient(cfg config.Config, logger *slog.Logger) *commerce.Client {
	return commerce.NewClient(cfg.Commerce, logger)
}

func NewDraftStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *draftstore.RedisStore {
	return draftstore.NewRedisStore(client, cfg.Checkout, logger)
}
