package components

import (
	"maison-storefront/internal/domain/checkout"
	"maison-storefront/internal/pkg/clock"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTotalsCalculator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewReviewQueries,
		queries.NewAnnouncementQueries,
		queries.NewOrderQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewReviewCommands,
		NewCheckoutCommands,
	),
)

func NewTotalsCalculator(cfg config.Config) checkout.TotalsCalculator {
	return checkout.NewTotalsCalculator(
		money.Cents(cfg.Pricing.FreeShippingThresholdCents),
		money.Cents(cfg.Pricing.FlatShippingFeeCents),
		cfg.Pricing.TaxRate,
	)
}

func NewCheckoutCommands(
	carts commands.CartGateway,
	orders commands.OrderGateway,
	promos commands.PromoGateway,
	drafts commands.DraftStore,
	keys commands.PaystackKeySource,
	calc checkout.TotalsCalculator,
	clk clock.Clock,
	cfg config.Config,
) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(carts, orders, promos, drafts, keys, calc, clk, cfg.Pricing.Currency)
}
