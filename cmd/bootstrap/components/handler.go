package components

import (
	"maison-storefront/internal/handler"
	"maison-storefront/internal/handler/api"
	"maison-storefront/internal/handler/middleware"
	"maison-storefront/internal/pkg/clock"
	"maison-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewReviewHandler,
		api.NewAnnouncementHandler,
		NewSessionMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSessionMiddleware(cfg config.Config, clk clock.Clock) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(cfg.Session, clk)
}

func NewHandlers(
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	review *api.ReviewHandler,
	announcement *api.AnnouncementHandler,
) handler.Handlers {
	return handler.Handlers{
		Catalog:      catalog,
		Cart:         cart,
		Checkout:     checkout,
		Order:        order,
		Review:       review,
		Announcement: announcement,
	}
}
