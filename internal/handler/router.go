package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maison-storefront/internal/handler/api"
	"maison-storefront/internal/handler/middleware"
	"maison-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Catalog      *api.CatalogHandler
	Cart         *api.CartHandler
	Checkout     *api.CheckoutHandler
	Order        *api.OrderHandler
	Review       *api.ReviewHandler
	Announcement *api.AnnouncementHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListProducts},
				{Method: http.MethodGet, Path: "/search", Handler: h.Catalog.SearchProducts},
				{Method: http.MethodGet, Path: "/featured", Handler: h.Catalog.FeaturedProducts},
				{Method: http.MethodGet, Path: "/bestsellers", Handler: h.Catalog.BestsellerProducts},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Catalog.GetProduct},
				{Method: http.MethodGet, Path: "/:slug/related", Handler: h.Catalog.RelatedProducts},
			})
		}

		collections := apiGroup.Group("/collections")
		{
			addRoutes(collections, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCollections},
				{Method: http.MethodGet, Path: "/featured", Handler: h.Catalog.FeaturedCollections},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Catalog.GetCollection},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(sessionMiddleware.EnsureSession())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/items", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/clear", Handler: h.Cart.Clear},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(sessionMiddleware.EnsureSession())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPut, Path: "/shipping", Handler: h.Checkout.SaveShipping},
				{Method: http.MethodPut, Path: "/payment", Handler: h.Checkout.SavePayment},
				{Method: http.MethodGet, Path: "/review", Handler: h.Checkout.Review},
				{Method: http.MethodPost, Path: "/promo", Handler: h.Checkout.ApplyPromo},
				{Method: http.MethodPost, Path: "/pay", Handler: h.Checkout.Pay},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Checkout.VerifyPayment},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			})
		}

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodGet, Path: "/featured", Handler: h.Review.Featured},
				{Method: http.MethodGet, Path: "/product/:id", Handler: h.Review.ListByProduct},
				{Method: http.MethodGet, Path: "/product/:id/stats", Handler: h.Review.StatsByProduct},
			})
		}

		announcements := apiGroup.Group("/announcements")
		{
			addRoutes(announcements, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Announcement.List},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
