//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"maison-storefront/internal/handler/api"
	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/queries"
	"maison-storefront/tests/common/httptest"
	queriesmock "maison-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	products := s.router.Group("/api/products")
	products.GET("", s.handler.ListProducts)
	products.GET("/search", s.handler.SearchProducts)
	products.GET("/featured", s.handler.FeaturedProducts)
	products.GET("/:slug", s.handler.GetProduct)
	products.GET("/:slug/related", s.handler.RelatedProducts)

	collections := s.router.Group("/api/collections")
	collections.GET("", s.handler.ListCollections)
	collections.GET("/:slug", s.handler.GetCollection)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func sampleProducts() []*queries.ProductView {
	return []*queries.ProductView{
		{ID: "p1", Name: "Noir de Minuit", Slug: "noir-de-minuit", Price: money.Cents(7500), IsBestseller: true},
		{ID: "p2", Name: "Fleur Sauvage", Slug: "fleur-sauvage", Price: money.Cents(21650)},
	}
}

func (s *CatalogHandlerTestSuite) TestListProducts() {
	url := "/api/products"

	s.Run("success: returns the product list with formatted prices", func() {
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), queries.ProductFilters{}).
			Return(sampleProducts(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string][]map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response["products"], 2)
		s.Equal("75.00", response["products"][0]["price"])
	})

	s.Run("success: forwards collection and sort filters", func() {
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), queries.ProductFilters{Collection: "noir", Sort: "price_asc"}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?collection=noir&sort=price_asc", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 502 Bad Gateway when backend is unreachable", func() {
		s.mockQueries.EXPECT().ListProducts(gomock.Any(), queries.ProductFilters{}).
			Return(nil, gatewayErr(infra.KindUnreachable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Storefront backend is unavailable")
	})
}

func (s *CatalogHandlerTestSuite) TestSearchProducts() {
	url := "/api/products/search"

	s.Run("success: forwards the query term", func() {
		s.mockQueries.EXPECT().SearchProducts(gomock.Any(), "noir").
			Return(sampleProducts()[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?q=noir", nil, "")

		var response map[string][]map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response["products"], 1)
	})

	s.Run("success: blank query short-circuits to an empty list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string][]map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response["products"])
	})
}

func (s *CatalogHandlerTestSuite) TestGetProduct() {
	url := "/api/products/noir-de-minuit"

	s.Run("success: returns the product detail", func() {
		detail := &queries.ProductDetailView{
			ProductView: *sampleProducts()[0],
			Description: "Smoky amber",
			Rating:      queries.ProductRatingView{Average: 4.6, Count: 12},
		}
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), "noir-de-minuit").
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("noir-de-minuit", response["slug"])
		s.Equal("Smoky amber", response["description"])
	})

	s.Run("error: 404 Not Found for an unknown slug", func() {
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), "missing").
			Return(nil, queries.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *CatalogHandlerTestSuite) TestGetCollection() {
	s.Run("success: returns the collection with its products", func() {
		detail := &queries.CollectionDetailView{
			CollectionView: queries.CollectionView{ID: 1, Title: "Noir", Slug: "noir", ProductCount: 2},
			Products:       sampleProducts(),
		}
		s.mockQueries.EXPECT().GetCollection(gomock.Any(), "noir").
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/collections/noir", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("noir", response["slug"])
		products, ok := response["products"].([]any)
		s.True(ok)
		s.Len(products, 2)
	})

	s.Run("error: 404 Not Found for an unknown collection", func() {
		s.mockQueries.EXPECT().GetCollection(gomock.Any(), "missing").
			Return(nil, queries.ErrCollectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/collections/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Collection not found")
	})
}
