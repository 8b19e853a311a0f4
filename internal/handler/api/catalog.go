package api

import (
	"errors"
	"net/http"

	resdto "maison-storefront/internal/handler/dto/response"
	"maison-storefront/internal/handler/httperr"
	"maison-storefront/internal/infra"
	"maison-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filters := queries.ProductFilters{
		Collection: c.Query("collection"),
		Sort:       c.Query("sort"),
	}

	views, err := h.q.ListProducts(c.Request.Context(), filters)
	if err != nil {
		abortGatewayError(c, err, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.q.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load product")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductDetailView(view))
}

func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"products": []*resdto.ProductResponse{}})
		return
	}

	views, err := h.q.SearchProducts(c.Request.Context(), query)
	if err != nil {
		abortGatewayError(c, err, "Search failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	views, err := h.q.FeaturedProducts(c.Request.Context())
	if err != nil {
		abortGatewayError(c, err, "Failed to load featured products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

func (h *CatalogHandler) BestsellerProducts(c *gin.Context) {
	views, err := h.q.BestsellerProducts(c.Request.Context())
	if err != nil {
		abortGatewayError(c, err, "Failed to load bestsellers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

func (h *CatalogHandler) RelatedProducts(c *gin.Context) {
	views, err := h.q.RelatedProducts(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load related products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProductList(views)})
}

func (h *CatalogHandler) ListCollections(c *gin.Context) {
	views, err := h.q.ListCollections(c.Request.Context())
	if err != nil {
		abortGatewayError(c, err, "Failed to load collections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": resdto.FromCollectionList(views)})
}

func (h *CatalogHandler) GetCollection(c *gin.Context) {
	view, err := h.q.GetCollection(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrCollectionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load collection")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCollectionDetailView(view))
}

func (h *CatalogHandler) FeaturedCollections(c *gin.Context) {
	views, err := h.q.FeaturedCollections(c.Request.Context())
	if err != nil {
		abortGatewayError(c, err, "Failed to load featured collections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": resdto.FromCollectionList(views)})
}

// abortGatewayError maps backend failures onto the proxy statuses: an
// unreachable backend is a 502, anything else surfaces as a 500 with
// the public message only.
func abortGatewayError(c *gin.Context, err error, msg string) {
	if infra.IsKind(err, infra.KindUnreachable) {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Storefront backend is unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}
