package api

import (
	"errors"
	"net/http"

	resdto "maison-storefront/internal/handler/dto/response"
	"maison-storefront/internal/handler/httperr"
	"maison-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("empty order id"), "Invalid order id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load order")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
