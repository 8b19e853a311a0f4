package api

import (
	"errors"
	"net/http"

	domcart "maison-storefront/internal/domain/cart"
	reqdto "maison-storefront/internal/handler/dto/request"
	resdto "maison-storefront/internal/handler/dto/response"
	"maison-storefront/internal/handler/httperr"
	"maison-storefront/internal/handler/middleware"
	"maison-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	noop commands.CartCommands
}

func NewCartHandler(cmds commands.CartCommands) *CartHandler {
	return &CartHandler{
		cmds: cmds,
		noop: commands.NewNoopCart(),
	}
}

// backend picks the wired cart when a session key is present and the
// inert null object when the route somehow runs without one, so cart
// rendering degrades to empty instead of erroring.
func (h *CartHandler) backend(c *gin.Context) (commands.CartCommands, string) {
	if key, ok := middleware.GetSessionKey(c); ok {
		return h.cmds, key
	}
	return h.noop, ""
}

func (h *CartHandler) Get(c *gin.Context) {
	cmds, sessionKey := h.backend(c)

	snapshot, err := cmds.Get(c.Request.Context(), sessionKey)
	if err != nil {
		abortGatewayError(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmds, sessionKey := h.backend(c)
	snapshot, err := cmds.AddItem(c.Request.Context(), sessionKey, req.ToCommand())
	if err != nil {
		if errors.Is(err, domcart.ErrQuantityTooSmall) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
			return
		}
		abortGatewayError(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmds, sessionKey := h.backend(c)
	snapshot, err := cmds.UpdateQuantity(c.Request.Context(), sessionKey, req.ItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, domcart.ErrQuantityTooSmall) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
			return
		}
		abortGatewayError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req reqdto.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmds, sessionKey := h.backend(c)
	snapshot, err := cmds.RemoveItem(c.Request.Context(), sessionKey, req.ItemID)
	if err != nil {
		abortGatewayError(c, err, "Failed to remove item")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}

func (h *CartHandler) Clear(c *gin.Context) {
	cmds, sessionKey := h.backend(c)

	snapshot, err := cmds.Clear(c.Request.Context(), sessionKey)
	if err != nil {
		abortGatewayError(c, err, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartSnapshot(snapshot))
}
