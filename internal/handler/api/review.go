package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "maison-storefront/internal/handler/dto/request"
	"maison-storefront/internal/handler/httperr"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrRatingRequired) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5", nil)
			return
		}
		abortGatewayError(c, err, "Failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"review_id": result.ReviewID,
		"message":   result.Message,
	})
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	views, err := h.q.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": views})
}

func (h *ReviewHandler) StatsByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	stats, err := h.q.StatsByProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load review stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReviewHandler) Featured(c *gin.Context) {
	views, err := h.q.Featured(c.Request.Context())
	if err != nil {
		abortGatewayError(c, err, "Failed to load featured reviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": views})
}
