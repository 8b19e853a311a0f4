package api

import (
	"errors"
	"net/http"

	"maison-storefront/internal/domain/checkout"
	reqdto "maison-storefront/internal/handler/dto/request"
	resdto "maison-storefront/internal/handler/dto/response"
	"maison-storefront/internal/handler/httperr"
	"maison-storefront/internal/handler/middleware"
	"maison-storefront/internal/infra"
	"maison-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

func (h *CheckoutHandler) SaveShipping(c *gin.Context) {
	sessionKey, ok := middleware.GetSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing session key"), "Internal server error", nil)
		return
	}

	var req reqdto.ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SaveShipping(c.Request.Context(), sessionKey, req.ToDraft()); err != nil {
		abortGatewayError(c, err, "Failed to save shipping details")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": string(checkout.StagePayment)})
}

func (h *CheckoutHandler) SavePayment(c *gin.Context) {
	sessionKey, ok := middleware.GetSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing session key"), "Internal server error", nil)
		return
	}

	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SavePayment(c.Request.Context(), sessionKey, req.ToDraft()); err != nil {
		switch {
		case errors.Is(err, checkout.ErrShippingIncomplete):
			httperr.AbortWithError(c, http.StatusConflict, err, "Complete the shipping step first", nil)
		case errors.Is(err, commands.ErrUnsupportedPaymentMethod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported payment method", nil)
		default:
			abortGatewayError(c, err, "Failed to save payment method")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": string(checkout.StageReview)})
}

func (h *CheckoutHandler) Review(c *gin.Context) {
	sessionKey, ok := middleware.GetSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing session key"), "Internal server error", nil)
		return
	}

	summary, err := h.cmds.Review(c.Request.Context(), sessionKey, c.Query("promo_code"))
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrShippingIncomplete):
			httperr.AbortWithError(c, http.StatusConflict, err, "Complete the shipping step first", nil)
		case errors.Is(err, checkout.ErrPaymentNotChosen):
			httperr.AbortWithError(c, http.StatusConflict, err, "Choose a payment method first", nil)
		case errors.Is(err, commands.ErrInvalidPromo):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired promo code", nil)
		default:
			abortGatewayError(c, err, "Failed to build order review")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewSummary(summary))
}

func (h *CheckoutHandler) ApplyPromo(c *gin.Context) {
	sessionKey, ok := middleware.GetSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing session key"), "Internal server error", nil)
		return
	}

	var req reqdto.ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Promo code is required", nil)
		return
	}

	result, err := h.cmds.ApplyPromo(c.Request.Context(), sessionKey, req.Code)
	if err != nil {
		if errors.Is(err, commands.ErrPromoCodeEmpty) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Promo code is required", nil)
			return
		}
		abortGatewayError(c, err, "Failed to validate promo code")
		return
	}
	if !result.Valid {
		c.JSON(http.StatusBadRequest, resdto.FromPromoResult(result))
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoResult(result))
}

func (h *CheckoutHandler) Pay(c *gin.Context) {
	sessionKey, ok := middleware.GetSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing session key"), "Internal server error", nil)
		return
	}

	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Pay(c.Request.Context(), sessionKey, req.PromoCode, req.CallbackURL)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrShippingIncomplete):
			httperr.AbortWithError(c, http.StatusConflict, err, "Complete the shipping step first", nil)
		case errors.Is(err, checkout.ErrPaymentNotChosen):
			httperr.AbortWithError(c, http.StatusConflict, err, "Choose a payment method first", nil)
		case errors.Is(err, checkout.ErrCartEmpty):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cart is empty", nil)
		case errors.Is(err, commands.ErrInvalidPromo):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired promo code", nil)
		case errors.Is(err, commands.ErrPaymentNotConfigured):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment is temporarily unavailable", nil)
		default:
			abortGatewayError(c, err, "Failed to start payment")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayResult(result))
}

func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	sessionKey, ok := middleware.GetSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing session key"), "Internal server error", nil)
		return
	}

	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment reference is required", nil)
		return
	}

	verification, err := h.cmds.VerifyPayment(c.Request.Context(), sessionKey, req.Reference)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindUnreachable):
			abortGatewayError(c, err, "Failed to verify payment")
		case errors.Is(err, commands.ErrPaymentVerificationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment verification failed", nil)
		default:
			abortGatewayError(c, err, "Failed to verify payment")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentVerification(verification))
}
