package request

import (
	"maison-storefront/internal/domain/checkout"
)

type ShippingRequest struct {
	FullName   string `json:"full_name" binding:"required,max=120"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"max=255"`
	City       string `json:"city" binding:"max=120"`
	PostalCode string `json:"postal_code" binding:"max=20"`
}

func (r *ShippingRequest) ToDraft() checkout.ShippingDraft {
	return checkout.ShippingDraft{
		FullName:   r.FullName,
		Email:      r.Email,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
	}
}

type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

func (r *PaymentRequest) ToDraft() checkout.PaymentDraft {
	return checkout.PaymentDraft{Method: r.Method}
}

type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required,max=50"`
}

type PayRequest struct {
	PromoCode   string `json:"promo_code"`
	CallbackURL string `json:"callback_url" binding:"omitempty,url"`
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
}
