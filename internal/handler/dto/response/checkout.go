package response

import (
	"maison-storefront/internal/domain/checkout"
	"maison-storefront/internal/domain/payment"
	"maison-storefront/internal/usecase/commands"
)

type TotalsResponse struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func FromTotals(t checkout.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal: t.Subtotal.String(),
		Discount: t.Discount.String(),
		Shipping: t.Shipping.String(),
		Tax:      t.Tax.String(),
		Total:    t.Total.String(),
	}
}

type PromoResponse struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Discount string `json:"discount_amount"`
}

func FromPromoResult(p *commands.PromoResult) *PromoResponse {
	return &PromoResponse{
		Code:     p.Code,
		Valid:    p.Valid,
		Message:  p.Message,
		Discount: p.Discount.String(),
	}
}

type ReviewSummaryResponse struct {
	Shipping checkout.ShippingDraft `json:"shipping"`
	Payment  checkout.PaymentDraft  `json:"payment"`
	Cart     *CartResponse          `json:"cart"`
	Promo    *PromoResponse         `json:"promo,omitempty"`
	Totals   TotalsResponse         `json:"totals"`
}

func FromReviewSummary(s *commands.ReviewSummary) *ReviewSummaryResponse {
	resp := &ReviewSummaryResponse{
		Shipping: s.Shipping,
		Payment:  s.Payment,
		Cart:     FromCartSnapshot(s.Cart),
		Totals:   FromTotals(s.Totals),
	}
	if s.Promo != nil {
		resp.Promo = FromPromoResult(s.Promo)
	}
	return resp
}

type PayResponse struct {
	OrderID          string                `json:"order_id"`
	Reference        string                `json:"reference"`
	AuthorizationURL string                `json:"authorization_url,omitempty"`
	AccessCode       string                `json:"access_code,omitempty"`
	Inline           payment.InlinePayload `json:"inline"`
	Totals           TotalsResponse        `json:"totals"`
	OrderReused      bool                  `json:"order_reused"`
}

func FromPayResult(r *commands.PayResult) *PayResponse {
	return &PayResponse{
		OrderID:          r.OrderID,
		Reference:        r.Reference,
		AuthorizationURL: r.AuthorizationURL,
		AccessCode:       r.AccessCode,
		Inline:           r.Inline,
		Totals:           FromTotals(r.Totals),
		OrderReused:      r.OrderReused,
	}
}

type VerifyPaymentResponse struct {
	OrderID string `json:"order_id"`
	Amount  string `json:"amount"`
	Status  string `json:"status"`
}

func FromPaymentVerification(v *commands.PaymentVerification) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		OrderID: v.OrderID,
		Amount:  v.Amount.String(),
		Status:  v.Status,
	}
}
