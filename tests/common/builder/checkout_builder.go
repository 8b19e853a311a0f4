//go:build unit || e2e

package builder

import (
	"maison-storefront/internal/domain/checkout"
	reqdto "maison-storefront/internal/handler/dto/request"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
)

type CheckoutBuilder struct {
	FullName   string
	Email      string
	Address    string
	City       string
	PostalCode string
	Method     string
	PromoCode  string
	Discount   money.Cents
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		FullName:   "Ama Mensah",
		Email:      "ama@example.com",
		Address:    "12 Oxford Street",
		City:       "Accra",
		PostalCode: "GA-145",
		Method:     checkout.MethodPaystack,
		PromoCode:  "WELCOME10",
		Discount:   money.Cents(1000),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildShippingDraft() checkout.ShippingDraft {
	return checkout.ShippingDraft{
		FullName:   b.FullName,
		Email:      b.Email,
		Address:    b.Address,
		City:       b.City,
		PostalCode: b.PostalCode,
	}
}

func (b *CheckoutBuilder) BuildPaymentDraft() checkout.PaymentDraft {
	return checkout.PaymentDraft{Method: b.Method}
}

func (b *CheckoutBuilder) BuildShippingRequestDTO() reqdto.ShippingRequest {
	return reqdto.ShippingRequest{
		FullName:   b.FullName,
		Email:      b.Email,
		Address:    b.Address,
		City:       b.City,
		PostalCode: b.PostalCode,
	}
}

func (b *CheckoutBuilder) BuildPromoResult() *commands.PromoResult {
	return &commands.PromoResult{
		Code:     b.PromoCode,
		Valid:    true,
		Discount: b.Discount,
	}
}
