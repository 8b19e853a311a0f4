package checkout

import (
	"maison-storefront/internal/pkg/money"
)

// TotalsCalculator derives order totals from the cart subtotal. The flat
// shipping fee is waived strictly above the free-shipping threshold; tax
// applies to the discounted subtotal.
type TotalsCalculator struct {
	FreeShippingThreshold money.Cents
	FlatShippingFee       money.Cents
	TaxRate               float64
}

func NewTotalsCalculator(freeShippingThreshold, flatShippingFee money.Cents, taxRate float64) TotalsCalculator {
	return TotalsCalculator{
		FreeShippingThreshold: freeShippingThreshold,
		FlatShippingFee:       flatShippingFee,
		TaxRate:               taxRate,
	}
}

type Totals struct {
	Subtotal money.Cents
	Discount money.Cents
	Shipping money.Cents
	Tax      money.Cents
	Total    money.Cents
}

func (c TotalsCalculator) Calculate(subtotal, discount money.Cents) Totals {
	if discount > subtotal {
		discount = subtotal
	}
	discounted := subtotal - discount

	shipping := c.FlatShippingFee
	if subtotal > c.FreeShippingThreshold {
		shipping = 0
	}

	tax := discounted.MulRate(c.TaxRate)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    discounted + shipping + tax,
	}
}
