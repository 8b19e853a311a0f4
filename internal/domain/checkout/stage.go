package checkout

import (
	"maison-storefront/internal/pkg/errs"
)

var (
	ErrShippingIncomplete = errs.New("shipping step has not been completed")
	ErrPaymentNotChosen   = errs.New("payment step has not been completed")
	ErrCartEmpty          = errs.New("cart is empty")
)

// Stage is one step of the linear checkout wizard.
type Stage string

const (
	StageShipping Stage = "shipping"
	StagePayment  Stage = "payment"
	StageReview   Stage = "review"
)

// Guard enforces linear progression: payment needs a shipping draft,
// review (and paying) needs both drafts. Entering a later stage by URL
// without the prior submissions is rejected here, not by UI ordering.
func Guard(target Stage, hasShipping, hasPayment bool) error {
	switch target {
	case StagePayment:
		if !hasShipping {
			return ErrShippingIncomplete
		}
	case StageReview:
		if !hasShipping {
			return ErrShippingIncomplete
		}
		if !hasPayment {
			return ErrPaymentNotChosen
		}
	}
	return nil
}
