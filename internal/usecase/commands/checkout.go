package commands

import (
	"context"
	"log/slog"

	domcart "maison-storefront/internal/domain/cart"
	"maison-storefront/internal/domain/checkout"
	"maison-storefront/internal/domain/payment"
	"maison-storefront/internal/pkg/clock"
	"maison-storefront/internal/pkg/errs"
)

var (
	ErrPromoCodeEmpty            = errs.New("promo code is empty")
	ErrInvalidPromo              = errs.New("invalid promo code")
	ErrUnsupportedPaymentMethod  = errs.New("unsupported payment method")
	ErrPaymentNotConfigured      = errs.New("payment provider is not configured")
	ErrPaymentVerificationFailed = errs.New("payment verification failed")
)

// ReviewSummary is the terminal-step readback: drafts, live cart and the
// derived totals the pay action will charge.
type ReviewSummary struct {
	Shipping checkout.ShippingDraft
	Payment  checkout.PaymentDraft
	Cart     domcart.Snapshot
	Promo    *PromoResult
	Totals   checkout.Totals
}

// PayResult carries everything the storefront needs to open the hosted
// payment widget for the created (or reused) order.
type PayResult struct {
	OrderID          string
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Inline           payment.InlinePayload
	Totals           checkout.Totals
	OrderReused      bool
}

type CheckoutCommands interface {
	SaveShipping(ctx context.Context, sessionKey string, draft checkout.ShippingDraft) error
	SavePayment(ctx context.Context, sessionKey string, draft checkout.PaymentDraft) error
	Review(ctx context.Context, sessionKey, promoCode string) (*ReviewSummary, error)
	ApplyPromo(ctx context.Context, sessionKey, code string) (*PromoResult, error)
	Pay(ctx context.Context, sessionKey, promoCode, callbackURL string) (*PayResult, error)
	VerifyPayment(ctx context.Context, sessionKey, reference string) (*PaymentVerification, error)
}

type checkoutUseCaseImpl struct {
	carts    CartGateway
	orders   OrderGateway
	promos   PromoGateway
	drafts   DraftStore
	keys     PaystackKeySource
	calc     checkout.TotalsCalculator
	clock    clock.Clock
	currency string
}

func NewCheckoutCommands(
	carts CartGateway,
	orders OrderGateway,
	promos PromoGateway,
	drafts DraftStore,
	keys PaystackKeySource,
	calc checkout.TotalsCalculator,
	clk clock.Clock,
	currency string,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		carts:    carts,
		orders:   orders,
		promos:   promos,
		drafts:   drafts,
		keys:     keys,
		calc:     calc,
		clock:    clk,
		currency: currency,
	}
}

func (u *checkoutUseCaseImpl) SaveShipping(ctx context.Context, sessionKey string, draft checkout.ShippingDraft) error {
	return u.drafts.SaveShipping(ctx, sessionKey, draft)
}

func (u *checkoutUseCaseImpl) SavePayment(ctx context.Context, sessionKey string, draft checkout.PaymentDraft) error {
	if err := u.guard(ctx, sessionKey, checkout.StagePayment); err != nil {
		return err
	}
	if draft.Method != checkout.MethodPaystack {
		return ErrUnsupportedPaymentMethod
	}
	return u.drafts.SavePayment(ctx, sessionKey, draft)
}

func (u *checkoutUseCaseImpl) Review(ctx context.Context, sessionKey, promoCode string) (*ReviewSummary, error) {
	shipping, paymentDraft, err := u.requireDrafts(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	snapshot, err := u.carts.FetchCart(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	promo, totals, err := u.totalsWithPromo(ctx, snapshot, promoCode)
	if err != nil {
		return nil, err
	}

	return &ReviewSummary{
		Shipping: *shipping,
		Payment:  *paymentDraft,
		Cart:     snapshot,
		Promo:    promo,
		Totals:   totals,
	}, nil
}

// ApplyPromo validates server-side against the current subtotal. An
// empty code is rejected locally without touching the network; an
// unknown or expired code comes back with Valid=false and the backend's
// message for the UI.
func (u *checkoutUseCaseImpl) ApplyPromo(ctx context.Context, sessionKey, code string) (*PromoResult, error) {
	if code == "" {
		return nil, ErrPromoCodeEmpty
	}

	snapshot, err := u.carts.FetchCart(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	return u.promos.ValidatePromo(ctx, code, snapshot.Subtotal())
}

func (u *checkoutUseCaseImpl) Pay(ctx context.Context, sessionKey, promoCode, callbackURL string) (*PayResult, error) {
	shipping, _, err := u.requireDrafts(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !shipping.Complete() {
		return nil, checkout.ErrShippingIncomplete
	}

	snapshot, err := u.carts.FetchCart(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, checkout.ErrCartEmpty
	}

	_, totals, err := u.totalsWithPromo(ctx, snapshot, promoCode)
	if err != nil {
		return nil, err
	}

	publicKey, err := u.keys.PublicKey(ctx)
	if err != nil {
		return nil, err
	}
	if publicKey == "" {
		return nil, ErrPaymentNotConfigured
	}

	orderID, reused, err := u.resolveOrder(ctx, sessionKey, shipping, snapshot)
	if err != nil {
		return nil, err
	}

	init, err := u.orders.InitializePayment(ctx, orderID, callbackURL)
	if err != nil {
		return nil, err
	}
	reference := init.Reference
	if reference == "" {
		reference = payment.NewReference(orderID, u.clock.Now())
	}

	inline := payment.NewInlinePayload(
		publicKey,
		shipping.Email,
		u.currency,
		totals.Total,
		reference,
		payment.Metadata{
			OrderID:      orderID,
			CustomerName: shipping.FullName,
			ItemsCount:   len(snapshot.Items),
		},
	)

	return &PayResult{
		OrderID:          orderID,
		Reference:        reference,
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Inline:           inline,
		Totals:           totals,
		OrderReused:      reused,
	}, nil
}

// VerifyPayment is the success callback of the payment widget. A
// verified payment settles the session: backend cart cleared, drafts and
// pending-order marker discarded. A verification failure is fatal to
// this attempt and is never retried automatically.
func (u *checkoutUseCaseImpl) VerifyPayment(ctx context.Context, sessionKey, reference string) (*PaymentVerification, error) {
	verification, err := u.orders.VerifyPayment(ctx, reference)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentVerificationFailed)
	}

	if err := u.carts.ClearCart(ctx, sessionKey); err != nil {
		slog.Warn("cart clear after verified payment failed", "error", err)
	}
	if err := u.drafts.ClearDrafts(ctx, sessionKey); err != nil {
		slog.Warn("draft clear after verified payment failed", "error", err)
	}

	return verification, nil
}

func (u *checkoutUseCaseImpl) guard(ctx context.Context, sessionKey string, target checkout.Stage) error {
	shipping, err := u.drafts.GetShipping(ctx, sessionKey)
	if err != nil {
		return err
	}
	paymentDraft, err := u.drafts.GetPayment(ctx, sessionKey)
	if err != nil {
		return err
	}
	return checkout.Guard(target, shipping != nil && shipping.Complete(), paymentDraft != nil && paymentDraft.Complete())
}

func (u *checkoutUseCaseImpl) requireDrafts(ctx context.Context, sessionKey string) (*checkout.ShippingDraft, *checkout.PaymentDraft, error) {
	shipping, err := u.drafts.GetShipping(ctx, sessionKey)
	if err != nil {
		return nil, nil, err
	}
	paymentDraft, err := u.drafts.GetPayment(ctx, sessionKey)
	if err != nil {
		return nil, nil, err
	}
	if gErr := checkout.Guard(checkout.StageReview,
		shipping != nil && shipping.Complete(),
		paymentDraft != nil && paymentDraft.Complete(),
	); gErr != nil {
		return nil, nil, gErr
	}
	return shipping, paymentDraft, nil
}

func (u *checkoutUseCaseImpl) totalsWithPromo(ctx context.Context, snapshot domcart.Snapshot, promoCode string) (*PromoResult, checkout.Totals, error) {
	subtotal := snapshot.Subtotal()
	if promoCode == "" {
		return nil, u.calc.Calculate(subtotal, 0), nil
	}

	promo, err := u.promos.ValidatePromo(ctx, promoCode, subtotal)
	if err != nil {
		return nil, checkout.Totals{}, err
	}
	if !promo.Valid {
		return nil, checkout.Totals{}, ErrInvalidPromo
	}
	return promo, u.calc.Calculate(subtotal, promo.Discount), nil
}

// resolveOrder reuses the session's pending order when the backend still
// reports it unsettled; a cancelled payment retried with another click
// must not create a second order. Settled or unknown markers are
// discarded and a fresh order is created.
func (u *checkoutUseCaseImpl) resolveOrder(ctx context.Context, sessionKey string, shipping *checkout.ShippingDraft, snapshot domcart.Snapshot) (string, bool, error) {
	pendingID, err := u.drafts.GetPendingOrder(ctx, sessionKey)
	switch {
	case err != nil:
		slog.Warn("pending order lookup failed, creating a fresh order", "error", err)
	case pendingID != "":
		existing, gErr := u.orders.GetOrder(ctx, pendingID)
		switch {
		case gErr != nil:
			slog.Warn("pending order fetch failed, creating a fresh order", "order_id", pendingID, "error", gErr)
		case !existing.Paid():
			return pendingID, true, nil
		}
	}

	created, err := u.orders.CreateOrder(ctx, buildOrderDraft(shipping, snapshot))
	if err != nil {
		return "", false, err
	}
	if err := u.drafts.SavePendingOrder(ctx, sessionKey, created.ID); err != nil {
		slog.Warn("saving pending order marker failed", "order_id", created.ID, "error", err)
	}
	return created.ID, false, nil
}

func buildOrderDraft(shipping *checkout.ShippingDraft, snapshot domcart.Snapshot) OrderDraft {
	items := make([]OrderDraftItem, len(snapshot.Items))
	for i, li := range snapshot.Items {
		items[i] = OrderDraftItem{
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Image:     li.Image,
			Quantity:  li.Quantity,
			Price:     li.UnitPrice,
		}
	}

	postal := shipping.PostalCode
	if postal == "" {
		postal = "00000"
	}

	return OrderDraft{
		Email:              shipping.Email,
		FullName:           shipping.FullName,
		ShippingAddress:    shipping.Address,
		ShippingCity:       shipping.City,
		ShippingPostalCode: postal,
		ShippingCountry:    "Ghana",
		PaymentMethod:      checkout.MethodPaystack,
		Items:              items,
	}
}
