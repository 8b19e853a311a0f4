package commands

import (
	"context"

	domcart "maison-storefront/internal/domain/cart"
	"maison-storefront/internal/domain/checkout"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/queries"
)

// Write-side ports over the commerce backend and the session-scoped draft
// store. Interfaces live with their consumers; infra implements them.

type NewCartItem struct {
	ProductID string
	VariantID *int64
	Quantity  int
}

type CartGateway interface {
	FetchCart(ctx context.Context, sessionKey string) (domcart.Snapshot, error)
	AddItem(ctx context.Context, sessionKey string, item NewCartItem) error
	UpdateItem(ctx context.Context, sessionKey string, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, sessionKey string, itemID int64) error
	ClearCart(ctx context.Context, sessionKey string) error
}

// OrderDraft is the order-creation payload assembled from the shipping
// draft and the live cart snapshot at pay time.
type OrderDraft struct {
	Email              string
	FullName           string
	ShippingAddress    string
	ShippingCity       string
	ShippingPostalCode string
	ShippingCountry    string
	PaymentMethod      string
	Items              []OrderDraftItem
}

type OrderDraftItem struct {
	ProductID    string
	VariantID    *int64
	Name         string
	Image        string
	VariantLabel string
	Quantity     int
	Price        money.Cents
}

type PaymentInit struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type PaymentVerification struct {
	OrderID string
	Amount  money.Cents
	Status  string
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, draft OrderDraft) (*queries.OrderView, error)
	GetOrder(ctx context.Context, orderID string) (*queries.OrderView, error)
	InitializePayment(ctx context.Context, orderID, callbackURL string) (*PaymentInit, error)
	VerifyPayment(ctx context.Context, reference string) (*PaymentVerification, error)
}

type PromoResult struct {
	Code     string
	Valid    bool
	Message  string
	Discount money.Cents
}

type PromoGateway interface {
	ValidatePromo(ctx context.Context, code string, subtotal money.Cents) (*PromoResult, error)
}

// PaystackKeySource yields the provider public key the hosted widget is
// opened with.
type PaystackKeySource interface {
	PublicKey(ctx context.Context) (string, error)
}

// DraftStore keeps per-session transient checkout state: the two step
// drafts and the pending-order marker used to avoid duplicate orders on
// payment retry. Absent values come back as nil / empty, not errors.
type DraftStore interface {
	SaveShipping(ctx context.Context, sessionKey string, draft checkout.ShippingDraft) error
	GetShipping(ctx context.Context, sessionKey string) (*checkout.ShippingDraft, error)
	SavePayment(ctx context.Context, sessionKey string, draft checkout.PaymentDraft) error
	GetPayment(ctx context.Context, sessionKey string) (*checkout.PaymentDraft, error)
	SavePendingOrder(ctx context.Context, sessionKey, orderID string) error
	GetPendingOrder(ctx context.Context, sessionKey string) (string, error)
	ClearDrafts(ctx context.Context, sessionKey string) error
}
