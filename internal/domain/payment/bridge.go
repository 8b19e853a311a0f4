package payment

import (
	"fmt"
	"time"

	"maison-storefront/internal/pkg/money"
)

// DefaultChannels are the Paystack channels offered at checkout.
var DefaultChannels = []string{"card", "bank", "mobile_money"}

// Metadata travels with the transaction and comes back on webhooks.
type Metadata struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	ItemsCount   int    `json:"items_count"`
}

// InlinePayload is everything the hosted Paystack inline widget needs to
// open. Amount is in the provider's minor unit (pesewas).
type InlinePayload struct {
	PublicKey string   `json:"key"`
	Email     string   `json:"email"`
	Amount    int64    `json:"amount"`
	Currency  string   `json:"currency"`
	Reference string   `json:"ref"`
	Channels  []string `json:"channels"`
	Metadata  Metadata `json:"metadata"`
}

// NewReference mints a payment reference unique per attempt, so a retry
// after cancellation gets a fresh reference against the same order.
func NewReference(orderID string, now time.Time) string {
	return fmt.Sprintf("PAY-%s-%d", orderID, now.UnixMilli())
}

func NewInlinePayload(publicKey, email, currency string, amount money.Cents, reference string, meta Metadata) InlinePayload {
	return InlinePayload{
		PublicKey: publicKey,
		Email:     email,
		Amount:    amount.Minor(),
		Currency:  currency,
		Reference: reference,
		Channels:  DefaultChannels,
		Metadata:  meta,
	}
}
