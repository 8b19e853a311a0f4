package checkout

// ShippingDraft holds the shipping form as submitted; it is transient
// per-session state, never sent to the backend until order creation.
type ShippingDraft struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Complete mirrors the order-placement precondition: a draft without a
// name and email cannot produce an order.
func (d ShippingDraft) Complete() bool {
	return d.FullName != "" && d.Email != ""
}

const MethodPaystack = "paystack"

// PaymentDraft records the chosen payment method. Only Paystack exists
// today; the type keeps the slot open for future methods.
type PaymentDraft struct {
	Method string `json:"method"`
}

func (d PaymentDraft) Complete() bool {
	return d.Method != ""
}
