package commerce

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/errs"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/internal/usecase/queries"
)

type wireOrderItem struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	VariantLabel string `json:"variant_label"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
}

type wireOrder struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	Email         string          `json:"email"`
	FullName      string          `json:"full_name"`
	Total         string          `json:"total"`
	Items         []wireOrderItem `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (c *Client) CreateOrder(ctx context.Context, draft commands.OrderDraft) (*queries.OrderView, error) {
	items := make([]map[string]any, len(draft.Items))
	for i, it := range draft.Items {
		entry := map[string]any{
			"product_id":    it.ProductID,
			"name":          it.Name,
			"image":         it.Image,
			"variant_label": it.VariantLabel,
			"quantity":      it.Quantity,
			"price":         it.Price.String(),
		}
		if it.VariantID != nil {
			entry["variant_id"] = *it.VariantID
		}
		items[i] = entry
	}

	body := map[string]any{
		"email":                draft.Email,
		"full_name":            draft.FullName,
		"shipping_address":     draft.ShippingAddress,
		"shipping_city":        draft.ShippingCity,
		"shipping_postal_code": draft.ShippingPostalCode,
		"shipping_country":     draft.ShippingCountry,
		"payment_method":       draft.PaymentMethod,
		"items":                items,
	}

	var wire wireOrder
	if err := c.send(ctx, http.MethodPost, "/orders/", nil, body, &wire); err != nil {
		return nil, err
	}
	return c.orderView(wire)
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*queries.OrderView, error) {
	var wire wireOrder
	if err := c.get(ctx, "/orders/"+url.PathEscape(orderID)+"/", nil, &wire); err != nil {
		return nil, err
	}
	return c.orderView(wire)
}

func (c *Client) InitializePayment(ctx context.Context, orderID, callbackURL string) (*commands.PaymentInit, error) {
	body := map[string]any{
		"order_id": orderID,
	}
	if callbackURL != "" {
		body["callback_url"] = callbackURL
	}

	var wire struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := c.send(ctx, http.MethodPost, "/orders/initialize_payment/", nil, body, &wire); err != nil {
		return nil, err
	}
	if !wire.Status {
		msg := wire.Message
		if msg == "" {
			msg = "failed to initialize payment"
		}
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendRejected, msg, errs.New("payment initialization rejected"))
	}

	return &commands.PaymentInit{
		AuthorizationURL: wire.Data.AuthorizationURL,
		AccessCode:       wire.Data.AccessCode,
		Reference:        wire.Data.Reference,
	}, nil
}

func (c *Client) VerifyPayment(ctx context.Context, reference string) (*commands.PaymentVerification, error) {
	body := map[string]any{
		"reference": reference,
	}

	var wire struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			OrderID string  `json:"order_id"`
			Amount  float64 `json:"amount"`
			Status  string  `json:"status"`
		} `json:"data"`
	}
	if err := c.send(ctx, http.MethodPost, "/orders/verify_payment/", nil, body, &wire); err != nil {
		return nil, err
	}
	if !wire.Status {
		msg := wire.Message
		if msg == "" {
			msg = "payment verification failed"
		}
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBackendRejected, msg, errs.New("payment verification rejected"))
	}

	return &commands.PaymentVerification{
		OrderID: wire.Data.OrderID,
		Amount:  money.FromFloat(wire.Data.Amount),
		Status:  wire.Data.Status,
	}, nil
}

// PaystackConfig exposes the backend-held provider public key.
func (c *Client) PaystackConfig(ctx context.Context) (string, error) {
	var wire struct {
		PublicKey string `json:"public_key"`
	}
	if err := c.get(ctx, "/orders/paystack_config/", nil, &wire); err != nil {
		return "", err
	}
	return wire.PublicKey, nil
}

func (c *Client) orderView(wire wireOrder) (*queries.OrderView, error) {
	total, err := money.ParseDecimal(wire.Total)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "parse order total for "+wire.ID, err)
	}

	items := make([]queries.OrderItemView, 0, len(wire.Items))
	for _, wi := range wire.Items {
		price, perr := money.ParseDecimal(wi.Price)
		if perr != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "parse order item price for "+wire.ID, perr)
		}
		items = append(items, queries.OrderItemView{
			Name:         wi.Name,
			Image:        wi.Image,
			VariantLabel: wi.VariantLabel,
			Quantity:     wi.Quantity,
			Price:        price,
		})
	}

	return &queries.OrderView{
		ID:            wire.ID,
		Status:        wire.Status,
		PaymentStatus: wire.PaymentStatus,
		Email:         wire.Email,
		FullName:      wire.FullName,
		Total:         total,
		Items:         items,
		CreatedAt:     wire.CreatedAt,
	}, nil
}
