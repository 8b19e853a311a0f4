package commerce

import (
	"context"
	"net/http"
	"net/url"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
)

// ValidatePromo is the server-validated promo check: the backend owns
// the code table and computes the discount against the given subtotal.
// A rejected code (unknown, expired, below minimum purchase) is a valid
// result with Valid=false, not a transport error.
func (c *Client) ValidatePromo(ctx context.Context, code string, subtotal money.Cents) (*commands.PromoResult, error) {
	body := map[string]any{
		"subtotal": subtotal.String(),
	}

	var wire struct {
		Valid          bool    `json:"valid"`
		Message        string  `json:"message"`
		DiscountAmount float64 `json:"discount_amount"`
		Promo          struct {
			Code string `json:"code"`
		} `json:"promo"`
	}

	path := "/orders/promo/" + url.PathEscape(code) + "/validate/"
	if err := c.send(ctx, http.MethodPost, path, nil, body, &wire); err != nil {
		if infra.IsKind(err, infra.KindBackendRejected) || infra.IsKind(err, infra.KindNotFound) {
			return &commands.PromoResult{
				Code:    code,
				Valid:   false,
				Message: infra.BackendMessage(err),
			}, nil
		}
		return nil, err
	}

	result := &commands.PromoResult{
		Code:     wire.Promo.Code,
		Valid:    wire.Valid,
		Message:  wire.Message,
		Discount: money.FromFloat(wire.DiscountAmount),
	}
	if result.Code == "" {
		result.Code = code
	}
	return result, nil
}
