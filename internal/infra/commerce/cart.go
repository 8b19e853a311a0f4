package commerce

import (
	"context"
	"net/http"
	"net/url"

	domcart "maison-storefront/internal/domain/cart"
	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
)

type wireCartItem struct {
	ID      int64 `json:"id"`
	Product struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"product"`
	Variant  *int64 `json:"variant"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type wireCart struct {
	SessionKey string         `json:"session_key"`
	Items      []wireCartItem `json:"items"`
}

func cartPath(sessionKey, action string) string {
	p := "/orders/cart/" + url.PathEscape(sessionKey) + "/"
	if action != "" {
		p += action + "/"
	}
	return p
}

func (c *Client) FetchCart(ctx context.Context, sessionKey string) (domcart.Snapshot, error) {
	var wire wireCart
	if err := c.get(ctx, cartPath(sessionKey, ""), nil, &wire); err != nil {
		return domcart.Snapshot{}, err
	}

	items := make([]domcart.LineItem, 0, len(wire.Items))
	for _, wi := range wire.Items {
		price, err := money.ParseDecimal(wi.Price)
		if err != nil {
			return domcart.Snapshot{}, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "parse cart item price", err)
		}
		items = append(items, domcart.LineItem{
			ID:        wi.ID,
			ProductID: wi.Product.ID,
			VariantID: wi.Variant,
			Name:      wi.Product.Name,
			Image:     wi.Product.Image,
			UnitPrice: price,
			Quantity:  wi.Quantity,
		})
	}
	return domcart.Snapshot{Items: items}, nil
}

func (c *Client) AddItem(ctx context.Context, sessionKey string, item commands.NewCartItem) error {
	body := map[string]any{
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	}
	if item.VariantID != nil {
		body["variant_id"] = *item.VariantID
	}
	return c.send(ctx, http.MethodPost, cartPath(sessionKey, "add_item"), nil, body, nil)
}

func (c *Client) UpdateItem(ctx context.Context, sessionKey string, itemID int64, quantity int) error {
	body := map[string]any{
		"item_id":  itemID,
		"quantity": quantity,
	}
	return c.send(ctx, http.MethodPatch, cartPath(sessionKey, "update_item"), nil, body, nil)
}

func (c *Client) RemoveItem(ctx context.Context, sessionKey string, itemID int64) error {
	body := map[string]any{
		"item_id": itemID,
	}
	return c.send(ctx, http.MethodDelete, cartPath(sessionKey, "remove_item"), nil, body, nil)
}

func (c *Client) ClearCart(ctx context.Context, sessionKey string) error {
	return c.send(ctx, http.MethodPost, cartPath(sessionKey, "clear"), nil, nil, nil)
}
