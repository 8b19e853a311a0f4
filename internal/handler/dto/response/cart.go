package response

import (
	domcart "maison-storefront/internal/domain/cart"
)

type CartItemResponse struct {
	ID        int64  `json:"id"`
	ProductID string `json:"product_id"`
	VariantID *int64 `json:"variant_id,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Subtotal   string             `json:"subtotal"`
	TotalItems int                `json:"total_items"`
}

func FromCartSnapshot(s domcart.Snapshot) *CartResponse {
	items := make([]CartItemResponse, len(s.Items))
	for i, li := range s.Items {
		items[i] = CartItemResponse{
			ID:        li.ID,
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Image:     li.Image,
			UnitPrice: li.UnitPrice.String(),
			Quantity:  li.Quantity,
			LineTotal: li.LineTotal().String(),
		}
	}

	return &CartResponse{
		Items:      items,
		Subtotal:   s.Subtotal().String(),
		TotalItems: s.TotalItems(),
	}
}
