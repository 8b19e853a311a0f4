package request

import (
	"maison-storefront/internal/usecase/commands"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID *int64 `json:"variant_id"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

func (r *AddCartItemRequest) ToCommand() commands.NewCartItem {
	return commands.NewCartItem{
		ProductID: r.ProductID,
		VariantID: r.VariantID,
		Quantity:  r.Quantity,
	}
}

type UpdateCartItemRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

type RemoveCartItemRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
}
