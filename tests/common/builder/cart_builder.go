//go:build unit || e2e

package builder

import (
	domcart "maison-storefront/internal/domain/cart"
	reqdto "maison-storefront/internal/handler/dto/request"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/commands"
)

type CartItemBuilder struct {
	ID        int64
	ProductID string
	VariantID *int64
	Name      string
	Image     string
	UnitPrice money.Cents
	Quantity  int
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		ID:        1,
		ProductID: "noir-de-minuit",
		Name:      "Noir de Minuit",
		Image:     "/img/noir-de-minuit.jpg",
		UnitPrice: money.Cents(7500),
		Quantity:  1,
	}
}

func (b *CartItemBuilder) With(mutate func(*CartItemBuilder)) *CartItemBuilder {
	mutate(b)
	return b
}

func (b *CartItemBuilder) WithID(id int64) *CartItemBuilder {
	b.ID = id
	return b
}

func (b *CartItemBuilder) WithUnitPrice(price money.Cents) *CartItemBuilder {
	b.UnitPrice = price
	return b
}

func (b *CartItemBuilder) WithQuantity(qty int) *CartItemBuilder {
	b.Quantity = qty
	return b
}

func (b *CartItemBuilder) BuildDomain() domcart.LineItem {
	return domcart.LineItem{
		ID:        b.ID,
		ProductID: b.ProductID,
		VariantID: b.VariantID,
		Name:      b.Name,
		Image:     b.Image,
		UnitPrice: b.UnitPrice,
		Quantity:  b.Quantity,
	}
}

func (b *CartItemBuilder) BuildAddRequestDTO() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		ProductID: b.ProductID,
		VariantID: b.VariantID,
		Quantity:  b.Quantity,
	}
}

func (b *CartItemBuilder) BuildCommand() commands.NewCartItem {
	return commands.NewCartItem{
		ProductID: b.ProductID,
		VariantID: b.VariantID,
		Quantity:  b.Quantity,
	}
}

// BuildSnapshot wraps the line items into a cart snapshot.
func BuildSnapshot(items ...domcart.LineItem) domcart.Snapshot {
	return domcart.Snapshot{Items: items}
}
