package commands

import (
	"context"

	domcart "maison-storefront/internal/domain/cart"
)

// NoopCart is the null-object CartCommands: every operation resolves
// safely with an empty snapshot and zero derived values. Embedding
// contexts that render cart UI without a wired backend get inert
// behavior instead of a crash.
type NoopCart struct{}

func NewNoopCart() CartCommands {
	return NoopCart{}
}

func (NoopCart) Get(context.Context, string) (domcart.Snapshot, error) {
	return domcart.Empty(), nil
}

func (NoopCart) AddItem(context.Context, string, NewCartItem) (domcart.Snapshot, error) {
	return domcart.Empty(), nil
}

func (NoopCart) UpdateQuantity(context.Context, string, int64, int) (domcart.Snapshot, error) {
	return domcart.Empty(), nil
}

func (NoopCart) RemoveItem(context.Context, string, int64) (domcart.Snapshot, error) {
	return domcart.Empty(), nil
}

func (NoopCart) Clear(context.Context, string) (domcart.Snapshot, error) {
	return domcart.Empty(), nil
}
