package commands

import (
	"context"

	domcart "maison-storefront/internal/domain/cart"
)

// CartCommands mirrors the backend cart for a session. Every mutation
// that succeeds is followed by a full reload, so the returned snapshot is
// always server truth, never a locally accumulated state. The trade is a
// round trip per mutation for the guarantee that client and backend
// cannot diverge.
type CartCommands interface {
	Get(ctx context.Context, sessionKey string) (domcart.Snapshot, error)
	AddItem(ctx context.Context, sessionKey string, item NewCartItem) (domcart.Snapshot, error)
	UpdateQuantity(ctx context.Context, sessionKey string, itemID int64, quantity int) (domcart.Snapshot, error)
	RemoveItem(ctx context.Context, sessionKey string, itemID int64) (domcart.Snapshot, error)
	Clear(ctx context.Context, sessionKey string) (domcart.Snapshot, error)
}

type cartUseCaseImpl struct {
	gw CartGateway
}

func NewCartCommands(gw CartGateway) CartCommands {
	return &cartUseCaseImpl{gw: gw}
}

func (u *cartUseCaseImpl) Get(ctx context.Context, sessionKey string) (domcart.Snapshot, error) {
	return u.gw.FetchCart(ctx, sessionKey)
}

func (u *cartUseCaseImpl) AddItem(ctx context.Context, sessionKey string, item NewCartItem) (domcart.Snapshot, error) {
	if item.Quantity < 1 {
		return domcart.Snapshot{}, domcart.ErrQuantityTooSmall
	}
	if err := u.gw.AddItem(ctx, sessionKey, item); err != nil {
		return domcart.Snapshot{}, err
	}
	return u.gw.FetchCart(ctx, sessionKey)
}

func (u *cartUseCaseImpl) UpdateQuantity(ctx context.Context, sessionKey string, itemID int64, quantity int) (domcart.Snapshot, error) {
	// Removing the last unit is an explicit remove, never qty=0.
	if quantity < 1 {
		return domcart.Snapshot{}, domcart.ErrQuantityTooSmall
	}

	current, err := u.gw.FetchCart(ctx, sessionKey)
	if err != nil {
		return domcart.Snapshot{}, err
	}
	// Guard against acting on stale local-only entries: unknown ids are a
	// no-op that returns the unchanged snapshot.
	if _, ok := current.FindItem(itemID); !ok {
		return current, nil
	}

	if err := u.gw.UpdateItem(ctx, sessionKey, itemID, quantity); err != nil {
		return domcart.Snapshot{}, err
	}
	return u.gw.FetchCart(ctx, sessionKey)
}

func (u *cartUseCaseImpl) RemoveItem(ctx context.Context, sessionKey string, itemID int64) (domcart.Snapshot, error) {
	current, err := u.gw.FetchCart(ctx, sessionKey)
	if err != nil {
		return domcart.Snapshot{}, err
	}
	if _, ok := current.FindItem(itemID); !ok {
		return current, nil
	}

	if err := u.gw.RemoveItem(ctx, sessionKey, itemID); err != nil {
		return domcart.Snapshot{}, err
	}
	return u.gw.FetchCart(ctx, sessionKey)
}

// Clear is the one exception to reload-after-mutate: after a successful
// backend clear the empty snapshot is returned directly.
func (u *cartUseCaseImpl) Clear(ctx context.Context, sessionKey string) (domcart.Snapshot, error) {
	if err := u.gw.ClearCart(ctx, sessionKey); err != nil {
		return domcart.Snapshot{}, err
	}
	return domcart.Empty(), nil
}
