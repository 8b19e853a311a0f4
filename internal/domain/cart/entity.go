package cart

import (
	"maison-storefront/internal/pkg/errs"
	"maison-storefront/internal/pkg/money"
)

var ErrQuantityTooSmall = errs.New("quantity must be at least 1")

// LineItem is one product (plus optional variant) entry with the unit
// price captured at fetch time and display metadata for the UI.
type LineItem struct {
	ID        int64 // backend-assigned cart-item id
	ProductID string
	VariantID *int64
	Name      string
	Image     string
	UnitPrice money.Cents
	Quantity  int
}

func (li LineItem) LineTotal() money.Cents {
	return li.UnitPrice.MulQty(li.Quantity)
}

// Snapshot is the client-visible cart: a pure projection of the last
// successful backend read. It is never mutated locally; every change goes
// through the backend and comes back as a fresh snapshot.
type Snapshot struct {
	Items []LineItem
}

func Empty() Snapshot {
	return Snapshot{}
}

func (s Snapshot) Subtotal() money.Cents {
	var sum money.Cents
	for _, li := range s.Items {
		sum += li.LineTotal()
	}
	return sum
}

func (s Snapshot) TotalItems() int {
	var n int
	for _, li := range s.Items {
		n += li.Quantity
	}
	return n
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// FindItem locates a line by its backend-assigned id. Mutations on ids
// the snapshot does not know are rejected before any backend call.
func (s Snapshot) FindItem(itemID int64) (LineItem, bool) {
	for _, li := range s.Items {
		if li.ID == itemID {
			return li, true
		}
	}
	return LineItem{}, false
}
