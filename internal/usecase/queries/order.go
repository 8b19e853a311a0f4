package queries

import (
	"context"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/errs"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadGateway interface {
	GetOrder(ctx context.Context, orderID string) (*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, orderID string) (*OrderView, error)
}

type orderQueriesImpl struct {
	gw OrderReadGateway
}

func NewOrderQueries(gw OrderReadGateway) OrderQueries {
	return &orderQueriesImpl{gw: gw}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, orderID string) (*OrderView, error) {
	ov, err := q.gw.GetOrder(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return ov, nil
}
