package queries

import (
	"context"

	"maison-storefront/internal/infra"
)

type ReviewGateway interface {
	ListByProduct(ctx context.Context, productID int64) ([]*ReviewView, error)
	StatsByProduct(ctx context.Context, productID int64) (*ReviewStatsView, error)
	FeaturedReviews(ctx context.Context) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByProduct(ctx context.Context, productID int64) ([]*ReviewView, error)
	StatsByProduct(ctx context.Context, productID int64) (*ReviewStatsView, error)
	Featured(ctx context.Context) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	gw ReviewGateway
}

func NewReviewQueries(gw ReviewGateway) ReviewQueries {
	return &reviewQueriesImpl{gw: gw}
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID int64) ([]*ReviewView, error) {
	views, err := q.gw.ListByProduct(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return views, nil
}

func (q *reviewQueriesImpl) StatsByProduct(ctx context.Context, productID int64) (*ReviewStatsView, error) {
	stats, err := q.gw.StatsByProduct(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return stats, nil
}

func (q *reviewQueriesImpl) Featured(ctx context.Context) ([]*ReviewView, error) {
	return q.gw.FeaturedReviews(ctx)
}
