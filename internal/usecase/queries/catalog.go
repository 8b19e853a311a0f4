package queries

import (
	"context"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/errs"
)

var (
	ErrProductNotFound    = errs.New("product not found")
	ErrCollectionNotFound = errs.New("collection not found")
)

// CatalogGateway is the read surface of the commerce backend's product
// and collection endpoints.
type CatalogGateway interface {
	ListProducts(ctx context.Context, filters ProductFilters) ([]*ProductView, error)
	GetProduct(ctx context.Context, slug string) (*ProductDetailView, error)
	SearchProducts(ctx context.Context, query string) ([]*ProductView, error)
	FeaturedProducts(ctx context.Context) ([]*ProductView, error)
	BestsellerProducts(ctx context.Context) ([]*ProductView, error)
	RelatedProducts(ctx context.Context, slug string) ([]*ProductView, error)
	ListCollections(ctx context.Context) ([]*CollectionView, error)
	GetCollection(ctx context.Context, slug string) (*CollectionDetailView, error)
	FeaturedCollections(ctx context.Context) ([]*CollectionView, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, filters ProductFilters) ([]*ProductView, error)
	GetProduct(ctx context.Context, slug string) (*ProductDetailView, error)
	SearchProducts(ctx context.Context, query string) ([]*ProductView, error)
	FeaturedProducts(ctx context.Context) ([]*ProductView, error)
	BestsellerProducts(ctx context.Context) ([]*ProductView, error)
	RelatedProducts(ctx context.Context, slug string) ([]*ProductView, error)
	ListCollections(ctx context.Context) ([]*CollectionView, error)
	GetCollection(ctx context.Context, slug string) (*CollectionDetailView, error)
	FeaturedCollections(ctx context.Context) ([]*CollectionView, error)
}

type catalogQueriesImpl struct {
	gw CatalogGateway
}

func NewCatalogQueries(gw CatalogGateway) CatalogQueries {
	return &catalogQueriesImpl{gw: gw}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filters ProductFilters) ([]*ProductView, error) {
	return q.gw.ListProducts(ctx, filters)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, slug string) (*ProductDetailView, error) {
	pv, err := q.gw.GetProduct(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return pv, nil
}

func (q *catalogQueriesImpl) SearchProducts(ctx context.Context, query string) ([]*ProductView, error) {
	return q.gw.SearchProducts(ctx, query)
}

func (q *catalogQueriesImpl) FeaturedProducts(ctx context.Context) ([]*ProductView, error) {
	return q.gw.FeaturedProducts(ctx)
}

func (q *catalogQueriesImpl) BestsellerProducts(ctx context.Context) ([]*ProductView, error) {
	return q.gw.BestsellerProducts(ctx)
}

func (q *catalogQueriesImpl) RelatedProducts(ctx context.Context, slug string) ([]*ProductView, error) {
	return q.gw.RelatedProducts(ctx, slug)
}

func (q *catalogQueriesImpl) ListCollections(ctx context.Context) ([]*CollectionView, error) {
	return q.gw.ListCollections(ctx)
}

func (q *catalogQueriesImpl) GetCollection(ctx context.Context, slug string) (*CollectionDetailView, error) {
	cv, err := q.gw.GetCollection(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return cv, nil
}

func (q *catalogQueriesImpl) FeaturedCollections(ctx context.Context) ([]*CollectionView, error) {
	return q.gw.FeaturedCollections(ctx)
}
