package commerce

import (
	"context"
	"encoding/json"
	"net/url"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/money"
	"maison-storefront/internal/usecase/queries"
)

type wireProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Price        string `json:"price"`
	Image        string `json:"image"`
	Badge        string `json:"badge"`
	IsBestseller bool   `json:"is_bestseller"`
}

type wireProductSize struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Volume      string `json:"volume"`
	Price       string `json:"price"`
	SKU         string `json:"sku"`
	Stock       int    `json:"stock"`
	IsAvailable bool   `json:"is_available"`
}

type wireProductDetail struct {
	wireProduct
	Description string `json:"description"`
	Story       string `json:"story"`
	Rating      struct {
		Average float64 `json:"average"`
		Count   int     `json:"count"`
	} `json:"rating"`
	Gallery    []string          `json:"gallery"`
	Sizes      []wireProductSize `json:"sizes"`
	Accords    struct {
		Top   []string `json:"top"`
		Heart []string `json:"heart"`
		Base  []string `json:"base"`
	} `json:"accords"`
	Highlights []struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Order       int    `json:"order"`
	} `json:"highlights"`
	Ritual      []string `json:"ritual"`
	Ingredients []string `json:"ingredients"`
}

type wireCollection struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Href         string `json:"href"`
	ProductCount int    `json:"product_count"`
	IsFeatured   bool   `json:"is_featured"`
}

func (c *Client) ListProducts(ctx context.Context, filters queries.ProductFilters) ([]*queries.ProductView, error) {
	query := url.Values{}
	if filters.Collection != "" {
		query.Set("collection", filters.Collection)
	}
	if filters.Sort != "" {
		query.Set("sort", filters.Sort)
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/products/", query, &raw); err != nil {
		return nil, err
	}
	return c.productList(raw)
}

func (c *Client) GetProduct(ctx context.Context, slug string) (*queries.ProductDetailView, error) {
	var wire wireProductDetail
	if err := c.get(ctx, "/products/"+url.PathEscape(slug)+"/", nil, &wire); err != nil {
		return nil, err
	}
	return c.productDetail(wire)
}

func (c *Client) SearchProducts(ctx context.Context, searchQuery string) ([]*queries.ProductView, error) {
	query := url.Values{}
	query.Set("q", searchQuery)

	var raw json.RawMessage
	if err := c.get(ctx, "/products/search/", query, &raw); err != nil {
		return nil, err
	}
	return c.productList(raw)
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]*queries.ProductView, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/products/featured/", nil, &raw); err != nil {
		return nil, err
	}
	return c.productList(raw)
}

func (c *Client) BestsellerProducts(ctx context.Context) ([]*queries.ProductView, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/products/bestsellers/", nil, &raw); err != nil {
		return nil, err
	}
	return c.productList(raw)
}

func (c *Client) RelatedProducts(ctx context.Context, slug string) ([]*queries.ProductView, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/products/"+url.PathEscape(slug)+"/related/", nil, &raw); err != nil {
		return nil, err
	}
	return c.productList(raw)
}

func (c *Client) ListCollections(ctx context.Context) ([]*queries.CollectionView, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/collections/", nil, &raw); err != nil {
		return nil, err
	}
	return c.collectionList(raw)
}

func (c *Client) GetCollection(ctx context.Context, slug string) (*queries.CollectionDetailView, error) {
	var wire struct {
		wireCollection
		Products []wireProduct `json:"products"`
	}
	if err := c.get(ctx, "/collections/"+url.PathEscape(slug)+"/", nil, &wire); err != nil {
		return nil, err
	}

	products := make([]*queries.ProductView, 0, len(wire.Products))
	for _, wp := range wire.Products {
		pv, err := c.productView(wp)
		if err != nil {
			return nil, err
		}
		products = append(products, pv)
	}
	return &queries.CollectionDetailView{
		CollectionView: collectionView(wire.wireCollection),
		Products:       products,
	}, nil
}

func (c *Client) FeaturedCollections(ctx context.Context) ([]*queries.CollectionView, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/collections/featured/", nil, &raw); err != nil {
		return nil, err
	}
	return c.collectionList(raw)
}

func (c *Client) productList(raw json.RawMessage) ([]*queries.ProductView, error) {
	wires, err := decodeList[wireProduct](raw)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "decode product list", err)
	}

	views := make([]*queries.ProductView, 0, len(wires))
	for _, wp := range wires {
		pv, err := c.productView(wp)
		if err != nil {
			return nil, err
		}
		views = append(views, pv)
	}
	return views, nil
}

func (c *Client) collectionList(raw json.RawMessage) ([]*queries.CollectionView, error) {
	wires, err := decodeList[wireCollection](raw)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "decode collection list", err)
	}

	views := make([]*queries.CollectionView, 0, len(wires))
	for _, wc := range wires {
		cv := collectionView(wc)
		views = append(views, &cv)
	}
	return views, nil
}

func (c *Client) productView(wire wireProduct) (*queries.ProductView, error) {
	price, err := money.ParseDecimal(wire.Price)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "parse product price for "+wire.Slug, err)
	}
	return &queries.ProductView{
		ID:           wire.ID,
		Name:         wire.Name,
		Slug:         wire.Slug,
		Price:        price,
		Image:        wire.Image,
		Badge:        wire.Badge,
		IsBestseller: wire.IsBestseller,
	}, nil
}

func (c *Client) productDetail(wire wireProductDetail) (*queries.ProductDetailView, error) {
	base, err := c.productView(wire.wireProduct)
	if err != nil {
		return nil, err
	}

	sizes := make([]queries.ProductSizeView, 0, len(wire.Sizes))
	for _, ws := range wire.Sizes {
		price, perr := money.ParseDecimal(ws.Price)
		if perr != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "parse size price for "+wire.Slug, perr)
		}
		sizes = append(sizes, queries.ProductSizeView{
			ID:          ws.ID,
			Label:       ws.Label,
			Volume:      ws.Volume,
			Price:       price,
			SKU:         ws.SKU,
			Stock:       ws.Stock,
			IsAvailable: ws.IsAvailable,
		})
	}

	highlights := make([]queries.ProductHighlightView, 0, len(wire.Highlights))
	for _, wh := range wire.Highlights {
		highlights = append(highlights, queries.ProductHighlightView{
			ID:          wh.ID,
			Title:       wh.Title,
			Description: wh.Description,
			Order:       wh.Order,
		})
	}

	return &queries.ProductDetailView{
		ProductView: *base,
		Description: wire.Description,
		Story:       wire.Story,
		Rating: queries.ProductRatingView{
			Average: wire.Rating.Average,
			Count:   wire.Rating.Count,
		},
		Gallery: wire.Gallery,
		Sizes:   sizes,
		Accords: queries.ProductAccordsView{
			Top:   wire.Accords.Top,
			Heart: wire.Accords.Heart,
			Base:  wire.Accords.Base,
		},
		Highlights:  highlights,
		Ritual:      wire.Ritual,
		Ingredients: wire.Ingredients,
	}, nil
}

func collectionView(wire wireCollection) queries.CollectionView {
	return queries.CollectionView{
		ID:           wire.ID,
		Title:        wire.Title,
		Slug:         wire.Slug,
		Description:  wire.Description,
		Image:        wire.Image,
		Href:         wire.Href,
		ProductCount: wire.ProductCount,
		IsFeatured:   wire.IsFeatured,
	}
}
