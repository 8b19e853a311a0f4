package response

import (
	"maison-storefront/internal/usecase/queries"
)

type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Price        string `json:"price"`
	Image        string `json:"image"`
	Badge        string `json:"badge,omitempty"`
	IsBestseller bool   `json:"is_bestseller"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:           v.ID,
		Name:         v.Name,
		Slug:         v.Slug,
		Price:        v.Price.String(),
		Image:        v.Image,
		Badge:        v.Badge,
		IsBestseller: v.IsBestseller,
	}
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

type ProductSizeResponse struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Volume      string `json:"volume"`
	Price       string `json:"price"`
	SKU         string `json:"sku"`
	Stock       int    `json:"stock"`
	IsAvailable bool   `json:"is_available"`
}

type ProductDetailResponse struct {
	ProductResponse
	Description string                         `json:"description"`
	Story       string                         `json:"story"`
	Rating      queries.ProductRatingView      `json:"rating"`
	Gallery     []string                       `json:"gallery"`
	Sizes       []ProductSizeResponse          `json:"sizes"`
	Accords     queries.ProductAccordsView     `json:"accords"`
	Highlights  []queries.ProductHighlightView `json:"highlights"`
	Ritual      []string                       `json:"ritual"`
	Ingredients []string                       `json:"ingredients"`
}

func FromProductDetailView(v *queries.ProductDetailView) *ProductDetailResponse {
	sizes := make([]ProductSizeResponse, len(v.Sizes))
	for i, s := range v.Sizes {
		sizes[i] = ProductSizeResponse{
			ID:          s.ID,
			Label:       s.Label,
			Volume:      s.Volume,
			Price:       s.Price.String(),
			SKU:         s.SKU,
			Stock:       s.Stock,
			IsAvailable: s.IsAvailable,
		}
	}

	return &ProductDetailResponse{
		ProductResponse: *FromProductView(&v.ProductView),
		Description:     v.Description,
		Story:           v.Story,
		Rating:          v.Rating,
		Gallery:         v.Gallery,
		Sizes:           sizes,
		Accords:         v.Accords,
		Highlights:      v.Highlights,
		Ritual:          v.Ritual,
		Ingredients:     v.Ingredients,
	}
}

type CollectionResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Href         string `json:"href"`
	ProductCount int    `json:"product_count"`
	IsFeatured   bool   `json:"is_featured"`
}

func FromCollectionView(v *queries.CollectionView) *CollectionResponse {
	return &CollectionResponse{
		ID:           v.ID,
		Title:        v.Title,
		Slug:         v.Slug,
		Description:  v.Description,
		Image:        v.Image,
		Href:         v.Href,
		ProductCount: v.ProductCount,
		IsFeatured:   v.IsFeatured,
	}
}

func FromCollectionList(views []*queries.CollectionView) []*CollectionResponse {
	res := make([]*CollectionResponse, len(views))
	for i, v := range views {
		res[i] = FromCollectionView(v)
	}
	return res
}

type CollectionDetailResponse struct {
	CollectionResponse
	Products []*ProductResponse `json:"products"`
}

func FromCollectionDetailView(v *queries.CollectionDetailView) *CollectionDetailResponse {
	return &CollectionDetailResponse{
		CollectionResponse: *FromCollectionView(&v.CollectionView),
		Products:           FromProductList(v.Products),
	}
}
