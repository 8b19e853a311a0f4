package queries

import (
	"time"

	"maison-storefront/internal/pkg/money"
)

// Views are read-optimized projections of backend resources. The client
// holds no authoritative state; every view is whatever the last backend
// read returned.

type ProductView struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Price        money.Cents `json:"-"`
	Image        string      `json:"image"`
	Badge        string      `json:"badge,omitempty"`
	IsBestseller bool        `json:"is_bestseller"`
}

type ProductSizeView struct {
	ID          int64       `json:"id"`
	Label       string      `json:"label"`
	Volume      string      `json:"volume"`
	Price       money.Cents `json:"-"`
	SKU         string      `json:"sku"`
	Stock       int         `json:"stock"`
	IsAvailable bool        `json:"is_available"`
}

type ProductHighlightView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type ProductAccordsView struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

type ProductRatingView struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type ProductDetailView struct {
	ProductView
	Description string                 `json:"description"`
	Story       string                 `json:"story"`
	Rating      ProductRatingView      `json:"rating"`
	Gallery     []string               `json:"gallery"`
	Sizes       []ProductSizeView      `json:"sizes"`
	Accords     ProductAccordsView     `json:"accords"`
	Highlights  []ProductHighlightView `json:"highlights"`
	Ritual      []string               `json:"ritual"`
	Ingredients []string               `json:"ingredients"`
}

type CollectionView struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Href         string `json:"href"`
	ProductCount int    `json:"product_count"`
	IsFeatured   bool   `json:"is_featured"`
}

type CollectionDetailView struct {
	CollectionView
	Products []*ProductView `json:"products"`
}

// ProductFilters is the whitelisted pass-through of shop query params.
type ProductFilters struct {
	Collection string
	Sort       string
}

type ReviewView struct {
	ID                 int64     `json:"id"`
	CustomerName       string    `json:"customer_name"`
	Rating             int       `json:"rating"`
	RatingDisplay      string    `json:"rating_display"`
	Title              string    `json:"title"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	IsFeatured         bool      `json:"is_featured"`
	CreatedAt          time.Time `json:"created_at"`
}

type ReviewStatsView struct {
	AverageRating    float64 `json:"average_rating"`
	TotalReviews     int     `json:"total_reviews"`
	FiveStar         int     `json:"five_star"`
	FourStar         int     `json:"four_star"`
	ThreeStar        int     `json:"three_star"`
	TwoStar          int     `json:"two_star"`
	OneStar          int     `json:"one_star"`
	FiveStarPercent  float64 `json:"five_star_percent"`
	FourStarPercent  float64 `json:"four_star_percent"`
	ThreeStarPercent float64 `json:"three_star_percent"`
	TwoStarPercent   float64 `json:"two_star_percent"`
	OneStarPercent   float64 `json:"one_star_percent"`
}

type AnnouncementView struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	Type            string     `json:"announcement_type"`
	Priority        string     `json:"priority"`
	ShowOnHomepage  bool       `json:"show_on_homepage"`
	ShowOnShop      bool       `json:"show_on_shop"`
	ShowOnAllPages  bool       `json:"show_on_all_pages"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	LinkURL         string     `json:"link_url,omitempty"`
	LinkText        string     `json:"link_text,omitempty"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

type OrderItemView struct {
	Name         string      `json:"name"`
	Image        string      `json:"image"`
	VariantLabel string      `json:"variant_label"`
	Quantity     int         `json:"quantity"`
	Price        money.Cents `json:"-"`
}

// OrderView is read-only from the client's perspective after creation.
type OrderView struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	Email         string          `json:"email"`
	FullName      string          `json:"full_name"`
	Total         money.Cents     `json:"-"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Paid reports whether the backend considers the order settled; only
// unsettled orders are eligible for payment-retry reuse.
func (o *OrderView) Paid() bool {
	return o.PaymentStatus == "paid"
}
