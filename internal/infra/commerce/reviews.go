package commerce

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"maison-storefront/internal/usecase/commands"
	"maison-storefront/internal/usecase/queries"
)

type wireReview struct {
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

func (c *Client) ListByProduct(ctx context.Context, productID int64) ([]*queries.ReviewView, error) {
	var wires []wireReview
	path := "/reviews/product/" + strconv.FormatInt(productID, 10) + "/"
	if err := c.get(ctx, path, nil, &wires); err != nil {
		return nil, err
	}
	return reviewViews(wires), nil
}

func (c *Client) StatsByProduct(ctx context.Context, productID int64) (*queries.ReviewStatsView, error) {
	var stats queries.ReviewStatsView
	path := "/reviews/product/" + strconv.FormatInt(productID, 10) + "/stats/"
	if err := c.get(ctx, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) CreateReview(ctx context.Context, review commands.NewReview) (*commands.CreateReviewResult, error) {
	body := map[string]any{
		"product":        review.ProductID,
		"customer_name":  review.CustomerName,
		"customer_email": review.CustomerEmail,
		"rating":         review.Rating,
		"title":          review.Title,
		"comment":        review.Comment,
	}

	var wire struct {
		Message  string `json:"message"`
		ReviewID int64  `json:"review_id"`
	}
	if err := c.send(ctx, http.MethodPost, "/reviews/create/", nil, body, &wire); err != nil {
		return nil, err
	}
	return &commands.CreateReviewResult{
		ReviewID: wire.ReviewID,
		Message:  wire.Message,
	}, nil
}

func (c *Client) FeaturedReviews(ctx context.Context) ([]*queries.ReviewView, error) {
	var wires []wireReview
	if err := c.get(ctx, "/reviews/featured/", nil, &wires); err != nil {
		return nil, err
	}
	return reviewViews(wires), nil
}

func reviewViews(wires []wireReview) []*queries.ReviewView {
	views := make([]*queries.ReviewView, 0, len(wires))
	for _, w := range wires {
		views = append(views, &queries.ReviewView{
			ID:                 w.ID,
			CustomerName:       w.CustomerName,
			Rating:             w.Rating,
			RatingDisplay:      w.RatingDisplay,
			Title:              w.Title,
			Comment:            w.Comment,
			IsVerifiedPurchase: w.IsVerifiedPurchase,
			IsFeatured:         w.IsFeatured,
			CreatedAt:          w.CreatedAt,
		})
	}
	return views
}
