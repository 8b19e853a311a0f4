package commands

import (
	"context"

	"maison-storefront/internal/pkg/errs"
)

var ErrRatingRequired = errs.New("rating must be between 1 and 5")

// NewReview is a review submission; the backend moderates and owns the
// review after creation.
type NewReview struct {
	ProductID     int64
	CustomerName  string
	CustomerEmail string
	Rating        int
	Title         string
	Comment       string
}

type CreateReviewResult struct {
	ReviewID int64
	Message  string
}

type ReviewWriteGateway interface {
	CreateReview(ctx context.Context, review NewReview) (*CreateReviewResult, error)
}

type ReviewCommands interface {
	Create(ctx context.Context, review NewReview) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	gw ReviewWriteGateway
}

func NewReviewCommands(gw ReviewWriteGateway) ReviewCommands {
	return &reviewUseCaseImpl{gw: gw}
}

// Create checks the rating locally; a missing rating never produces a
// network call.
func (u *reviewUseCaseImpl) Create(ctx context.Context, review NewReview) (*CreateReviewResult, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrRatingRequired
	}
	return u.gw.CreateReview(ctx, review)
}
