package request

import (
	"maison-storefront/internal/usecase/commands"
)

type CreateReviewRequest struct {
	ProductID     int64  `json:"product_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required,max=120"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Title         string `json:"title" binding:"max=200"`
	Comment       string `json:"comment" binding:"required,max=2000"`
}

func (r *CreateReviewRequest) ToCommand() commands.NewReview {
	return commands.NewReview{
		ProductID:     r.ProductID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Rating:        r.Rating,
		Title:         r.Title,
		Comment:       r.Comment,
	}
}
