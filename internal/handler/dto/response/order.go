package response

import (
	"maison-storefront/internal/usecase/queries"
)

type OrderItemResponse struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	VariantLabel string `json:"variant_label,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	Email         string              `json:"email"`
	FullName      string              `json:"full_name"`
	Total         string              `json:"total"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     int64               `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItemResponse{
			Name:         it.Name,
			Image:        it.Image,
			VariantLabel: it.VariantLabel,
			Quantity:     it.Quantity,
			Price:        it.Price.String(),
		}
	}

	return &OrderResponse{
		ID:            v.ID,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		Email:         v.Email,
		FullName:      v.FullName,
		Total:         v.Total.String(),
		Items:         items,
		CreatedAt:     v.CreatedAt.Unix(),
	}
}
