package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	UserName       string    `json:"user_name"`
	Rating         int       `json:"rating"`
	ReviewText     *string   `json:"review_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.ReviewDetail) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID.String(),
		RestaurantID:   review.RestaurantID.String(),
		RestaurantName: review.RestaurantName,
		UserName:       review.UserName,
		Rating:         review.Rating,
		ReviewText:     review.ReviewText,
		CreatedAt:      review.CreatedAt,
	}
}
