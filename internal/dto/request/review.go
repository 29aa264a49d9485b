package request

type CreateReviewRequest struct {
	RestaurantID string  `json:"restaurant_id" validate:"required,uuid4"`
	Rating       int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText   *string `json:"review_text,omitempty"`
}
