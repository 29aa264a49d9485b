package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID       uuid.UUID `db:"user_id"`
	RestaurantID uuid.UUID `db:"restaurant_id"`
	Rating       int       `db:"rating"` // 1-5
	ReviewText   *string   `db:"review_text"`
}

// ReviewDetail joins a review with reviewer and restaurant names
type ReviewDetail struct {
	Review
	UserName       string `db:"user_name"`
	RestaurantName string `db:"restaurant_name"`
}
