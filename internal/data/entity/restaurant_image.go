package entity

import (
	"github.com/google/uuid"
)

// RestaurantImage is a gallery entry. Append-only: there is no delete path.
type RestaurantImage struct {
	BaseSimple
	RestaurantID uuid.UUID `db:"restaurant_id"`
	ImageURL     string    `db:"image_url"`
}
