package request

import "time"

type CreateBookingRequest struct {
	RestaurantID string    `json:"restaurant_id" validate:"required,uuid4"`
	BookingTime  time.Time `json:"booking_time" validate:"required"`
	NumGuests    int       `json:"num_guests" validate:"required,gt=0"`
}
