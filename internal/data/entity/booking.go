package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// DisplayStatus is derived from the stored status and wall-clock time
// at read time. It is never persisted.
type DisplayStatus string

const (
	DisplayStatusUpcoming  DisplayStatus = "upcoming"
	DisplayStatusCompleted DisplayStatus = "completed"
	DisplayStatusCancelled DisplayStatus = "cancelled"
)

type Booking struct {
	Base
	UserID       uuid.UUID     `db:"user_id"`
	RestaurantID uuid.UUID     `db:"restaurant_id"`
	BookingTime  time.Time     `db:"booking_time"`
	NumGuests    int           `db:"num_guests"`
	Status       BookingStatus `db:"status"`
	TicketID     string        `db:"ticket_id"`
	QRCodeData   string        `db:"qr_code_data"`
}

// BookingDetail joins a booking with the names shown in list views
type BookingDetail struct {
	Booking
	CustomerName    string  `db:"customer_name"`
	RestaurantName  string  `db:"restaurant_name"`
	RestaurantImage *string `db:"restaurant_image"`
}
