package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
	TicketID  string `json:"ticket_id"`
	QRCode    string `json:"qr_code"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	RestaurantID    string               `json:"restaurant_id"`
	RestaurantName  string               `json:"restaurant_name"`
	RestaurantImage *string              `json:"restaurant_image,omitempty"`
	CustomerName    string               `json:"customer_name,omitempty"`
	BookingTime     time.Time            `json:"booking_time"`
	NumGuests       int                  `json:"num_guests"`
	Status          entity.BookingStatus `json:"status"`
	DisplayStatus   entity.DisplayStatus `json:"display_status"`
	TicketID        string               `json:"ticket_id"`
	QRCode          string               `json:"qr_code,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// BookingToResponse converts a joined booking row. The display status is
// derived against now and never read from storage.
func BookingToResponse(booking *entity.BookingDetail, displayStatus entity.DisplayStatus) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		RestaurantID:    booking.RestaurantID.String(),
		RestaurantName:  booking.RestaurantName,
		RestaurantImage: booking.RestaurantImage,
		CustomerName:    booking.CustomerName,
		BookingTime:     booking.BookingTime,
		NumGuests:       booking.NumGuests,
		Status:          booking.Status,
		DisplayStatus:   displayStatus,
		TicketID:        booking.TicketID,
		QRCode:          booking.QRCodeData,
		CreatedAt:       booking.CreatedAt,
	}
}
