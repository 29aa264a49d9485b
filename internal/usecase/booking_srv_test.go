package usecase

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingReq(restaurantID string, at time.Time) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		RestaurantID: restaurantID,
		BookingTime:  at,
		NumGuests:    2,
	}
}

func TestDeriveDisplayStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      entity.BookingStatus
		bookingTime time.Time
		expect      entity.DisplayStatus
	}{
		{"future confirmed", entity.BookingStatusConfirmed, now.Add(time.Hour), entity.DisplayStatusUpcoming},
		{"past confirmed", entity.BookingStatusConfirmed, now.Add(-time.Hour), entity.DisplayStatusCompleted},
		{"exactly now", entity.BookingStatusConfirmed, now, entity.DisplayStatusCompleted},
		{"cancelled future", entity.BookingStatusCancelled, now.Add(time.Hour), entity.DisplayStatusCancelled},
		{"cancelled past", entity.BookingStatusCancelled, now.Add(-time.Hour), entity.DisplayStatusCancelled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, DeriveDisplayStatus(tc.status, tc.bookingTime, now))
		})
	}
}

func TestDeriveDisplayStatusAdvancesWithTime(t *testing.T) {
	bookingTime := time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC)

	// The same stored row reads differently as the clock moves past it
	before := DeriveDisplayStatus(entity.BookingStatusConfirmed, bookingTime, bookingTime.Add(-time.Minute))
	after := DeriveDisplayStatus(entity.BookingStatusConfirmed, bookingTime, bookingTime.Add(time.Minute))

	assert.Equal(t, entity.DisplayStatusUpcoming, before)
	assert.Equal(t, entity.DisplayStatusCompleted, after)
}

func TestCreateBookingRequiresApprovedRestaurant(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	pending := seedRestaurant(store, owner.ID, entity.RestaurantStatusPending)

	_, err := service.Booking.CreateBooking(context.Background(), customer.ID.String(),
		bookingReq(pending.ID.String(), time.Now().Add(24*time.Hour)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateBookingIssuesTicketAndQR(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)

	booking, err := service.Booking.CreateBooking(context.Background(), customer.ID.String(),
		bookingReq(restaurant.ID.String(), time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), booking.TicketID)
	assert.True(t, strings.HasPrefix(booking.QRCode, "data:image/png;base64,"))

	stored := store.bookings[mustParseUUID(t, booking.BookingID)]
	require.NotNil(t, stored)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.Status)
}

func TestTicketIDsUniqueAcrossBookings(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		booking, err := service.Booking.CreateBooking(ctx, customer.ID.String(),
			bookingReq(restaurant.ID.String(), time.Now().Add(time.Duration(i+1)*time.Hour)))
		require.NoError(t, err)
		assert.False(t, seen[booking.TicketID], "duplicate ticket %s", booking.TicketID)
		seen[booking.TicketID] = true
	}
}

func TestCancelBookingAuthorization(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	stranger := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	otherOwner := seedUser(store, entity.RoleOwner)
	admin := seedUser(store, entity.RoleAdmin)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	created, err := service.Booking.CreateBooking(ctx, customer.ID.String(),
		bookingReq(restaurant.ID.String(), time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	bookingID := created.BookingID

	// Another customer may not cancel
	err = service.Booking.CancelBooking(ctx, bookingID, stranger.ID.String(), entity.RoleCustomer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")

	// Neither may an owner of a different restaurant
	err = service.Booking.CancelBooking(ctx, bookingID, otherOwner.ID.String(), entity.RoleOwner)
	require.Error(t, err)

	// The restaurant's owner may
	err = service.Booking.CancelBooking(ctx, bookingID, owner.ID.String(), entity.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, store.bookings[mustParseUUID(t, bookingID)].Status)

	// Cancelling again is a no-op, for the customer and for an admin
	require.NoError(t, service.Booking.CancelBooking(ctx, bookingID, customer.ID.String(), entity.RoleCustomer))
	require.NoError(t, service.Booking.CancelBooking(ctx, bookingID, admin.ID.String(), entity.RoleAdmin))
}

func TestListForCustomerJoinsRestaurant(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	early := time.Now().Add(2 * time.Hour)
	late := time.Now().Add(48 * time.Hour)
	_, err := service.Booking.CreateBooking(ctx, customer.ID.String(), bookingReq(restaurant.ID.String(), early))
	require.NoError(t, err)
	_, err = service.Booking.CreateBooking(ctx, customer.ID.String(), bookingReq(restaurant.ID.String(), late))
	require.NoError(t, err)

	bookings, err := service.Booking.ListForCustomer(ctx, customer.ID.String())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// Newest booking time first, joined with the restaurant name
	assert.True(t, bookings[0].BookingTime.After(bookings[1].BookingTime))
	assert.Equal(t, restaurant.Name, bookings[0].RestaurantName)
	assert.Equal(t, entity.DisplayStatusUpcoming, bookings[0].DisplayStatus)
}

func TestListForOwnerScopedToOwnedRestaurants(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	otherOwner := seedUser(store, entity.RoleOwner)
	mine := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	theirs := seedRestaurant(store, otherOwner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	_, err := service.Booking.CreateBooking(ctx, customer.ID.String(), bookingReq(mine.ID.String(), time.Now().Add(time.Hour)))
	require.NoError(t, err)
	_, err = service.Booking.CreateBooking(ctx, customer.ID.String(), bookingReq(theirs.ID.String(), time.Now().Add(time.Hour)))
	require.NoError(t, err)

	bookings, err := service.Booking.ListForOwner(ctx, owner.ID.String())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, mine.Name, bookings[0].RestaurantName)
	assert.Equal(t, customer.Name, bookings[0].CustomerName)
}

func TestListAllPaginates(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := service.Booking.CreateBooking(ctx, customer.ID.String(),
			bookingReq(restaurant.ID.String(), time.Now().Add(time.Duration(i+1)*time.Hour)))
		require.NoError(t, err)
	}

	page, err := service.Booking.ListAll(ctx, &request.PaginatedRequest{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func mustParseUUID(t *testing.T, value string) uuid.UUID {
	t.Helper()
	parsed, err := uuid.Parse(value)
	require.NoError(t, err)
	return parsed
}
