package usecase

import (
	"context"
	"testing"
	"time"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks the whole platform flow: accounts, listing approval, booking
// with ticket and QR, review, cancellation.
func TestPlatformLifecycle(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	// Owner and customer register, admin is seeded from config
	ownerAuth, err := service.Auth.Register(ctx, &request.RegisterRequest{
		Name: "Olive Owner", Email: "olive@example.com", Password: "secret123", Role: "owner",
	})
	require.NoError(t, err)
	customerAuth, err := service.Auth.Register(ctx, &request.RegisterRequest{
		Name: "Casey Customer", Email: "casey@example.com", Password: "secret123", Role: "customer",
	})
	require.NoError(t, err)
	require.NoError(t, service.Auth.EnsureAdmin(ctx))

	// Owner submits a listing; it starts pending
	submitted, err := service.Restaurant.Submit(ctx, ownerAuth.UserID, submitReq())
	require.NoError(t, err)

	queue, err := service.Restaurant.ListAllForAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, entity.RestaurantStatusPending, queue[0].Status)
	assert.Equal(t, "Olive Owner", queue[0].OwnerName)

	// Admin approves
	err = service.Restaurant.ReviewDecision(ctx, submitted.RestaurantID, &request.ReviewDecisionRequest{Status: "approved"})
	require.NoError(t, err)

	// Customer books a table at the now-visible restaurant
	booking, err := service.Booking.CreateBooking(ctx, customerAuth.UserID,
		bookingReq(submitted.RestaurantID, time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	// The stored row ties the ticket back to the booking parties
	stored := store.bookings[mustParseUUID(t, booking.BookingID)]
	require.NotNil(t, stored)
	assert.Equal(t, booking.TicketID, stored.TicketID)
	assert.Equal(t, customerAuth.UserID, stored.UserID.String())
	assert.Equal(t, submitted.RestaurantID, stored.RestaurantID.String())
	assert.NotEmpty(t, stored.QRCodeData)

	// Customer leaves a review
	_, err = service.Review.CreateReview(ctx, customerAuth.UserID, reviewReq(submitted.RestaurantID, 5))
	require.NoError(t, err)

	ownerReviews, err := service.Review.ListForOwner(ctx, ownerAuth.UserID)
	require.NoError(t, err)
	require.Len(t, ownerReviews, 1)
	assert.Equal(t, "Casey Customer", ownerReviews[0].UserName)

	// Customer cancels; the display status flips regardless of timing
	require.NoError(t, service.Booking.CancelBooking(ctx, booking.BookingID, customerAuth.UserID, entity.RoleCustomer))

	mine, err := service.Booking.ListForCustomer(ctx, customerAuth.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.DisplayStatusCancelled, mine[0].DisplayStatus)
}
