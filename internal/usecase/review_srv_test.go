package usecase

import (
	"context"
	"testing"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewReq(restaurantID string, rating int) *request.CreateReviewRequest {
	text := "great food"
	return &request.CreateReviewRequest{
		RestaurantID: restaurantID,
		Rating:       rating,
		ReviewText:   &text,
	}
}

func TestCreateReviewRequiresApprovedRestaurant(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	pending := seedRestaurant(store, owner.ID, entity.RestaurantStatusPending)

	_, err := service.Review.CreateReview(context.Background(), customer.ID.String(),
		reviewReq(pending.ID.String(), 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateReviewRatingBounds(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Review.CreateReview(ctx, customer.ID.String(), reviewReq(restaurant.ID.String(), rating))
		require.Error(t, err, "rating %d", rating)
		assert.Contains(t, err.Error(), "validation failed")
	}

	review, err := service.Review.CreateReview(ctx, customer.ID.String(), reviewReq(restaurant.ID.String(), 5))
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestDuplicateReviewsAllowed(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	_, err := service.Review.CreateReview(ctx, customer.ID.String(), reviewReq(restaurant.ID.String(), 3))
	require.NoError(t, err)
	_, err = service.Review.CreateReview(ctx, customer.ID.String(), reviewReq(restaurant.ID.String(), 5))
	require.NoError(t, err)

	reviews, err := service.Review.ListForRestaurant(ctx, restaurant.ID.String())
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestListForOwnerScopedToOwnedReviews(t *testing.T) {
	service, store := newTestService()
	customer := seedUser(store, entity.RoleCustomer)
	owner := seedUser(store, entity.RoleOwner)
	otherOwner := seedUser(store, entity.RoleOwner)
	mine := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	theirs := seedRestaurant(store, otherOwner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	_, err := service.Review.CreateReview(ctx, customer.ID.String(), reviewReq(mine.ID.String(), 4))
	require.NoError(t, err)
	_, err = service.Review.CreateReview(ctx, customer.ID.String(), reviewReq(theirs.ID.String(), 2))
	require.NoError(t, err)

	reviews, err := service.Review.ListForOwner(ctx, owner.ID.String())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, mine.Name, reviews[0].RestaurantName)
	assert.Equal(t, customer.Name, reviews[0].UserName)
}
