package usecase

import (
	"context"
	"testing"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitReq() *request.SubmitRestaurantRequest {
	return &request.SubmitRestaurantRequest{
		Name:             "Trattoria",
		ManagerName:      "Gina",
		RestaurantType:   "fine dining",
		CuisineTypes:     []string{"italian"},
		Description:      "Pasta and wine",
		Address:          "2 Side St",
		City:             "Springfield",
		State:            "IL",
		ZipCode:          "62701",
		ContactNumber:    "5559876543",
		Email:            "trattoria@example.com",
		LogoImageURL:     "uploads/logos/trattoria.png",
		GalleryImageURLs: []string{"uploads/gallery/a.png", "uploads/gallery/b.png"},
	}
}

func TestSubmitNamesFirstMissingField(t *testing.T) {
	service, store := newTestService()
	owner := seedUser(store, entity.RoleOwner)

	req := submitReq()
	req.ManagerName = ""
	req.City = ""

	_, err := service.Restaurant.Submit(context.Background(), owner.ID.String(), req)
	require.Error(t, err)
	// manager_name comes before city in the form, so it is the one reported
	assert.Contains(t, err.Error(), "missing required field: manager_name")
}

func TestSubmitRequiresLogo(t *testing.T) {
	service, store := newTestService()
	owner := seedUser(store, entity.RoleOwner)

	req := submitReq()
	req.LogoImageURL = ""

	_, err := service.Restaurant.Submit(context.Background(), owner.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logo image is required")
}

func TestSubmittedRestaurantHiddenUntilApproved(t *testing.T) {
	service, store := newTestService()
	owner := seedUser(store, entity.RoleOwner)
	ctx := context.Background()

	created, err := service.Restaurant.Submit(ctx, owner.ID.String(), submitReq())
	require.NoError(t, err)

	// Pending listings are invisible to the public surface
	listed, err := service.Restaurant.ListApproved(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = service.Restaurant.GetApprovedByID(ctx, created.RestaurantID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// The owner still sees their own submission
	owned, err := service.Restaurant.ListByOwner(ctx, owner.ID.String())
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, entity.RestaurantStatusPending, owned[0].Status)

	// Approval flips public visibility
	err = service.Restaurant.ReviewDecision(ctx, created.RestaurantID, &request.ReviewDecisionRequest{Status: "approved"})
	require.NoError(t, err)

	listed, err = service.Restaurant.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	public, err := service.Restaurant.GetApprovedByID(ctx, created.RestaurantID)
	require.NoError(t, err)
	assert.Equal(t, "Trattoria", public.Name)
	assert.Len(t, public.Gallery, 2)
}

func TestReviewDecisionRejectsUnknownStatus(t *testing.T) {
	service, store := newTestService()
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusPending)
	ctx := context.Background()

	err := service.Restaurant.ReviewDecision(ctx, restaurant.ID.String(), &request.ReviewDecisionRequest{Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// The stored status is untouched
	assert.Equal(t, entity.RestaurantStatusPending, store.restaurants[restaurant.ID].Status)
}

func TestUpdateByOwnerRejectsOtherOwner(t *testing.T) {
	service, store := newTestService()
	owner := seedUser(store, entity.RoleOwner)
	intruder := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)

	req := &request.UpdateRestaurantRequest{Name: "Hijacked", Description: "nope"}
	_, err := service.Restaurant.UpdateByOwner(context.Background(), intruder.ID.String(), restaurant.ID.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NotEqual(t, "Hijacked", store.restaurants[restaurant.ID].Name)
}

func TestUpdateByOwnerKeepsLogoAndStatus(t *testing.T) {
	service, store := newTestService()
	owner := seedUser(store, entity.RoleOwner)
	restaurant := seedRestaurant(store, owner.ID, entity.RestaurantStatusApproved)
	ctx := context.Background()

	req := &request.UpdateRestaurantRequest{
		Name:        "Renamed",
		Description: "new description",
	}
	updated, err := service.Restaurant.UpdateByOwner(ctx, owner.ID.String(), restaurant.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	// Absent logo keeps the existing one; status survives owner edits
	assert.Equal(t, restaurant.LogoImageURL, updated.LogoImageURL)
	assert.Equal(t, entity.RestaurantStatusApproved, store.restaurants[restaurant.ID].Status)
}

func TestNormalizeListValues(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		expect []string
	}{
		{"nil", nil, []string{}},
		{"empty string", []string{""}, []string{}},
		{"repeated values", []string{"a", " b ", ""}, []string{"a", "b"}},
		{"json array", []string{`["italian","thai"]`}, []string{"italian", "thai"}},
		{"comma separated", []string{"wifi, parking ,ac"}, []string{"wifi", "parking", "ac"}},
		{"single value", []string{"rooftop"}, []string{"rooftop"}},
		{"malformed json treated as comma list", []string{`[a,b]`}, []string{"[a", "b]"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, NormalizeListValues(tc.input))
		})
	}
}
