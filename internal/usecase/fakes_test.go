package usecase

import (
	"context"
	"sort"
	"sync"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memStore backs the fake repositories so cross-aggregate joins work
// the same way the SQL ones do.
type memStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*entity.User
	restaurants map[uuid.UUID]*entity.Restaurant
	images      map[uuid.UUID][]*entity.RestaurantImage
	bookings    map[uuid.UUID]*entity.Booking
	reviews     []*entity.Review
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uuid.UUID]*entity.User),
		restaurants: make(map[uuid.UUID]*entity.Restaurant),
		images:      make(map[uuid.UUID][]*entity.RestaurantImage),
		bookings:    make(map[uuid.UUID]*entity.Booking),
	}
}

func newTestRepository() (*repository.Repository, *memStore) {
	store := newMemStore()
	return &repository.Repository{
		User:            &fakeUserRepo{store},
		Restaurant:      &fakeRestaurantRepo{store},
		RestaurantImage: &fakeRestaurantImageRepo{store},
		Booking:         &fakeBookingRepo{store},
		Review:          &fakeReviewRepo{store},
	}, store
}

func newTestConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
		Admin: utils.AdminConfig{
			Email:    "admin@example.com",
			Password: "admin-password",
			Name:     "Administrator",
		},
	}
}

func newTestService() (*Service, *memStore) {
	repo, store := newTestRepository()
	return NewService(repo, newTestConfig(), zap.NewNop()), store
}

// ==================== USER ====================

type fakeUserRepo struct{ store *memStore }

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *user
	f.store.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user, ok := f.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, user := range f.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	all := make([]*entity.User, 0, len(f.store.users))
	for _, user := range f.store.users {
		copied := *user
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.users)), nil
}

// ==================== RESTAURANT ====================

type fakeRestaurantRepo struct{ store *memStore }

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *restaurant
	f.store.restaurants[restaurant.ID] = &copied
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	restaurant, ok := f.store.restaurants[id]
	if !ok {
		return nil, nil
	}
	copied := *restaurant
	return &copied, nil
}

func (f *fakeRestaurantRepo) FindApprovedByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	restaurant, ok := f.store.restaurants[id]
	if !ok || restaurant.Status != entity.RestaurantStatusApproved {
		return nil, nil
	}
	copied := *restaurant
	return &copied, nil
}

func (f *fakeRestaurantRepo) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.Restaurant, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	restaurant, ok := f.store.restaurants[id]
	if !ok || restaurant.OwnerID != ownerID {
		return nil, nil
	}
	copied := *restaurant
	return &copied, nil
}

func (f *fakeRestaurantRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Restaurant
	for _, restaurant := range f.store.restaurants {
		if restaurant.OwnerID == ownerID {
			copied := *restaurant
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) FindApproved(_ context.Context) ([]*entity.Restaurant, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Restaurant
	for _, restaurant := range f.store.restaurants {
		if restaurant.Status == entity.RestaurantStatusApproved {
			copied := *restaurant
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) FindAllWithOwner(_ context.Context) ([]*entity.RestaurantWithOwner, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.RestaurantWithOwner
	for _, restaurant := range f.store.restaurants {
		detail := &entity.RestaurantWithOwner{Restaurant: *restaurant}
		if owner, ok := f.store.users[restaurant.OwnerID]; ok {
			detail.OwnerName = owner.Name
		}
		out = append(out, detail)
	}
	return out, nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	stored, ok := f.store.restaurants[restaurant.ID]
	if !ok {
		return nil
	}
	// Status is owned by the decision path, same as the SQL update
	status := stored.Status
	copied := *restaurant
	copied.Status = status
	f.store.restaurants[restaurant.ID] = &copied
	return nil
}

func (f *fakeRestaurantRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RestaurantStatus) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if restaurant, ok := f.store.restaurants[id]; ok {
		restaurant.Status = status
	}
	return nil
}

// ==================== RESTAURANT IMAGE ====================

type fakeRestaurantImageRepo struct{ store *memStore }

func (f *fakeRestaurantImageRepo) CreateBatch(_ context.Context, images []*entity.RestaurantImage) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, image := range images {
		copied := *image
		f.store.images[image.RestaurantID] = append(f.store.images[image.RestaurantID], &copied)
	}
	return nil
}

func (f *fakeRestaurantImageRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantImage, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	stored := f.store.images[restaurantID]
	out := make([]*entity.RestaurantImage, len(stored))
	for i, image := range stored {
		copied := *image
		out[i] = &copied
	}
	return out, nil
}

// ==================== BOOKING ====================

type fakeBookingRepo struct{ store *memStore }

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *booking
	f.store.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	booking, ok := f.store.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByTicketID(_ context.Context, ticketID string) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, booking := range f.store.bookings {
		if booking.TicketID == ticketID {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.BookingDetail
	for _, booking := range f.store.bookings {
		if booking.UserID == userID {
			out = append(out, f.detail(booking))
		}
	}
	sortBookingDetails(out)
	return out, nil
}

func (f *fakeBookingRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*entity.BookingDetail, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.BookingDetail
	for _, booking := range f.store.bookings {
		restaurant, ok := f.store.restaurants[booking.RestaurantID]
		if ok && restaurant.OwnerID == ownerID {
			out = append(out, f.detail(booking))
		}
	}
	sortBookingDetails(out)
	return out, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.BookingDetail, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	all := make([]*entity.BookingDetail, 0, len(f.store.bookings))
	for _, booking := range f.store.bookings {
		all = append(all, f.detail(booking))
	}
	sortBookingDetails(all)
	return paginate(all, limit, offset), nil
}

func (f *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.bookings)), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if booking, ok := f.store.bookings[id]; ok {
		booking.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) detail(booking *entity.Booking) *entity.BookingDetail {
	detail := &entity.BookingDetail{Booking: *booking}
	if user, ok := f.store.users[booking.UserID]; ok {
		detail.CustomerName = user.Name
	}
	if restaurant, ok := f.store.restaurants[booking.RestaurantID]; ok {
		detail.RestaurantName = restaurant.Name
	}
	if images := f.store.images[booking.RestaurantID]; len(images) > 0 {
		detail.RestaurantImage = &images[0].ImageURL
	}
	return detail
}

func sortBookingDetails(details []*entity.BookingDetail) {
	sort.Slice(details, func(i, j int) bool {
		return details[i].BookingTime.After(details[j].BookingTime)
	})
}

// ==================== REVIEW ====================

type fakeReviewRepo struct{ store *memStore }

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *review
	f.store.reviews = append(f.store.reviews, &copied)
	return nil
}

func (f *fakeReviewRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.ReviewDetail, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.ReviewDetail
	for _, review := range f.store.reviews {
		if review.RestaurantID == restaurantID {
			out = append(out, f.detail(review))
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*entity.ReviewDetail, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.ReviewDetail
	for _, review := range f.store.reviews {
		restaurant, ok := f.store.restaurants[review.RestaurantID]
		if ok && restaurant.OwnerID == ownerID {
			out = append(out, f.detail(review))
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) detail(review *entity.Review) *entity.ReviewDetail {
	detail := &entity.ReviewDetail{Review: *review}
	if user, ok := f.store.users[review.UserID]; ok {
		detail.UserName = user.Name
	}
	if restaurant, ok := f.store.restaurants[review.RestaurantID]; ok {
		detail.RestaurantName = restaurant.Name
	}
	return detail
}

// ==================== SEED HELPERS ====================

func seedUser(store *memStore, role entity.UserRole) *entity.User {
	id := uuid.New()
	user := &entity.User{
		Base:         entity.Base{ID: id},
		Name:         "User " + id.String()[:8],
		Email:        id.String()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	store.users[id] = user
	return user
}

func seedRestaurant(store *memStore, ownerID uuid.UUID, status entity.RestaurantStatus) *entity.Restaurant {
	id := uuid.New()
	restaurant := &entity.Restaurant{
		Base:           entity.Base{ID: id},
		OwnerID:        ownerID,
		Name:           "Restaurant " + id.String()[:8],
		ManagerName:    "Manager",
		RestaurantType: "casual",
		Description:    "A place to eat",
		LogoImageURL:   "uploads/logos/logo.png",
		Address:        "1 Main St",
		City:           "Springfield",
		State:          "IL",
		ZipCode:        "62701",
		ContactNumber:  "5551234567",
		Email:          "contact@example.com",
		Status:         status,
	}
	store.restaurants[id] = restaurant
	return restaurant
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
