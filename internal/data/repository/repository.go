package repository

import (
	"restaurant-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User            UserRepository
	Restaurant      RestaurantRepository
	RestaurantImage RestaurantImageRepository
	Booking         BookingRepository
	Review          ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:            NewUserRepository(db, log),
		Restaurant:      NewRestaurantRepository(db, log),
		RestaurantImage: NewRestaurantImageRepository(db, log),
		Booking:         NewBookingRepository(db, log),
		Review:          NewReviewRepository(db, log),
	}
}
