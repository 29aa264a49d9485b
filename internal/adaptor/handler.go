package adaptor

import (
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/storage"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Restaurant *RestaurantHandler
	Booking    *BookingHandler
	Review     *ReviewHandler
}

func NewHandler(service *usecase.Service, blobs storage.BlobStore, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Restaurant: NewRestaurantHandler(service.Restaurant, blobs, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Review:     NewReviewHandler(service.Review, log),
	}
}
