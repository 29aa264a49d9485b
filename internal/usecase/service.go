package usecase

import (
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Restaurant RestaurantService
	Booking    BookingService
	Review     ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		User:       NewUserService(repo.User, log),
		Restaurant: NewRestaurantService(repo, log),
		Booking:    NewBookingService(repo, log),
		Review:     NewReviewService(repo, log),
	}
}
