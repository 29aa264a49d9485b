package wire

import (
	"restaurant-booking/internal/adaptor"
	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(config.JWT, repo.User, log)

	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/reviews/{restaurantId}", reviewHandler.ListForRestaurant)

	// ==================== CUSTOMER ROUTES ====================
	r.With(auth, middleware.RequireRole(log, entity.RoleCustomer)).
		Post("/api/reviews", reviewHandler.Create)

	// ==================== OWNER ROUTES ====================
	r.With(auth, middleware.RequireRole(log, entity.RoleOwner)).
		Get("/api/owner/reviews", reviewHandler.ListForOwner)
}
