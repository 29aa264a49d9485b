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

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(config.JWT, repo.User, log)
	ownerOnly := middleware.RequireRole(log, entity.RoleOwner)
	adminOnly := middleware.RequireRole(log, entity.RoleAdmin)

	// ==================== PUBLIC ROUTES ====================
	// Static segments are registered alongside the {id} route; chi
	// matches them before the parameter
	r.Get("/api/restaurants", restaurantHandler.ListApproved)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetByID)

	// ==================== OWNER ROUTES ====================
	r.With(auth, ownerOnly).Post("/api/restaurants", restaurantHandler.Submit)
	r.With(auth, ownerOnly).Put("/api/restaurants/{id}", restaurantHandler.Update)
	r.With(auth, ownerOnly).Get("/api/restaurants/my", restaurantHandler.ListOwned)
	r.With(auth, ownerOnly).Get("/api/restaurants/owner/{id}", restaurantHandler.GetOwned)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, adminOnly).Get("/api/admin/restaurants", restaurantHandler.ListAll)
	r.With(auth, adminOnly).Get("/api/admin/restaurants/{id}", restaurantHandler.GetForReview)
	r.With(auth, adminOnly).Put("/api/admin/restaurants/{id}/status", restaurantHandler.UpdateStatus)
}
