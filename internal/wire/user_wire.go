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

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(config.JWT, repo.User, log)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Get("/api/users/me", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, middleware.RequireRole(log, entity.RoleAdmin)).
		Get("/api/admin/users", userHandler.GetAllUsers)
}
