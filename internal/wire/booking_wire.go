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

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(config.JWT, repo.User, log)

	// ==================== CUSTOMER ROUTES ====================
	customerOnly := middleware.RequireRole(log, entity.RoleCustomer)
	r.With(auth, customerOnly).Post("/api/bookings", bookingHandler.Create)
	r.With(auth, customerOnly).Get("/api/bookings/my-bookings", bookingHandler.ListMine)

	// Cancellation is open to any authenticated caller; the service
	// decides whether this caller may cancel this booking
	r.With(auth).Put("/api/bookings/{id}/cancel", bookingHandler.Cancel)

	// ==================== OWNER ROUTES ====================
	r.With(auth, middleware.RequireRole(log, entity.RoleOwner)).
		Get("/api/owner/bookings", bookingHandler.ListForOwner)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, middleware.RequireRole(log, entity.RoleAdmin)).
		Get("/api/admin/bookings", bookingHandler.ListAll)
}
