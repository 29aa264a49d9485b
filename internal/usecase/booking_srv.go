package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"
	"restaurant-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxTicketAttempts bounds the regeneration loop on ticket collisions
const maxTicketAttempts = 5

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, callerID string, callerRole entity.UserRole) error
	ListForCustomer(ctx context.Context, userID string) ([]response.BookingResponse, error)
	ListForOwner(ctx context.Context, ownerID string) ([]response.BookingResponse, error)

	// Admin endpoint
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// DeriveDisplayStatus maps a stored booking to its presentation status.
// Cancellation wins over timing; otherwise the booking is upcoming until
// its start time passes. The result is computed per read and never stored.
func DeriveDisplayStatus(status entity.BookingStatus, bookingTime, now time.Time) entity.DisplayStatus {
	if status == entity.BookingStatusCancelled {
		return entity.DisplayStatusCancelled
	}
	if bookingTime.After(now) {
		return entity.DisplayStatusUpcoming
	}
	return entity.DisplayStatusCompleted
}

// qrPayload is the JSON embedded in the ticket QR code
type qrPayload struct {
	BookingID    string `json:"bookingId"`
	TicketID     string `json:"ticketId"`
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	// Bookings are only taken against approved listings
	restaurant, err := s.repo.Restaurant.FindApprovedByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to check restaurant for booking", zap.Error(err), zap.String("restaurant_id", req.RestaurantID))
		return nil, fmt.Errorf("check restaurant for booking: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	ticketID, err := s.uniqueTicketID(ctx)
	if err != nil {
		return nil, err
	}

	bookingID := uuid.New()
	payload, err := json.Marshal(qrPayload{
		BookingID:    bookingID.String(),
		TicketID:     ticketID,
		UserID:       userID,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal QR payload: %w", err)
	}

	qrCode, err := utils.GenerateQRCode(string(payload))
	if err != nil {
		s.log.Error("Failed to generate QR code", zap.Error(err), zap.String("ticket_id", ticketID))
		return nil, fmt.Errorf("generate QR code: %w", err)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        bookingID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userUUID,
		RestaurantID: restaurantUUID,
		BookingTime:  req.BookingTime,
		NumGuests:    req.NumGuests,
		Status:       entity.BookingStatusConfirmed,
		TicketID:     ticketID,
		QRCodeData:   qrCode,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", bookingID.String()),
		zap.String("ticket_id", ticketID),
		zap.String("restaurant_id", req.RestaurantID),
	)

	return &response.CreateBookingResponse{
		BookingID: bookingID.String(),
		TicketID:  ticketID,
		QRCode:    qrCode,
	}, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, callerID string, callerRole entity.UserRole) error {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}
	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return fmt.Errorf("invalid caller ID format %s: %w", callerID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		s.log.Error("Failed to find booking for cancellation", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("find booking for cancellation: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}

	allowed, err := s.canCancel(ctx, booking, callerUUID, callerRole)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("you are not allowed to cancel this booking")
	}

	// Cancelling twice is a no-op
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingUUID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("cancelled_by", callerID),
		zap.String("caller_role", string(callerRole)),
	)
	return nil
}

func (s *bookingService) ListForCustomer(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	details, err := s.repo.Booking.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to list bookings for customer", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list bookings for customer: %w", err)
	}

	return s.toResponses(details), nil
}

func (s *bookingService) ListForOwner(ctx context.Context, ownerID string) ([]response.BookingResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	details, err := s.repo.Booking.FindByOwnerID(ctx, ownerUUID)
	if err != nil {
		s.log.Error("Failed to list bookings for owner", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("list bookings for owner: %w", err)
	}

	return s.toResponses(details), nil
}

func (s *bookingService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	details, err := s.repo.Booking.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list all bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list all bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return &response.PaginatedResponse[response.BookingResponse]{
		Items:      s.toResponses(details),
		Page:       req.Page,
		PerPage:    limit,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, limit),
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) uniqueTicketID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxTicketAttempts; attempt++ {
		ticketID, err := utils.GenerateTicketID()
		if err != nil {
			return "", fmt.Errorf("generate ticket ID: %w", err)
		}

		existing, err := s.repo.Booking.FindByTicketID(ctx, ticketID)
		if err != nil {
			s.log.Error("Failed to check ticket uniqueness", zap.Error(err), zap.String("ticket_id", ticketID))
			return "", fmt.Errorf("check ticket uniqueness: %w", err)
		}
		if existing == nil {
			return ticketID, nil
		}

		s.log.Warn("Ticket ID collision, regenerating", zap.String("ticket_id", ticketID))
	}
	return "", fmt.Errorf("generate ticket ID: exhausted %d attempts", maxTicketAttempts)
}

func (s *bookingService) canCancel(ctx context.Context, booking *entity.Booking, callerUUID uuid.UUID, callerRole entity.UserRole) (bool, error) {
	if callerRole == entity.RoleAdmin {
		return true, nil
	}
	if booking.UserID == callerUUID {
		return true, nil
	}
	if callerRole == entity.RoleOwner {
		restaurant, err := s.repo.Restaurant.FindByIDAndOwner(ctx, booking.RestaurantID, callerUUID)
		if err != nil {
			s.log.Error("Failed to check booking ownership",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return false, fmt.Errorf("check booking ownership: %w", err)
		}
		return restaurant != nil, nil
	}
	return false, nil
}

func (s *bookingService) toResponses(details []*entity.BookingDetail) []response.BookingResponse {
	now := time.Now()
	responses := make([]response.BookingResponse, len(details))
	for i, detail := range details {
		displayStatus := DeriveDisplayStatus(detail.Status, detail.BookingTime, now)
		responses[i] = response.BookingToResponse(detail, displayStatus)
	}
	return responses
}
