package repository

import (
	"context"
	"fmt"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByTicketID(ctx context.Context, ticketID string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookingDetail, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, restaurant_id, booking_time, num_guests,
		                      status, ticket_id, qr_code_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.RestaurantID,
		booking.BookingTime,
		booking.NumGuests,
		booking.Status,
		booking.TicketID,
		booking.QRCodeData,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("ticket_id", booking.TicketID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.TicketID, err)
	}

	return nil
}

func (br *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, restaurant_id, booking_time, num_guests,
		       status, ticket_id, qr_code_data, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := br.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RestaurantID,
		&booking.BookingTime,
		&booking.NumGuests,
		&booking.Status,
		&booking.TicketID,
		&booking.QRCodeData,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (br *bookingRepository) FindByTicketID(ctx context.Context, ticketID string) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, restaurant_id, booking_time, num_guests,
		       status, ticket_id, qr_code_data, created_at, updated_at
		FROM bookings
		WHERE ticket_id = $1
	`

	var booking entity.Booking
	err := br.db.QueryRow(ctx, query, ticketID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RestaurantID,
		&booking.BookingTime,
		&booking.NumGuests,
		&booking.Status,
		&booking.TicketID,
		&booking.QRCodeData,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ticket ID",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
		)
		return nil, fmt.Errorf("find booking by ticket ID %s: %w", ticketID, err)
	}

	return &booking, nil
}

// FindByUserID returns a customer's bookings joined with restaurant name
// and a representative gallery image, newest first by booking time
func (br *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.restaurant_id, b.booking_time, b.num_guests,
		       b.status, b.ticket_id, b.qr_code_data, b.created_at, b.updated_at,
		       u.name AS customer_name,
		       r.name AS restaurant_name,
		       (SELECT i.image_url FROM restaurant_images i
		        WHERE i.restaurant_id = r.id
		        ORDER BY i.created_at LIMIT 1) AS restaurant_image
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN restaurants r ON b.restaurant_id = r.id
		WHERE b.user_id = $1
		ORDER BY b.booking_time DESC
	`

	rows, err := br.db.Query(ctx, query, userID)
	if err != nil {
		br.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

// FindByOwnerID returns bookings across all of an owner's restaurants
func (br *bookingRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.restaurant_id, b.booking_time, b.num_guests,
		       b.status, b.ticket_id, b.qr_code_data, b.created_at, b.updated_at,
		       u.name AS customer_name,
		       r.name AS restaurant_name,
		       NULL AS restaurant_image
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN restaurants r ON b.restaurant_id = r.id
		WHERE r.owner_id = $1
		ORDER BY b.booking_time DESC
	`

	rows, err := br.db.Query(ctx, query, ownerID)
	if err != nil {
		br.log.Error("Failed to find bookings by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find bookings by owner ID %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

func (br *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error) {
	query := `
		SELECT b.id, b.user_id, b.restaurant_id, b.booking_time, b.num_guests,
		       b.status, b.ticket_id, b.qr_code_data, b.created_at, b.updated_at,
		       u.name AS customer_name,
		       r.name AS restaurant_name,
		       NULL AS restaurant_image
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN restaurants r ON b.restaurant_id = r.id
		ORDER BY b.booking_time DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := br.db.Query(ctx, query, limit, offset)
	if err != nil {
		br.log.Error("Failed to find all bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all bookings limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

func (br *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := br.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		br.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count all bookings: %w", err)
	}

	return count, nil
}

func (br *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := br.db.Exec(ctx, query, id, status)
	if err != nil {
		br.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func collectBookingDetails(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	var bookings []*entity.BookingDetail
	for rows.Next() {
		var b entity.BookingDetail
		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.RestaurantID,
			&b.BookingTime,
			&b.NumGuests,
			&b.Status,
			&b.TicketID,
			&b.QRCodeData,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.CustomerName,
			&b.RestaurantName,
			&b.RestaurantImage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
