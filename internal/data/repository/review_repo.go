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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.ReviewDetail, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReviewDetail, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (rr *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, restaurant_id, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := rr.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.RestaurantID,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("restaurant_id", review.RestaurantID.String()),
		)
		return fmt.Errorf("create review for restaurant %s: %w", review.RestaurantID.String(), err)
	}

	return nil
}

// FindByRestaurantID returns reviews joined with the reviewer name, newest first
func (rr *reviewRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT rev.id, rev.user_id, rev.restaurant_id, rev.rating, rev.review_text, rev.created_at,
		       u.name AS user_name,
		       r.name AS restaurant_name
		FROM reviews rev
		JOIN users u ON rev.user_id = u.id
		JOIN restaurants r ON rev.restaurant_id = r.id
		WHERE rev.restaurant_id = $1
		ORDER BY rev.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, restaurantID)
	if err != nil {
		rr.log.Error("Failed to find reviews by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find reviews by restaurant ID %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	return collectReviewDetails(rows)
}

// FindByOwnerID returns reviews across all of an owner's restaurants
func (rr *reviewRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT rev.id, rev.user_id, rev.restaurant_id, rev.rating, rev.review_text, rev.created_at,
		       u.name AS user_name,
		       r.name AS restaurant_name
		FROM reviews rev
		JOIN users u ON rev.user_id = u.id
		JOIN restaurants r ON rev.restaurant_id = r.id
		WHERE r.owner_id = $1
		ORDER BY rev.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, ownerID)
	if err != nil {
		rr.log.Error("Failed to find reviews by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find reviews by owner ID %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return collectReviewDetails(rows)
}

func collectReviewDetails(rows pgx.Rows) ([]*entity.ReviewDetail, error) {
	var reviews []*entity.ReviewDetail
	for rows.Next() {
		var r entity.ReviewDetail
		err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.RestaurantID,
			&r.Rating,
			&r.ReviewText,
			&r.CreatedAt,
			&r.UserName,
			&r.RestaurantName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
