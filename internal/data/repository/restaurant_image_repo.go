package repository

import (
	"context"
	"fmt"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantImageRepository interface {
	CreateBatch(ctx context.Context, images []*entity.RestaurantImage) error
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantImage, error)
}

type restaurantImageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantImageRepository(db database.PgxIface, log *zap.Logger) RestaurantImageRepository {
	return &restaurantImageRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant_image")),
	}
}

func (ir *restaurantImageRepository) CreateBatch(ctx context.Context, images []*entity.RestaurantImage) error {
	if len(images) == 0 {
		return nil
	}

	query := `
		INSERT INTO restaurant_images (id, restaurant_id, image_url, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, image := range images {
		_, err := ir.db.Exec(ctx, query,
			image.ID,
			image.RestaurantID,
			image.ImageURL,
			image.CreatedAt,
		)
		if err != nil {
			ir.log.Error("Failed to create restaurant image",
				zap.Error(err),
				zap.String("restaurant_id", image.RestaurantID.String()),
				zap.String("image_url", image.ImageURL),
			)
			return fmt.Errorf("create restaurant image for %s: %w", image.RestaurantID.String(), err)
		}
	}

	return nil
}

func (ir *restaurantImageRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantImage, error) {
	query := `
		SELECT id, restaurant_id, image_url, created_at
		FROM restaurant_images
		WHERE restaurant_id = $1
		ORDER BY created_at
	`

	rows, err := ir.db.Query(ctx, query, restaurantID)
	if err != nil {
		ir.log.Error("Failed to find restaurant images",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find images for restaurant %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	var images []*entity.RestaurantImage
	for rows.Next() {
		var image entity.RestaurantImage
		err := rows.Scan(
			&image.ID,
			&image.RestaurantID,
			&image.ImageURL,
			&image.CreatedAt,
		)
		if err != nil {
			ir.log.Error("Failed to scan restaurant image row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant image row: %w", err)
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		ir.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate restaurant image rows: %w", err)
	}

	return images, nil
}
