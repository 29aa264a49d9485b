package usecase

import (
	"context"
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

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListForRestaurant(ctx context.Context, restaurantID string) ([]response.ReviewResponse, error)
	ListForOwner(ctx context.Context, ownerID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
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

	// Reviews attach only to approved listings
	restaurant, err := s.repo.Restaurant.FindApprovedByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to check restaurant for review", zap.Error(err), zap.String("restaurant_id", req.RestaurantID))
		return nil, fmt.Errorf("check restaurant for review: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:       userUUID,
		RestaurantID: restaurantUUID,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("restaurant_id", req.RestaurantID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(&entity.ReviewDetail{
		Review:         *review,
		RestaurantName: restaurant.Name,
	})
	return &resp, nil
}

func (s *reviewService) ListForRestaurant(ctx context.Context, restaurantID string) ([]response.ReviewResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	details, err := s.repo.Review.FindByRestaurantID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to list reviews for restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, fmt.Errorf("list reviews for restaurant: %w", err)
	}

	return toReviewResponses(details), nil
}

func (s *reviewService) ListForOwner(ctx context.Context, ownerID string) ([]response.ReviewResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	details, err := s.repo.Review.FindByOwnerID(ctx, ownerUUID)
	if err != nil {
		s.log.Error("Failed to list reviews for owner", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("list reviews for owner: %w", err)
	}

	return toReviewResponses(details), nil
}

func toReviewResponses(details []*entity.ReviewDetail) []response.ReviewResponse {
	responses := make([]response.ReviewResponse, len(details))
	for i, detail := range details {
		responses[i] = response.ReviewToResponse(detail)
	}
	return responses
}
