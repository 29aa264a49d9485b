package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"
	"restaurant-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantService interface {
	// Owner endpoints
	Submit(ctx context.Context, ownerID string, req *request.SubmitRestaurantRequest) (*response.SubmitRestaurantResponse, error)
	UpdateByOwner(ctx context.Context, ownerID, restaurantID string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error)
	ListByOwner(ctx context.Context, ownerID string) ([]response.RestaurantResponse, error)
	GetForOwner(ctx context.Context, restaurantID, ownerID string) (*response.RestaurantResponse, error)

	// Public endpoints
	ListApproved(ctx context.Context) ([]response.RestaurantSummary, error)
	GetApprovedByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)

	// Admin endpoints
	ListAllForAdmin(ctx context.Context) ([]response.RestaurantResponse, error)
	GetForReview(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error)
	ReviewDecision(ctx context.Context, restaurantID string, req *request.ReviewDecisionRequest) error
}

type restaurantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo: repo,
		log:  log.With(zap.String("service", "restaurant")),
	}
}

// NormalizeListValues coerces a list-valued form field into its canonical
// form. Accepts repeated form values, a JSON array string, or a
// comma-separated string.
func NormalizeListValues(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}

	if len(values) > 1 {
		return trimNonEmpty(values)
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return []string{}
	}

	// A string that looks like JSON is parsed and re-normalized
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return trimNonEmpty(parsed)
		}
		// fall through on parse failure
	}

	if strings.Contains(raw, ",") {
		return trimNonEmpty(strings.Split(raw, ","))
	}

	return []string{raw}
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (s *restaurantService) Submit(ctx context.Context, ownerID string, req *request.SubmitRestaurantRequest) (*response.SubmitRestaurantResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	// Required fields are checked in submission order so the first
	// missing one is named in the error
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"manager_name", req.ManagerName},
		{"restaurant_type", req.RestaurantType},
		{"description", req.Description},
		{"address", req.Address},
		{"city", req.City},
		{"state", req.State},
		{"zip_code", req.ZipCode},
		{"contact_number", req.ContactNumber},
		{"email", req.Email},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, fmt.Errorf("validation failed: missing required field: %s", field.name)
		}
	}
	if req.LogoImageURL == "" {
		return nil, fmt.Errorf("validation failed: logo image is required")
	}

	now := time.Now()
	restaurant := &entity.Restaurant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:            ownerUUID,
		Name:               req.Name,
		ManagerName:        req.ManagerName,
		RestaurantType:     req.RestaurantType,
		CuisineTypes:       NormalizeListValues(req.CuisineTypes),
		Description:        req.Description,
		LogoImageURL:       req.LogoImageURL,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		ContactNumber:      req.ContactNumber,
		Email:              req.Email,
		WebsiteURL:         req.WebsiteURL,
		OperatingHours:     req.OperatingHours,
		AvgDiningDuration:  req.AvgDiningDuration,
		TotalTables:        req.TotalTables,
		TableCapacityRange: req.TableCapacityRange,
		SpecialAreas:       NormalizeListValues(req.SpecialAreas),
		AmbienceType:       req.AmbienceType,
		Facilities:         NormalizeListValues(req.Facilities),
		Status:             entity.RestaurantStatusPending,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("owner_id", ownerID),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	if err := s.createGalleryEntries(ctx, restaurant.ID, req.GalleryImageURLs); err != nil {
		// The listing row exists; a failed gallery write is logged but
		// does not fail the submission
		s.log.Warn("Failed to store gallery entries",
			zap.Error(err),
			zap.String("restaurant_id", restaurant.ID.String()),
		)
	}

	s.log.Info("Restaurant submitted",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("owner_id", ownerID),
		zap.String("name", restaurant.Name),
	)

	return &response.SubmitRestaurantResponse{RestaurantID: restaurant.ID.String()}, nil
}

func (s *restaurantService) UpdateByOwner(ctx context.Context, ownerID, restaurantID string, req *request.UpdateRestaurantRequest) (*response.RestaurantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update restaurant validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	// Ownership check: the row must match both id and owner
	restaurant, err := s.repo.Restaurant.FindByIDAndOwner(ctx, restaurantUUID, ownerUUID)
	if err != nil {
		s.log.Error("Failed to check restaurant ownership",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
			zap.String("owner_id", ownerID),
		)
		return nil, fmt.Errorf("check restaurant ownership: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant not found or you are not the owner")
	}

	restaurant.Name = req.Name
	restaurant.ManagerName = req.ManagerName
	restaurant.RestaurantType = req.RestaurantType
	restaurant.CuisineTypes = NormalizeListValues(req.CuisineTypes)
	restaurant.Description = req.Description
	restaurant.Address = req.Address
	restaurant.City = req.City
	restaurant.State = req.State
	restaurant.ZipCode = req.ZipCode
	restaurant.ContactNumber = req.ContactNumber
	restaurant.Email = req.Email
	restaurant.WebsiteURL = req.WebsiteURL
	restaurant.OperatingHours = req.OperatingHours
	restaurant.AvgDiningDuration = req.AvgDiningDuration
	restaurant.TotalTables = req.TotalTables
	restaurant.TableCapacityRange = req.TableCapacityRange
	restaurant.SpecialAreas = NormalizeListValues(req.SpecialAreas)
	restaurant.AmbienceType = req.AmbienceType
	restaurant.Facilities = NormalizeListValues(req.Facilities)
	restaurant.UpdatedAt = time.Now()

	// Logo is replaced only when a new one was uploaded
	if req.LogoImageURL != "" {
		restaurant.LogoImageURL = req.LogoImageURL
	}

	// Status is untouched by owner updates
	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("update restaurant: %w", err)
	}

	// Gallery images are appended, never replaced
	if err := s.createGalleryEntries(ctx, restaurant.ID, req.GalleryImageURLs); err != nil {
		s.log.Warn("Failed to append gallery entries",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
	}

	gallery, err := s.galleryURLs(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Restaurant updated",
		zap.String("restaurant_id", restaurantID),
		zap.String("owner_id", ownerID),
	)

	resp := response.RestaurantToResponse(restaurant, gallery)
	return &resp, nil
}

func (s *restaurantService) ListByOwner(ctx context.Context, ownerID string) ([]response.RestaurantResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	restaurants, err := s.repo.Restaurant.FindByOwnerID(ctx, ownerUUID)
	if err != nil {
		s.log.Error("Failed to list restaurants by owner", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("list restaurants by owner: %w", err)
	}

	responses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		responses[i] = response.RestaurantToResponse(restaurant, nil)
	}
	return responses, nil
}

func (s *restaurantService) GetForOwner(ctx context.Context, restaurantID, ownerID string) (*response.RestaurantResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByIDAndOwner(ctx, restaurantUUID, ownerUUID)
	if err != nil {
		s.log.Error("Failed to get restaurant for owner",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
			zap.String("owner_id", ownerID),
		)
		return nil, fmt.Errorf("get restaurant for owner: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant not found or you are not the owner")
	}

	gallery, err := s.galleryURLs(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	resp := response.RestaurantToResponse(restaurant, gallery)
	return &resp, nil
}

func (s *restaurantService) ListApproved(ctx context.Context) ([]response.RestaurantSummary, error) {
	restaurants, err := s.repo.Restaurant.FindApproved(ctx)
	if err != nil {
		s.log.Error("Failed to list approved restaurants", zap.Error(err))
		return nil, fmt.Errorf("list approved restaurants: %w", err)
	}

	summaries := make([]response.RestaurantSummary, len(restaurants))
	for i, restaurant := range restaurants {
		summaries[i] = response.RestaurantToSummary(restaurant)
	}
	return summaries, nil
}

// GetApprovedByID hides pending and rejected listings from the public view
func (s *restaurantService) GetApprovedByID(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindApprovedByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to get approved restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, fmt.Errorf("get approved restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	gallery, err := s.galleryURLs(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	resp := response.RestaurantToResponse(restaurant, gallery)
	return &resp, nil
}

func (s *restaurantService) ListAllForAdmin(ctx context.Context) ([]response.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant.FindAllWithOwner(ctx)
	if err != nil {
		s.log.Error("Failed to list restaurants for admin", zap.Error(err))
		return nil, fmt.Errorf("list restaurants for admin: %w", err)
	}

	responses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		responses[i] = response.RestaurantWithOwnerToResponse(restaurant)
	}
	return responses, nil
}

// GetForReview returns a listing in any status for the admin queue
func (s *restaurantService) GetForReview(ctx context.Context, restaurantID string) (*response.RestaurantResponse, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to get restaurant for review", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, fmt.Errorf("get restaurant for review: %w", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("restaurant not found")
	}

	gallery, err := s.galleryURLs(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	resp := response.RestaurantToResponse(restaurant, gallery)
	return &resp, nil
}

func (s *restaurantService) ReviewDecision(ctx context.Context, restaurantID string, req *request.ReviewDecisionRequest) error {
	// An invalid decision value leaves the status untouched
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review decision validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to find restaurant for decision", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return fmt.Errorf("find restaurant for decision: %w", err)
	}
	if restaurant == nil {
		return fmt.Errorf("restaurant not found")
	}

	status := entity.RestaurantStatus(req.Status)
	if err := s.repo.Restaurant.UpdateStatus(ctx, restaurantUUID, status); err != nil {
		s.log.Error("Failed to update restaurant status",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update restaurant status: %w", err)
	}

	s.log.Info("Restaurant status updated",
		zap.String("restaurant_id", restaurantID),
		zap.String("status", req.Status),
	)
	return nil
}

// ==================== HELPER METHODS ====================

func (s *restaurantService) createGalleryEntries(ctx context.Context, restaurantID uuid.UUID, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	now := time.Now()
	images := make([]*entity.RestaurantImage, len(urls))
	for i, url := range urls {
		images[i] = &entity.RestaurantImage{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			RestaurantID: restaurantID,
			ImageURL:     url,
		}
	}

	return s.repo.RestaurantImage.CreateBatch(ctx, images)
}

func (s *restaurantService) galleryURLs(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	images, err := s.repo.RestaurantImage.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		s.log.Error("Failed to load gallery", zap.Error(err), zap.String("restaurant_id", restaurantID.String()))
		return nil, fmt.Errorf("load gallery: %w", err)
	}

	urls := make([]string, len(images))
	for i, image := range images {
		urls[i] = image.ImageURL
	}
	return urls, nil
}
