package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/storage"
	"restaurant-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing
const maxMultipartMemory = 32 << 20

// maxGalleryFiles caps gallery uploads per request
const maxGalleryFiles = 10

type RestaurantHandler struct {
	service usecase.RestaurantService
	blobs   storage.BlobStore
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, blobs storage.BlobStore, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		blobs:   blobs,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// ListApproved handles GET /api/restaurants (public)
func (h *RestaurantHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListApproved(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetByID handles GET /api/restaurants/{id} (public)
func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	restaurant, err := h.service.GetApprovedByID(r.Context(), restaurantID)
	if err != nil {
		h.handleServiceError(w, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// Submit handles POST /api/restaurants (owner)
func (h *RestaurantHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := restaurantFormToSubmit(r)

	logo, err := h.saveLogo(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.LogoImageURL = logo

	gallery, err := h.saveGallery(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.GalleryImageURLs = gallery

	restaurant, err := h.service.Submit(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "submit restaurant")
		return
	}

	utils.ResponseCreated(w, "success", restaurant)
}

// Update handles PUT /api/restaurants/{id} (owner)
func (h *RestaurantHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	restaurantID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := restaurantFormToUpdate(r)

	if hasFile(r, "logo_image") {
		logo, err := h.saveLogo(r)
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		req.LogoImageURL = logo
	}

	gallery, err := h.saveGallery(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	req.GalleryImageURLs = gallery

	restaurant, err := h.service.UpdateByOwner(r.Context(), userID.String(), restaurantID, req)
	if err != nil {
		h.handleServiceError(w, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// ListOwned handles GET /api/restaurants/my (owner)
func (h *RestaurantHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	restaurants, err := h.service.ListByOwner(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "list owned restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetOwned handles GET /api/restaurants/owner/{id} (owner)
func (h *RestaurantHandler) GetOwned(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	restaurantID := chi.URLParam(r, "id")

	restaurant, err := h.service.GetForOwner(r.Context(), restaurantID, userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get owned restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// ListAll handles GET /api/admin/restaurants (admin)
func (h *RestaurantHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListAllForAdmin(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list all restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetForReview handles GET /api/admin/restaurants/{id} (admin)
func (h *RestaurantHandler) GetForReview(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	restaurant, err := h.service.GetForReview(r.Context(), restaurantID)
	if err != nil {
		h.handleServiceError(w, err, "get restaurant for review")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// UpdateStatus handles PUT /api/admin/restaurants/{id}/status (admin)
func (h *RestaurantHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	var req request.ReviewDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ReviewDecision(r.Context(), restaurantID, &req); err != nil {
		h.handleServiceError(w, err, "update restaurant status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== HELPER FUNCTIONS ====================

func (h *RestaurantHandler) saveLogo(r *http.Request) (string, error) {
	files := r.MultipartForm.File["logo_image"]
	if len(files) == 0 {
		return "", nil
	}
	return h.blobs.SaveLogo(files[0])
}

func (h *RestaurantHandler) saveGallery(r *http.Request) ([]string, error) {
	files := r.MultipartForm.File["gallery_images"]
	if len(files) > maxGalleryFiles {
		files = files[:maxGalleryFiles]
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := h.blobs.SaveGallery(file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func hasFile(r *http.Request, field string) bool {
	return r.MultipartForm != nil && len(r.MultipartForm.File[field]) > 0
}

func formValue(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

func formOptional(r *http.Request, field string) *string {
	value := formValue(r, field)
	if value == "" {
		return nil
	}
	return &value
}

func formOptionalInt(r *http.Request, field string) *int {
	value := formValue(r, field)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

func restaurantFormToSubmit(r *http.Request) *request.SubmitRestaurantRequest {
	form := r.MultipartForm.Value
	return &request.SubmitRestaurantRequest{
		Name:               formValue(r, "name"),
		ManagerName:        formValue(r, "manager_name"),
		RestaurantType:     formValue(r, "restaurant_type"),
		CuisineTypes:       form["cuisine_types"],
		Description:        formValue(r, "description"),
		Address:            formValue(r, "address"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		ZipCode:            formValue(r, "zip_code"),
		ContactNumber:      formValue(r, "contact_number"),
		Email:              formValue(r, "email"),
		WebsiteURL:         formOptional(r, "website_url"),
		OperatingHours:     formOptional(r, "operating_hours"),
		AvgDiningDuration:  formOptional(r, "avg_dining_duration"),
		TotalTables:        formOptionalInt(r, "total_tables"),
		TableCapacityRange: formOptional(r, "table_capacity_range"),
		SpecialAreas:       form["special_areas"],
		AmbienceType:       formOptional(r, "ambience_type"),
		Facilities:         form["facilities"],
	}
}

func restaurantFormToUpdate(r *http.Request) *request.UpdateRestaurantRequest {
	form := r.MultipartForm.Value
	return &request.UpdateRestaurantRequest{
		Name:               formValue(r, "name"),
		ManagerName:        formValue(r, "manager_name"),
		RestaurantType:     formValue(r, "restaurant_type"),
		CuisineTypes:       form["cuisine_types"],
		Description:        formValue(r, "description"),
		Address:            formValue(r, "address"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		ZipCode:            formValue(r, "zip_code"),
		ContactNumber:      formValue(r, "contact_number"),
		Email:              formValue(r, "email"),
		WebsiteURL:         formOptional(r, "website_url"),
		OperatingHours:     formOptional(r, "operating_hours"),
		AvgDiningDuration:  formOptional(r, "avg_dining_duration"),
		TotalTables:        formOptionalInt(r, "total_tables"),
		TableCapacityRange: formOptional(r, "table_capacity_range"),
		SpecialAreas:       form["special_areas"],
		AmbienceType:       formOptional(r, "ambience_type"),
		Facilities:         form["facilities"],
	}
}

// handleServiceError handles errors for restaurant operations
func (h *RestaurantHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
