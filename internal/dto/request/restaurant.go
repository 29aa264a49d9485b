package request

// SubmitRestaurantRequest carries the multipart form fields of a new
// listing. The handler stores the uploaded blobs first and passes the
// resulting paths in LogoImageURL / GalleryImageURLs.
type SubmitRestaurantRequest struct {
	Name               string   `json:"name"`
	ManagerName        string   `json:"manager_name"`
	RestaurantType     string   `json:"restaurant_type"`
	CuisineTypes       []string `json:"cuisine_types"`
	Description        string   `json:"description"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	ZipCode            string   `json:"zip_code"`
	ContactNumber      string   `json:"contact_number"`
	Email              string   `json:"email"`
	WebsiteURL         *string  `json:"website_url,omitempty"`
	OperatingHours     *string  `json:"operating_hours,omitempty"`
	AvgDiningDuration  *string  `json:"avg_dining_duration,omitempty"`
	TotalTables        *int     `json:"total_tables,omitempty"`
	TableCapacityRange *string  `json:"table_capacity_range,omitempty"`
	SpecialAreas       []string `json:"special_areas"`
	AmbienceType       *string  `json:"ambience_type,omitempty"`
	Facilities         []string `json:"facilities"`
	LogoImageURL       string   `json:"-"`
	GalleryImageURLs   []string `json:"-"`
}

// UpdateRestaurantRequest mirrors SubmitRestaurantRequest but every blob
// is optional: an absent logo keeps the current one, gallery images are
// appended, never replaced.
type UpdateRestaurantRequest struct {
	Name               string   `json:"name" validate:"required"`
	ManagerName        string   `json:"manager_name"`
	RestaurantType     string   `json:"restaurant_type"`
	CuisineTypes       []string `json:"cuisine_types"`
	Description        string   `json:"description" validate:"required"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	ZipCode            string   `json:"zip_code"`
	ContactNumber      string   `json:"contact_number"`
	Email              string   `json:"email"`
	WebsiteURL         *string  `json:"website_url,omitempty"`
	OperatingHours     *string  `json:"operating_hours,omitempty"`
	AvgDiningDuration  *string  `json:"avg_dining_duration,omitempty"`
	TotalTables        *int     `json:"total_tables,omitempty"`
	TableCapacityRange *string  `json:"table_capacity_range,omitempty"`
	SpecialAreas       []string `json:"special_areas"`
	AmbienceType       *string  `json:"ambience_type,omitempty"`
	Facilities         []string `json:"facilities"`
	LogoImageURL       string   `json:"-"`
	GalleryImageURLs   []string `json:"-"`
}

type ReviewDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}
