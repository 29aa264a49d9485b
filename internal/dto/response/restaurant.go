package response

import (
	"time"

	"restaurant-booking/internal/data/entity"
)

// RestaurantSummary is the public listing card: the explore page only
// needs a name, cuisines and a logo.
type RestaurantSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CuisineTypes []string `json:"cuisine_types"`
	LogoImageURL string   `json:"logo_image_url"`
}

type RestaurantResponse struct {
	ID                 string                  `json:"id"`
	OwnerID            string                  `json:"owner_id"`
	Name               string                  `json:"name"`
	ManagerName        string                  `json:"manager_name"`
	RestaurantType     string                  `json:"restaurant_type"`
	CuisineTypes       []string                `json:"cuisine_types"`
	Description        string                  `json:"description"`
	LogoImageURL       string                  `json:"logo_image_url"`
	Address            string                  `json:"address"`
	City               string                  `json:"city"`
	State              string                  `json:"state"`
	ZipCode            string                  `json:"zip_code"`
	ContactNumber      string                  `json:"contact_number"`
	Email              string                  `json:"email"`
	WebsiteURL         *string                 `json:"website_url,omitempty"`
	OperatingHours     *string                 `json:"operating_hours,omitempty"`
	AvgDiningDuration  *string                 `json:"avg_dining_duration,omitempty"`
	TotalTables        *int                    `json:"total_tables,omitempty"`
	TableCapacityRange *string                 `json:"table_capacity_range,omitempty"`
	SpecialAreas       []string                `json:"special_areas"`
	AmbienceType       *string                 `json:"ambience_type,omitempty"`
	Facilities         []string                `json:"facilities"`
	Status             entity.RestaurantStatus `json:"status"`
	Gallery            []string                `json:"gallery,omitempty"`
	OwnerName          string                  `json:"owner_name,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
}

// Helper converters

func RestaurantToSummary(restaurant *entity.Restaurant) RestaurantSummary {
	return RestaurantSummary{
		ID:           restaurant.ID.String(),
		Name:         restaurant.Name,
		CuisineTypes: restaurant.CuisineTypes,
		LogoImageURL: restaurant.LogoImageURL,
	}
}

func RestaurantToResponse(restaurant *entity.Restaurant, gallery []string) RestaurantResponse {
	return RestaurantResponse{
		ID:                 restaurant.ID.String(),
		OwnerID:            restaurant.OwnerID.String(),
		Name:               restaurant.Name,
		ManagerName:        restaurant.ManagerName,
		RestaurantType:     restaurant.RestaurantType,
		CuisineTypes:       restaurant.CuisineTypes,
		Description:        restaurant.Description,
		LogoImageURL:       restaurant.LogoImageURL,
		Address:            restaurant.Address,
		City:               restaurant.City,
		State:              restaurant.State,
		ZipCode:            restaurant.ZipCode,
		ContactNumber:      restaurant.ContactNumber,
		Email:              restaurant.Email,
		WebsiteURL:         restaurant.WebsiteURL,
		OperatingHours:     restaurant.OperatingHours,
		AvgDiningDuration:  restaurant.AvgDiningDuration,
		TotalTables:        restaurant.TotalTables,
		TableCapacityRange: restaurant.TableCapacityRange,
		SpecialAreas:       restaurant.SpecialAreas,
		AmbienceType:       restaurant.AmbienceType,
		Facilities:         restaurant.Facilities,
		Status:             restaurant.Status,
		Gallery:            gallery,
		CreatedAt:          restaurant.CreatedAt,
	}
}

func RestaurantWithOwnerToResponse(restaurant *entity.RestaurantWithOwner) RestaurantResponse {
	resp := RestaurantToResponse(&restaurant.Restaurant, nil)
	resp.OwnerName = restaurant.OwnerName
	return resp
}

type SubmitRestaurantResponse struct {
	RestaurantID string `json:"restaurant_id"`
}
