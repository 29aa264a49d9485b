package entity

import (
	"github.com/google/uuid"
)

type RestaurantStatus string

const (
	RestaurantStatusPending  RestaurantStatus = "pending"
	RestaurantStatusApproved RestaurantStatus = "approved"
	RestaurantStatusRejected RestaurantStatus = "rejected"
)

type Restaurant struct {
	Base
	OwnerID            uuid.UUID        `db:"owner_id"`
	Name               string           `db:"name"`
	ManagerName        string           `db:"manager_name"`
	RestaurantType     string           `db:"restaurant_type"`
	CuisineTypes       []string         `db:"cuisine_types"`
	Description        string           `db:"description"`
	LogoImageURL       string           `db:"logo_image_url"`
	Address            string           `db:"address"`
	City               string           `db:"city"`
	State              string           `db:"state"`
	ZipCode            string           `db:"zip_code"`
	ContactNumber      string           `db:"contact_number"`
	Email              string           `db:"email"`
	WebsiteURL         *string          `db:"website_url"`
	OperatingHours     *string          `db:"operating_hours"`
	AvgDiningDuration  *string          `db:"avg_dining_duration"`
	TotalTables        *int             `db:"total_tables"`
	TableCapacityRange *string          `db:"table_capacity_range"`
	SpecialAreas       []string         `db:"special_areas"`
	AmbienceType       *string          `db:"ambience_type"`
	Facilities         []string         `db:"facilities"`
	Status             RestaurantStatus `db:"status"`
}

// RestaurantWithOwner is the admin review queue projection
type RestaurantWithOwner struct {
	Restaurant
	OwnerName string `db:"owner_name"`
}
