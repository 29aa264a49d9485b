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

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindApprovedByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Restaurant, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error)
	FindApproved(ctx context.Context) ([]*entity.Restaurant, error)
	FindAllWithOwner(ctx context.Context) ([]*entity.RestaurantWithOwner, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RestaurantStatus) error
}

// restaurantColumns is the canonical select list; list-valued attributes
// are Postgres text[] columns and scan straight into []string.
const restaurantColumns = `
	id, owner_id, name, manager_name, restaurant_type, cuisine_types,
	description, logo_image_url, address, city, state, zip_code,
	contact_number, email, website_url, operating_hours, avg_dining_duration,
	total_tables, table_capacity_range, special_areas, ambience_type,
	facilities, status, created_at, updated_at`

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

func scanRestaurant(row pgx.Row, restaurant *entity.Restaurant) error {
	return row.Scan(
		&restaurant.ID,
		&restaurant.OwnerID,
		&restaurant.Name,
		&restaurant.ManagerName,
		&restaurant.RestaurantType,
		&restaurant.CuisineTypes,
		&restaurant.Description,
		&restaurant.LogoImageURL,
		&restaurant.Address,
		&restaurant.City,
		&restaurant.State,
		&restaurant.ZipCode,
		&restaurant.ContactNumber,
		&restaurant.Email,
		&restaurant.WebsiteURL,
		&restaurant.OperatingHours,
		&restaurant.AvgDiningDuration,
		&restaurant.TotalTables,
		&restaurant.TableCapacityRange,
		&restaurant.SpecialAreas,
		&restaurant.AmbienceType,
		&restaurant.Facilities,
		&restaurant.Status,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
}

func (rr *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (
			id, owner_id, name, manager_name, restaurant_type, cuisine_types,
			description, logo_image_url, address, city, state, zip_code,
			contact_number, email, website_url, operating_hours, avg_dining_duration,
			total_tables, table_capacity_range, special_areas, ambience_type,
			facilities, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`

	_, err := rr.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.ManagerName,
		restaurant.RestaurantType,
		restaurant.CuisineTypes,
		restaurant.Description,
		restaurant.LogoImageURL,
		restaurant.Address,
		restaurant.City,
		restaurant.State,
		restaurant.ZipCode,
		restaurant.ContactNumber,
		restaurant.Email,
		restaurant.WebsiteURL,
		restaurant.OperatingHours,
		restaurant.AvgDiningDuration,
		restaurant.TotalTables,
		restaurant.TableCapacityRange,
		restaurant.SpecialAreas,
		restaurant.AmbienceType,
		restaurant.Facilities,
		restaurant.Status,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("owner_id", restaurant.OwnerID.String()),
			zap.String("name", restaurant.Name),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Name, err)
	}

	return nil
}

func (rr *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	var restaurant entity.Restaurant
	err := scanRestaurant(rr.db.QueryRow(ctx, query, id), &restaurant)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (rr *restaurantRepository) FindApprovedByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1 AND status = 'approved'`

	var restaurant entity.Restaurant
	err := scanRestaurant(rr.db.QueryRow(ctx, query, id), &restaurant)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find approved restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find approved restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (rr *restaurantRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1 AND owner_id = $2`

	var restaurant entity.Restaurant
	err := scanRestaurant(rr.db.QueryRow(ctx, query, id, ownerID), &restaurant)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find restaurant by ID and owner",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find restaurant %s for owner %s: %w", id.String(), ownerID.String(), err)
	}

	return &restaurant, nil
}

func (rr *restaurantRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := rr.db.Query(ctx, query, ownerID)
	if err != nil {
		rr.log.Error("Failed to find restaurants by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find restaurants by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

func (rr *restaurantRepository) FindApproved(ctx context.Context) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE status = 'approved' ORDER BY created_at DESC`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		rr.log.Error("Failed to find approved restaurants", zap.Error(err))
		return nil, fmt.Errorf("find approved restaurants: %w", err)
	}
	defer rows.Close()

	return collectRestaurants(rows)
}

// FindAllWithOwner returns the admin review queue joined with the owner name
func (rr *restaurantRepository) FindAllWithOwner(ctx context.Context) ([]*entity.RestaurantWithOwner, error) {
	query := `
		SELECT r.id, r.owner_id, r.name, r.manager_name, r.restaurant_type, r.cuisine_types,
		       r.description, r.logo_image_url, r.address, r.city, r.state, r.zip_code,
		       r.contact_number, r.email, r.website_url, r.operating_hours, r.avg_dining_duration,
		       r.total_tables, r.table_capacity_range, r.special_areas, r.ambience_type,
		       r.facilities, r.status, r.created_at, r.updated_at,
		       u.name AS owner_name
		FROM restaurants r
		JOIN users u ON r.owner_id = u.id
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		rr.log.Error("Failed to find restaurants with owner", zap.Error(err))
		return nil, fmt.Errorf("find restaurants with owner: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.RestaurantWithOwner
	for rows.Next() {
		var r entity.RestaurantWithOwner
		err := rows.Scan(
			&r.ID,
			&r.OwnerID,
			&r.Name,
			&r.ManagerName,
			&r.RestaurantType,
			&r.CuisineTypes,
			&r.Description,
			&r.LogoImageURL,
			&r.Address,
			&r.City,
			&r.State,
			&r.ZipCode,
			&r.ContactNumber,
			&r.Email,
			&r.WebsiteURL,
			&r.OperatingHours,
			&r.AvgDiningDuration,
			&r.TotalTables,
			&r.TableCapacityRange,
			&r.SpecialAreas,
			&r.AmbienceType,
			&r.Facilities,
			&r.Status,
			&r.CreatedAt,
			&r.UpdatedAt,
			&r.OwnerName,
		)
		if err != nil {
			rr.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &r)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate restaurant rows: %w", err)
	}

	return restaurants, nil
}

// Update writes every owner-editable field. Status is deliberately excluded:
// only UpdateStatus touches it.
func (rr *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, manager_name = $3, restaurant_type = $4, cuisine_types = $5,
		    description = $6, logo_image_url = $7, address = $8, city = $9,
		    state = $10, zip_code = $11, contact_number = $12, email = $13,
		    website_url = $14, operating_hours = $15, avg_dining_duration = $16,
		    total_tables = $17, table_capacity_range = $18, special_areas = $19,
		    ambience_type = $20, facilities = $21, updated_at = $22
		WHERE id = $1
	`

	result, err := rr.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.ManagerName,
		restaurant.RestaurantType,
		restaurant.CuisineTypes,
		restaurant.Description,
		restaurant.LogoImageURL,
		restaurant.Address,
		restaurant.City,
		restaurant.State,
		restaurant.ZipCode,
		restaurant.ContactNumber,
		restaurant.Email,
		restaurant.WebsiteURL,
		restaurant.OperatingHours,
		restaurant.AvgDiningDuration,
		restaurant.TotalTables,
		restaurant.TableCapacityRange,
		restaurant.SpecialAreas,
		restaurant.AmbienceType,
		restaurant.Facilities,
		restaurant.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurant.ID.String()),
		)
		return fmt.Errorf("update restaurant %s: %w", restaurant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", restaurant.ID.String())
	}

	return nil
}

func (rr *restaurantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RestaurantStatus) error {
	query := `UPDATE restaurants SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id, status)
	if err != nil {
		rr.log.Error("Failed to update restaurant status",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update restaurant %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", id.String())
	}

	return nil
}

func collectRestaurants(rows pgx.Rows) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		if err := scanRestaurant(rows, &restaurant); err != nil {
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurant rows: %w", err)
	}

	return restaurants, nil
}
