package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
)

var (
	// ErrRestaurantNotFound indicates the restaurant does not exist.
	ErrRestaurantNotFound = errors.New("restaurant service: restaurant not found")
	// ErrNotOwner indicates the restaurant exists but belongs to another
	// account, or does not exist at all. Both cases read the same to the
	// caller so restaurant ids cannot be probed.
	ErrNotOwner = errors.New("restaurant service: not the owner")
)

// RestaurantService manages restaurants on behalf of their owners.
type RestaurantService struct {
	db *gorm.DB
}

// NewRestaurantService constructs a restaurant service once a database handle is supplied.
func NewRestaurantService(db *gorm.DB) (*RestaurantService, error) {
	if db == nil {
		return nil, errors.New("restaurant service: db is required")
	}
	return &RestaurantService{db: db}, nil
}

// Create adds a restaurant owned by the given user.
func (s *RestaurantService) Create(ctx context.Context, ownerID, name, location string) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		Name:     name,
		Location: location,
		UserID:   ownerID,
	}

	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("restaurant service: create: %w", err)
	}

	return &restaurant, nil
}

// ListByOwner returns all restaurants of an owner with their categories and dishes.
func (s *RestaurantService) ListByOwner(ctx context.Context, ownerID string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Dishes").
		Where("user_id = ?", ownerID).
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("restaurant service: list: %w", err)
	}

	return restaurants, nil
}

// GetOwned loads a restaurant and enforces ownership. Missing restaurants
// and foreign restaurants both return ErrNotOwner.
func (s *RestaurantService) GetOwned(ctx context.Context, restaurantID, ownerID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOwner
		}
		return nil, fmt.Errorf("restaurant service: get: %w", err)
	}

	if restaurant.UserID != ownerID {
		return nil, ErrNotOwner
	}

	return &restaurant, nil
}

// Get loads a restaurant without ownership checks, for public menu reads.
func (s *RestaurantService) Get(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("restaurant service: get: %w", err)
	}

	return &restaurant, nil
}
