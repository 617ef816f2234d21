package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
)

// ErrCategoryNotFound indicates the category does not exist in the restaurant.
var ErrCategoryNotFound = errors.New("category service: category not found")

// CategoryService manages menu categories within a restaurant.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService constructs a category service once a database handle is supplied.
func NewCategoryService(db *gorm.DB) (*CategoryService, error) {
	if db == nil {
		return nil, errors.New("category service: db is required")
	}
	return &CategoryService{db: db}, nil
}

// List returns all categories of a restaurant.
func (s *CategoryService) List(ctx context.Context, restaurantID string) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("category service: list: %w", err)
	}

	return categories, nil
}

// Get loads a single category scoped to its restaurant.
func (s *CategoryService) Get(ctx context.Context, restaurantID, categoryID string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		First(&category, "id = ? AND restaurant_id = ?", categoryID, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("category service: get: %w", err)
	}

	return &category, nil
}

// Create adds a category to a restaurant.
func (s *CategoryService) Create(ctx context.Context, restaurantID, name string) (*models.Category, error) {
	category := models.Category{
		Name:         name,
		RestaurantID: restaurantID,
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("category service: create: %w", err)
	}

	return &category, nil
}

// Update renames a category.
func (s *CategoryService) Update(ctx context.Context, restaurantID, categoryID, name string) (*models.Category, error) {
	category, err := s.Get(ctx, restaurantID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(category).Update("name", name).Error; err != nil {
		return nil, fmt.Errorf("category service: update: %w", err)
	}

	category.Name = name
	return category, nil
}

// Delete removes a category and its dish associations.
func (s *CategoryService) Delete(ctx context.Context, restaurantID, categoryID string) error {
	category, err := s.Get(ctx, restaurantID, categoryID)
	if err != nil {
		return err
	}

	// Join rows go first so no dish keeps a dangling section reference.
	if err := s.db.WithContext(ctx).Model(category).Association("Dishes").Clear(); err != nil {
		return fmt.Errorf("category service: clear dish links: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(category).Error; err != nil {
		return fmt.Errorf("category service: delete: %w", err)
	}

	return nil
}
