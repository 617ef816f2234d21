package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
)

// ErrDishNotFound indicates the dish does not exist in the restaurant.
var ErrDishNotFound = errors.New("dish service: dish not found")

// DishInput captures the mutable fields of a dish. CategoryIDs replaces the
// full set of category associations on create and update.
type DishInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	SpiceLevel  *int
	IsVeg       bool
	CategoryIDs []string
}

// DishService manages dishes and their category links within a restaurant.
type DishService struct {
	db *gorm.DB
}

// NewDishService constructs a dish service once a database handle is supplied.
func NewDishService(db *gorm.DB) (*DishService, error) {
	if db == nil {
		return nil, errors.New("dish service: db is required")
	}
	return &DishService{db: db}, nil
}

// Get loads a single dish with its categories, scoped to its restaurant.
func (s *DishService) Get(ctx context.Context, restaurantID, dishID string) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.WithContext(ctx).
		Preload("Categories").
		First(&dish, "id = ? AND restaurant_id = ?", dishID, restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, fmt.Errorf("dish service: get: %w", err)
	}

	return &dish, nil
}

// Create adds a dish to a restaurant and links the requested categories.
func (s *DishService) Create(ctx context.Context, restaurantID string, input DishInput) (*models.Dish, error) {
	dish := models.Dish{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Image:        input.Image,
		SpiceLevel:   input.SpiceLevel,
		IsVeg:        input.IsVeg,
		RestaurantID: restaurantID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dish).Error; err != nil {
			return err
		}
		return s.replaceCategories(tx, &dish, restaurantID, input.CategoryIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("dish service: create: %w", err)
	}

	return s.Get(ctx, restaurantID, dish.ID)
}

// Update rewrites a dish's fields and replaces its category associations.
func (s *DishService) Update(ctx context.Context, restaurantID, dishID string, input DishInput) (*models.Dish, error) {
	dish, err := s.Get(ctx, restaurantID, dishID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := map[string]any{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"image":       input.Image,
			"spice_level": input.SpiceLevel,
			"is_veg":      input.IsVeg,
		}
		if err := tx.Model(&models.Dish{}).Where("id = ?", dish.ID).Updates(update).Error; err != nil {
			return err
		}

		if err := tx.Model(dish).Association("Categories").Clear(); err != nil {
			return err
		}
		return s.replaceCategories(tx, dish, restaurantID, input.CategoryIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("dish service: update: %w", err)
	}

	return s.Get(ctx, restaurantID, dishID)
}

// Delete removes a dish and its category associations.
func (s *DishService) Delete(ctx context.Context, restaurantID, dishID string) error {
	dish, err := s.Get(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(dish).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(dish).Error
	})
	if err != nil {
		return fmt.Errorf("dish service: delete: %w", err)
	}

	return nil
}

// replaceCategories links dish to the given categories. Categories from
// other restaurants are skipped rather than rejected.
func (s *DishService) replaceCategories(tx *gorm.DB, dish *models.Dish, restaurantID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	var categories []models.Category
	err := tx.Where("restaurant_id = ? AND id IN ?", restaurantID, categoryIDs).Find(&categories).Error
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return nil
	}

	return tx.Model(dish).Association("Categories").Append(&categories)
}
