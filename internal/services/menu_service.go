package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/calebsoh/menucard/internal/models"
)

const defaultQRSize = 256

// Menu is the public read-only view of a restaurant's offering.
type Menu struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Location   string         `json:"location"`
	Categories []MenuCategory `json:"categories"`
}

// MenuCategory is a menu section with its dishes resolved inline.
type MenuCategory struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Dishes []models.Dish `json:"dishes"`
}

// MenuService assembles public menus and renders shareable QR codes.
type MenuService struct {
	db      *gorm.DB
	baseURL string
	qrSize  int
}

// NewMenuService constructs a menu service. baseURL is the externally
// reachable address encoded into menu QR codes.
func NewMenuService(db *gorm.DB, baseURL string) (*MenuService, error) {
	if db == nil {
		return nil, errors.New("menu service: db is required")
	}

	return &MenuService{
		db:      db,
		baseURL: strings.TrimRight(baseURL, "/"),
		qrSize:  defaultQRSize,
	}, nil
}

// GetMenu loads a restaurant with every category and that category's dishes.
// No session is required; the menu is the public face of the product.
func (s *MenuService) GetMenu(ctx context.Context, restaurantID string) (*Menu, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("Categories.Dishes").
		First(&restaurant, "id = ?", restaurantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("menu service: load restaurant: %w", err)
	}

	menu := Menu{
		ID:         restaurant.ID,
		Name:       restaurant.Name,
		Location:   restaurant.Location,
		Categories: make([]MenuCategory, 0, len(restaurant.Categories)),
	}

	for _, category := range restaurant.Categories {
		dishes := category.Dishes
		if dishes == nil {
			dishes = []models.Dish{}
		}
		menu.Categories = append(menu.Categories, MenuCategory{
			ID:     category.ID,
			Name:   category.Name,
			Dishes: dishes,
		})
	}

	return &menu, nil
}

// MenuURL returns the public link a QR code points at.
func (s *MenuService) MenuURL(restaurantID string) string {
	return fmt.Sprintf("%s/menu/%s", s.baseURL, restaurantID)
}

// QRCode renders a PNG QR code for the restaurant's public menu link. The
// restaurant must exist; guests scan these from table tents.
func (s *MenuService) QRCode(ctx context.Context, restaurantID string) ([]byte, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", restaurantID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("menu service: check restaurant: %w", err)
	}
	if count == 0 {
		return nil, ErrRestaurantNotFound
	}

	png, err := qrcode.Encode(s.MenuURL(restaurantID), qrcode.Medium, s.qrSize)
	if err != nil {
		return nil, fmt.Errorf("menu service: encode qr: %w", err)
	}

	return png, nil
}
