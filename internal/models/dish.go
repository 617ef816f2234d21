package models

// Dish is a menu item. SpiceLevel is optional; nil means not rated.
type Dish struct {
	BaseModel

	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	SpiceLevel  *int    `json:"spiceLevel"`
	IsVeg       bool    `gorm:"default:false" json:"isVeg"`

	RestaurantID string `gorm:"type:uuid;not null;index" json:"restaurantId"`

	Categories []Category `gorm:"many2many:dish_categories;" json:"categories,omitempty"`
}
