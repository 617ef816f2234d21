package models

// Restaurant belongs to a single owner and groups menu categories and dishes.
type Restaurant struct {
	BaseModel

	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`

	UserID string `gorm:"type:uuid;not null;index" json:"userId"`

	Categories []Category `gorm:"foreignKey:RestaurantID" json:"categories,omitempty"`
	Dishes     []Dish     `gorm:"foreignKey:RestaurantID" json:"dishes,omitempty"`
}
