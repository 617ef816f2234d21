package models

// Category is a menu section within a restaurant. Dishes attach through the
// dish_categories join table so one dish can appear in several sections.
type Category struct {
	BaseModel

	Name string `gorm:"not null" json:"name"`

	RestaurantID string `gorm:"type:uuid;not null;index" json:"restaurantId"`

	Dishes []Dish `gorm:"many2many:dish_categories;" json:"dishes,omitempty"`
}
