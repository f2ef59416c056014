package entity

// Item is a menu entry owned by exactly one restaurant. The composite unique
// index makes the name-per-restaurant invariant hold even when two concurrent
// creations pass the service-level existence check.
type Item struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;uniqueIndex:idx_items_restaurant_name" json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`

	RestaurantID string     `gorm:"not null;uniqueIndex:idx_items_restaurant_name" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}

func (Item) TableName() string { return "food_items" }
