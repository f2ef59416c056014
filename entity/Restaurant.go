package entity

// Restaurant is a catalog establishment. Rows are write-once: there is no
// update or delete path after creation.
type Restaurant struct {
	ID      string  `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Address Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Items []Item `gorm:"foreignKey:RestaurantID" json:"-"`
}

func (Restaurant) TableName() string { return "restaurants" }
