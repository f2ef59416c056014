package entity

// Address is a value object embedded in Restaurant; it has no identity or
// lifecycle of its own.
type Address struct {
	BuildingNumber int    `gorm:"not null" json:"buildingNumber"`
	City           string `gorm:"not null" json:"city"`
	State          string `gorm:"not null" json:"state"`
	Country        string `gorm:"not null" json:"country"`
	Locality       string `gorm:"not null" json:"locality"`
	Street         string `gorm:"not null" json:"street"`
	Zipcode        string `gorm:"not null" json:"zipcode"`
}
