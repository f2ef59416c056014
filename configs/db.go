package configs

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the sqlite database and returns the handle; callers own it
// and pass it down explicitly.
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SetupDatabase migrates the catalog schema, including the composite unique
// index on (restaurant_id, name) for items.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Item{},
	)
}
