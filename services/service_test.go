package services

import (
	"fmt"
	"testing"

	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. The shared-cache DSN
// keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Restaurant{}, &entity.Item{}))
	return db
}

func validRestaurantRequest() RestaurantRequest {
	return RestaurantRequest{
		Name: "name",
		Address: AddressRequest{
			BuildingNumber: 2,
			City:           "abc",
			State:          "def",
			Country:        "ssw",
			Locality:       "sdw",
			Street:         "we",
			Zipcode:        "600001",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
