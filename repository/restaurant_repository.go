package repository

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Where("id = ?", id).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// ExistsByNameAndAddress reports whether a restaurant with the same name and
// the exact same address is already on record. Duplicates differ only when
// every address field matches.
func (r *RestaurantRepository) ExistsByNameAndAddress(name string, addr entity.Address) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("name = ?", name).
		Where("address_building_number = ?", addr.BuildingNumber).
		Where("address_city = ?", addr.City).
		Where("address_state = ?", addr.State).
		Where("address_country = ?", addr.Country).
		Where("address_locality = ?", addr.Locality).
		Where("address_street = ?", addr.Street).
		Where("address_zipcode = ?", addr.Zipcode).
		Count(&count).Error
	return count > 0, err
}
