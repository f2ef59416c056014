package repository

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) FindByID(id string) (*entity.Item, error) {
	var item entity.Item
	err := r.DB.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindAllByRestaurant(restaurantID string) ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&items).Error
	return items, err
}

func (r *ItemRepository) ExistsByNameAndRestaurant(name, restaurantID string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Item{}).
		Where("name = ? AND restaurant_id = ?", name, restaurantID).
		Count(&count).Error
	return count > 0, err
}
