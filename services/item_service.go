package services

import (
	"errors"

	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/apperr"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRequest carries a pointer price so that a zero price binds fine while a
// missing one is rejected.
type ItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type ItemService struct {
	Repo           *repository.ItemRepository
	RestaurantRepo *repository.RestaurantRepository
}

func NewItemService(repo *repository.ItemRepository, restaurantRepo *repository.RestaurantRepository) *ItemService {
	return &ItemService{Repo: repo, RestaurantRepo: restaurantRepo}
}

// Add persists a new item under the given restaurant. The restaurant must
// exist and the item name must be unused within that restaurant.
func (s *ItemService) Add(restaurantID string, req ItemRequest) (*entity.Item, error) {
	if _, err := s.resolveRestaurant(restaurantID); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByNameAndRestaurant(req.Name, restaurantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.ItemAlreadyExists, MsgItemExists)
	}

	item := &entity.Item{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		RestaurantID: restaurantID,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) FetchAll(restaurantID string) ([]entity.Item, error) {
	if _, err := s.resolveRestaurant(restaurantID); err != nil {
		return nil, err
	}
	return s.Repo.FindAllByRestaurant(restaurantID)
}

// FetchByID looks the item up by its own id only; the restaurant id in the
// route does not narrow the lookup.
func (s *ItemService) FetchByID(itemID string) (*entity.Item, error) {
	item, err := s.Repo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ItemNotFound, MsgItemAbsent)
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) resolveRestaurant(restaurantID string) (*entity.Restaurant, error) {
	rest, err := s.RestaurantRepo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.RestaurantNotFound, MsgRestaurantAbsent)
		}
		return nil, err
	}
	return rest, nil
}
