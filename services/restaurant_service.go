package services

import (
	"errors"

	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/apperr"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressRequest mirrors entity.Address with the validation the API enforces
// before any persistence call happens.
type AddressRequest struct {
	BuildingNumber int    `json:"buildingNumber" binding:"required,gt=0"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	Country        string `json:"country" binding:"required"`
	Locality       string `json:"locality" binding:"required"`
	Street         string `json:"street" binding:"required"`
	Zipcode        string `json:"zipcode" binding:"required"`
}

type RestaurantRequest struct {
	Name    string         `json:"name" binding:"required"`
	Address AddressRequest `json:"address" binding:"required"`
}

func (a AddressRequest) toEntity() entity.Address {
	return entity.Address{
		BuildingNumber: a.BuildingNumber,
		City:           a.City,
		State:          a.State,
		Country:        a.Country,
		Locality:       a.Locality,
		Street:         a.Street,
		Zipcode:        a.Zipcode,
	}
}

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// Create persists a new restaurant unless one with the same name and the
// exact same address already exists.
func (s *RestaurantService) Create(req RestaurantRequest) (*entity.Restaurant, error) {
	addr := req.Address.toEntity()

	exists, err := s.Repo.ExistsByNameAndAddress(req.Name, addr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.RestaurantAlreadyExists, MsgRestaurantExists)
	}

	rest := &entity.Restaurant{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Address: addr,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// FetchAll returns every restaurant; an empty slice means no content, which
// the API layer renders as 204 rather than an empty 200.
func (s *RestaurantService) FetchAll() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) FetchByID(id string) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.RestaurantNotFound, MsgRestaurantAbsent)
		}
		return nil, err
	}
	return rest, nil
}
