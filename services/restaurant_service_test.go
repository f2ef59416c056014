package services

import (
	"testing"

	"github.com/SaiSindhuSubbisetty/CatalogService/pkg/apperr"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantService(t *testing.T) *RestaurantService {
	return NewRestaurantService(repository.NewRestaurantRepository(newTestDB(t)))
}

func TestCreateRestaurantAndFetchItBack(t *testing.T) {
	svc := newRestaurantService(t)

	created, err := svc.Create(validRestaurantRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := svc.FetchByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "name", fetched.Name)
	assert.Equal(t, created.Address, fetched.Address)
}

func TestCreateDuplicateRestaurantFails(t *testing.T) {
	svc := newRestaurantService(t)

	_, err := svc.Create(validRestaurantRequest())
	require.NoError(t, err)

	_, err = svc.Create(validRestaurantRequest())
	require.Error(t, err)
	assert.Equal(t, apperr.RestaurantAlreadyExists, apperr.KindOf(err))
	assert.EqualError(t, err, MsgRestaurantExists)
}

func TestSameNameDifferentAddressSucceeds(t *testing.T) {
	svc := newRestaurantService(t)

	_, err := svc.Create(validRestaurantRequest())
	require.NoError(t, err)

	req := validRestaurantRequest()
	req.Address.City = "other"
	_, err = svc.Create(req)
	assert.NoError(t, err)
}

func TestFetchAllRestaurants(t *testing.T) {
	svc := newRestaurantService(t)

	rests, err := svc.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, rests)

	_, err = svc.Create(validRestaurantRequest())
	require.NoError(t, err)
	second := validRestaurantRequest()
	second.Name = "second"
	_, err = svc.Create(second)
	require.NoError(t, err)

	rests, err = svc.FetchAll()
	require.NoError(t, err)
	assert.Len(t, rests, 2)
}

func TestFetchRestaurantByUnknownID(t *testing.T) {
	svc := newRestaurantService(t)

	_, err := svc.FetchByID("non-existent-id")
	require.Error(t, err)
	assert.Equal(t, apperr.RestaurantNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, MsgRestaurantAbsent)
}
