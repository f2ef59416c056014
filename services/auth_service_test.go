package services

import (
	"testing"

	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginVerifiesCredentials(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		Email:    "admin@catalog.test",
		Password: string(hash),
		Role:     "admin",
	}))

	svc := NewAuthService(users)

	user, err := svc.Login("admin@catalog.test", "password")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	_, err = svc.Login("admin@catalog.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@catalog.test", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
