package services

import (
	"errors"

	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repo *repository.UserRepository
}

func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{Repo: repo}
}

// Login verifies the credentials and returns the matching user. Callers issue
// the token; this layer never sees JWT material.
func (s *AuthService) Login(email, password string) (*entity.User, error) {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
