package configs

import (
	"log"

	"github.com/SaiSindhuSubbisetty/CatalogService/entity"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account on first boot so mutation endpoints
// have a principal to authenticate.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	users := repository.NewUserRepository(db)
	count, err := users.CountByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return users.Create(&entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	})
}
