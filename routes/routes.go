package routes

import (
	"github.com/SaiSindhuSubbisetty/CatalogService/configs"
	"github.com/SaiSindhuSubbisetty/CatalogService/controllers"
	"github.com/SaiSindhuSubbisetty/CatalogService/middlewares"
	"github.com/SaiSindhuSubbisetty/CatalogService/repository"
	"github.com/SaiSindhuSubbisetty/CatalogService/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers and mounts the
// catalog API. Mutations sit behind the admin role check.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	restaurantRepo := repository.NewRestaurantRepository(db)
	itemRepo := repository.NewItemRepository(db)
	userRepo := repository.NewUserRepository(db)

	restaurantSvc := services.NewRestaurantService(restaurantRepo)
	itemSvc := services.NewItemService(itemRepo, restaurantRepo)
	authSvc := services.NewAuthService(userRepo)

	restCtrl := controllers.NewRestaurantController(restaurantSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	authCtrl := controllers.NewAuthController(authSvc, cfg)

	r.POST("/auth/login", authCtrl.Login)

	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:restaurantId", restCtrl.Detail)
	r.POST("/restaurants", admin, restCtrl.Create)

	r.GET("/restaurants/:restaurantId/items", itemCtrl.List)
	r.GET("/restaurants/:restaurantId/items/:itemId", itemCtrl.Detail)
	r.POST("/restaurants/:restaurantId/items", admin, itemCtrl.Create)
}
