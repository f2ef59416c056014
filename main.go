package main

import (
	"fmt"
	"log"

	"github.com/SaiSindhuSubbisetty/CatalogService/configs"
	"github.com/SaiSindhuSubbisetty/CatalogService/middlewares"
	"github.com/SaiSindhuSubbisetty/CatalogService/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
