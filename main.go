package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VasifPeerji/sweet-shop-management-system/auth"
	"github.com/VasifPeerji/sweet-shop-management-system/config"
	"github.com/VasifPeerji/sweet-shop-management-system/database"
	"github.com/VasifPeerji/sweet-shop-management-system/logger"
	"github.com/VasifPeerji/sweet-shop-management-system/routes"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting sweet shop api", "mode", cfg.AppMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("db connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", "error", err)
	}
	if err := database.Seed(db, log); err != nil {
		log.Fatal("seed failed", "error", err)
	}

	if cfg.AppMode == "prod" || cfg.AppMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	routes.SetupRoutes(r, db, issuer, log)

	log.Info("server listening", "port", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatal("server failed", "error", err)
	}
}
