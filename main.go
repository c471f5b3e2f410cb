package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/config"
	"github.com/UltraNerdDev/GPUStore/middleware"
	"github.com/UltraNerdDev/GPUStore/models"
	"github.com/UltraNerdDev/GPUStore/routes"
)

func main() {
	cfg := config.New()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		_ = logger.Sync()
	}()

	db := initDatabase(cfg, sugar)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Manufacturer{},
		&models.Technology{},
		&models.VideoCard{},
		&models.CardTechnology{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Comment{},
	); err != nil {
		sugar.Fatalw("auto-migrate failed", "error", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		sugar.Fatalw("failed to create upload directory", "dir", cfg.UploadDir, "error", err)
	}

	r := gin.New()
	r.Use(middleware.WithLogging(sugar), gin.Recovery())

	// Card images are small; 8 MB per request is plenty
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded card images are served directly
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, db, cfg, sugar)

	sugar.Infow("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("server failed", "error", err)
	}
}

func initDatabase(cfg *config.Config, sugar *zap.SugaredLogger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	return db
}
