package app

import (
	"fmt"

	"craftlink/database"
	"craftlink/internal/config"
	"craftlink/internal/handlers"
	"craftlink/internal/logger"
	"craftlink/internal/middleware"
	"craftlink/internal/routes"
	"craftlink/internal/services"
	"craftlink/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey so
		// duplicate reviews/reports/votes map to domain errors.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.SeedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		logger.Fatal("Failed to seed reference catalog", "error", err)
	}

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	serviceContainer := services.NewServiceContainer(db)
	appHandlers := handlers.NewAppHandlers(db, serviceContainer, validator.New())

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestLogger())
	ginRouter.Use(middleware.Identity())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}
