package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/config"
	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/metrics"
	"github.com/prameswara/restofoh/middlewares"
	"github.com/prameswara/restofoh/models"
	"github.com/prameswara/restofoh/repository"
	"github.com/prameswara/restofoh/router"
	"github.com/prameswara/restofoh/services"
	"github.com/prameswara/restofoh/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	autoMigrate(db)

	sections, err := config.LoadSections(os.Getenv("SECTIONS_FILE"))
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load floor sections: %v", err)
	}

	// Koordinator lantai: state in-memory, snapshot dipersist lewat gorm
	store := repository.NewGormStore(db)
	coord := floor.NewCoordinator(sections, floor.WithStore(store))
	if err := coord.Load(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to load floor state: %v", err)
	}

	metrics.Register()
	metrics.ObserveFloor(coord.Stats())

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sweeper := services.NewReservationSweeper(coord)
	sweeper.Start()
	defer sweeper.Stop()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db, coord)
	r.Use(rateLimiter.RateLimit())
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.FloorTable{},
		&models.Reservation{},
		&models.WaitlistEntry{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryItem{},
		&models.Staff{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
