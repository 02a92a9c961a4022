package main

import (
	"fmt"
	"log"
	"os"

	"almaceramica-backend/config"
	"almaceramica-backend/controllers"
	"almaceramica-backend/models"
	"almaceramica-backend/routes"
	"almaceramica-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Studio{},
		&models.Customer{},
		&models.Product{},
		&models.Booking{},
		&models.Delivery{},
		&models.ValentineRegistration{},
		&models.NotificationLog{},
	)
}

func main() {
	controllers.Capacity = config.LoadCapacity()
	controllers.Notifier = services.NewNotificationService(config.DB)
	services.StartScheduler(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
