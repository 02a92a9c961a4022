// Standalone last-chance campaign sender. Reads .env.local, queries
// prospects directly and sends the campaign with the provider throttle.
// Exits 0 if at least one message went out, 1 otherwise.
package main

import (
	"log"
	"os"

	"almaceramica-backend/models"
	"almaceramica-backend/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("No .env.local file found")
	}

	dsn := os.Getenv("DB_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	var customers []models.Customer
	err = db.
		Where("is_active = ? AND phone <> '' AND email NOT IN (?)",
			true,
			db.Model(&models.ValentineRegistration{}).Select("email")).
		Order("total_spent DESC").
		Find(&customers).Error
	if err != nil {
		log.Fatalf("Failed to load prospects: %v", err)
	}

	if len(customers) == 0 {
		log.Println("No prospects to contact")
		os.Exit(1)
	}

	message := os.Getenv("CAMPAIGN_MESSAGE")
	if message == "" {
		message = "[Nombre], ¡última oportunidad! Quedan pocas plazas para los talleres de San Valentín de Alma Cerámica."
	}

	prospects := make([]services.Prospect, len(customers))
	for i, c := range customers {
		prospects[i] = services.Prospect{Name: c.Name, Phone: c.Phone}
	}

	notifier := services.NewNotificationService(db)
	sent := notifier.SendLastChanceCampaign(uuid.Nil, prospects, message)

	log.Printf("Campaign finished: %d/%d messages sent", sent, len(prospects))
	if sent == 0 {
		os.Exit(1)
	}
}
