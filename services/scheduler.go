// services/scheduler.go
package services

import (
	"log"
	"time"

	"almaceramica-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler runs the daily maintenance jobs: releasing expired
// unpaid holds and counting overdue deliveries for the morning log.
func StartScheduler(db *gorm.DB) {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		ReleaseExpiredHolds(db)
		LogOverdueDeliveries(db)
	})

	c.Start()
	log.Println("Studio scheduler started")
}

// ReleaseExpiredHolds cancels unpaid bookings whose hold expiry has
// passed, freeing their capacity.
func ReleaseExpiredHolds(db *gorm.DB) {
	result := db.Where("is_paid = ? AND expires_at IS NOT NULL AND expires_at < ?", false, time.Now()).
		Delete(&models.Booking{})
	if result.Error != nil {
		log.Printf("Failed to release expired holds: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Released %d expired unpaid holds", result.RowsAffected)
	}
}

// LogOverdueDeliveries surfaces pieces past their pickup date. Overdue
// is derived, never stored, so this only reports.
func LogOverdueDeliveries(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Delivery{}).
		Where("status = ? AND scheduled_date < ?", models.DeliveryPending, time.Now()).
		Count(&count).Error; err != nil {
		log.Printf("Failed to count overdue deliveries: %v", err)
		return
	}
	if count > 0 {
		log.Printf("%d deliveries are overdue for pickup", count)
	}
}
