package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is kept even when it has no active bookings: removing a
// booking's last slot leaves a standalone record so history and contact
// identity survive.
type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index"`

	Name          string `gorm:"not null"`
	Email         string `gorm:"index"`
	Phone         string
	Notes         string
	TotalBookings int     `gorm:"default:0"`
	TotalSpent    float64 `gorm:"type:decimal(10,2);default:0.0"`
	LastBooking   *time.Time
	IsActive      bool `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
