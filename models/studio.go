package models

import (
	"github.com/google/uuid"
)

type Studio struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                  string    `gorm:"not null"`
	Address               string
	OpeningHours          JSONB `gorm:"type:jsonb;default:'{}'"`
	BookingConfirmations  bool  `gorm:"default:true"`
	PaymentConfirmations  bool  `gorm:"default:true"`
	WhatsAppNotifications bool  `gorm:"default:false"`
	SMSNotifications      bool  `gorm:"default:false"`

	Users      []User     `gorm:"foreignKey:StudioID"`
	Customers  []Customer `gorm:"foreignKey:StudioID"`
	Products   []Product  `gorm:"foreignKey:StudioID"`
	Bookings   []Booking  `gorm:"foreignKey:StudioID"`
	Deliveries []Delivery `gorm:"foreignKey:StudioID"`
}
