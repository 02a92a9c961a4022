package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryReady     DeliveryStatus = "ready"
	DeliveryCompleted DeliveryStatus = "completed"
	DeliveryOverdue   DeliveryStatus = "overdue" // derived, never stored
)

type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PhotoList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &p)
}

// Delivery tracks a finished piece waiting for pickup. Lifecycle is
// linear: pending -> ready -> completed.
type Delivery struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID uuid.UUID `gorm:"type:uuid;index;not null"`

	CustomerEmail string         `gorm:"index;not null"`
	Description   string         `gorm:"type:text;not null"`
	ScheduledDate time.Time      `gorm:"not null"`
	Status        DeliveryStatus `gorm:"type:varchar(20);default:'pending'"`
	Photos        PhotoList      `gorm:"type:jsonb;default:'[]'"`

	ReadyAt     *time.Time
	CompletedAt *time.Time
	DeliveredAt *time.Time

	gorm.Model
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

// EffectiveStatus reports overdue for pending deliveries whose scheduled
// date has passed; the stored status stays pending.
func (d *Delivery) EffectiveStatus(now time.Time) DeliveryStatus {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Status == DeliveryPending && d.ScheduledDate.Before(today) {
		return DeliveryOverdue
	}
	return d.Status
}
