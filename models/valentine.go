package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ValentineWorkshop string

const (
	WorkshopTorno    ValentineWorkshop = "torno_san_valentin"
	WorkshopModelado ValentineWorkshop = "modelado_san_valentin"
	WorkshopPintura  ValentineWorkshop = "pintura_san_valentin"
)

type ValentineStatus string

const (
	ValentinePending   ValentineStatus = "pending"
	ValentineConfirmed ValentineStatus = "confirmed"
	ValentineCancelled ValentineStatus = "cancelled"
	ValentineAttended  ValentineStatus = "attended"
)

// ValentineRegistration is a seasonal workshop sign-up. Payment proof is
// mandatory at registration time; capacity is tracked per workshop.
type ValentineRegistration struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID uuid.UUID `gorm:"type:uuid;index"`

	Code            string `gorm:"uniqueIndex;not null"` // VAL26-XXXXXXX
	FullName        string `gorm:"not null"`
	BirthDate       *time.Time
	Phone           string            `gorm:"not null"`
	Email           string            `gorm:"index;not null"`
	Workshop        ValentineWorkshop `gorm:"type:varchar(40);not null"`
	Participants    int               `gorm:"default:1"`
	PaymentProofURL string            `gorm:"not null"`
	Status          ValentineStatus   `gorm:"type:varchar(20);default:'pending'"`

	gorm.Model
}

func (v *ValentineRegistration) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}

// CountsAgainstCapacity excludes cancelled registrations from the
// per-workshop seat count.
func (v *ValentineRegistration) CountsAgainstCapacity() bool {
	return v.Status != ValentineCancelled
}
