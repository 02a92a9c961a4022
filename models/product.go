package models

import (
	"github.com/google/uuid"
)

// Product is a catalog entry (class, package, experience). Bookings copy
// it into their ProductSnapshot; later catalog edits never touch existing
// bookings.
type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StudioID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name            string `gorm:"not null"`
	Description     string
	Type            ProductType `gorm:"type:varchar(40);not null"`
	Technique       Technique   `gorm:"type:varchar(20)"`
	Price           float64     `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int
	Sessions        int  `gorm:"default:1"`
	MinParticipants int  `gorm:"default:1"`
	MaxParticipants int  `gorm:"default:1"`
	IsActive        bool `gorm:"default:true"`
}

func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID:       p.ID,
		Name:            p.Name,
		Type:            p.Type,
		Technique:       p.Technique,
		Price:           p.Price,
		DurationMinutes: p.DurationMinutes,
		Sessions:        p.Sessions,
	}
}
