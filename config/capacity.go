package config

import (
	"os"
	"strconv"

	"almaceramica-backend/models"
)

// CapacityConfig carries the studio's business limits. They rarely change
// but must stay injectable so tests and seasonal overrides can vary them.
type CapacityConfig struct {
	// Studio-wide seats per technique for a single date+time slot.
	SlotLimits map[models.Technique]int

	// Per-technique ceilings for a single group experience.
	GroupLimits map[models.Technique]int

	// Group experience size bounds. Two people is the hard floor
	// regardless of what a product allows.
	MinGroupParticipants int
	MaxGroupParticipants int

	// Seats per Valentine workshop.
	WorkshopLimits map[models.ValentineWorkshop]int
}

func DefaultCapacity() CapacityConfig {
	return CapacityConfig{
		SlotLimits: map[models.Technique]int{
			models.TechniquePottersWheel: 8,
			models.TechniqueHandModeling: 14,
			models.TechniquePainting:     8,
		},
		GroupLimits: map[models.Technique]int{
			models.TechniquePottersWheel: 8,
			models.TechniqueHandModeling: 14,
			models.TechniquePainting:     8,
		},
		MinGroupParticipants: 2,
		MaxGroupParticipants: 24,
		WorkshopLimits: map[models.ValentineWorkshop]int{
			models.WorkshopTorno:    8,
			models.WorkshopModelado: 10,
			models.WorkshopPintura:  8,
		},
	}
}

// LoadCapacity returns the defaults with any env overrides applied.
func LoadCapacity() CapacityConfig {
	cfg := DefaultCapacity()
	cfg.SlotLimits[models.TechniquePottersWheel] = envInt("CAPACITY_WHEEL", cfg.SlotLimits[models.TechniquePottersWheel])
	cfg.SlotLimits[models.TechniqueHandModeling] = envInt("CAPACITY_MODELING", cfg.SlotLimits[models.TechniqueHandModeling])
	cfg.SlotLimits[models.TechniquePainting] = envInt("CAPACITY_PAINTING", cfg.SlotLimits[models.TechniquePainting])
	cfg.MaxGroupParticipants = envInt("CAPACITY_GROUP_MAX", cfg.MaxGroupParticipants)
	return cfg
}

func envInt(key string, fallback int) int {
	if env := os.Getenv(key); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
