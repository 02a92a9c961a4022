package services

import (
	"almaceramica-backend/config"
	"almaceramica-backend/models"
)

type TechniqueAvailability struct {
	Technique   models.Technique `json:"technique"`
	Occupied    int              `json:"occupied"`
	Available   int              `json:"available"`
	Total       int              `json:"total"`
	IsAvailable bool             `json:"isAvailable"`
}

// SlotSummary separates confirmed seats from pending-payment holds so
// staff can tell them apart. Unpaid bookings still occupy capacity.
type SlotSummary struct {
	Paid   int `json:"paid"`
	Unpaid int `json:"unpaid"`
	Total  int `json:"total"`
}

type SlotAvailability struct {
	Date       string                                     `json:"date"`
	Time       string                                     `json:"time"`
	Techniques map[models.Technique]TechniqueAvailability `json:"techniques"`
	Summary    SlotSummary                                `json:"summary"`
}

// slotTechnique resolves which pool one participant occupies: the slot's
// explicit technique wins, then the booking's product snapshot.
func slotTechnique(b *models.Booking, slot models.TimeSlot) models.Technique {
	if slot.Technique != "" {
		return slot.Technique
	}
	return b.Product.Technique
}

// ComputeSlotAvailability counts occupants per technique for one
// date+time across all bookings, against the configured pools. Group
// bookings occupy per participant assignment; everything else occupies
// Participants seats in a single pool.
func ComputeSlotAvailability(date, clock string, bookings []models.Booking, cfg config.CapacityConfig) SlotAvailability {
	occupied := map[models.Technique]int{}
	summary := SlotSummary{}

	for i := range bookings {
		b := &bookings[i]
		for _, slot := range b.Slots {
			if slot.Date != date || slot.Time != clock {
				continue
			}

			if len(b.GroupAssignments) > 0 {
				for _, a := range b.GroupAssignments {
					occupied[a.Technique]++
				}
			} else {
				participants := b.Participants
				if participants < 1 {
					participants = 1
				}
				occupied[slotTechnique(b, slot)] += participants
			}

			summary.Total++
			if b.IsPaid {
				summary.Paid++
			} else {
				summary.Unpaid++
			}
			break // one booking occupies a slot once
		}
	}

	techniques := make(map[models.Technique]TechniqueAvailability, len(cfg.SlotLimits))
	for technique, limit := range cfg.SlotLimits {
		available := limit - occupied[technique]
		if available < 0 {
			available = 0
		}
		techniques[technique] = TechniqueAvailability{
			Technique:   technique,
			Occupied:    occupied[technique],
			Available:   available,
			Total:       limit,
			IsAvailable: available > 0,
		}
	}

	return SlotAvailability{
		Date:       date,
		Time:       clock,
		Techniques: techniques,
		Summary:    summary,
	}
}

// HasCapacityFor reports whether a slot can still take seats in one
// technique's pool, used as the re-check before inserting a booking.
func HasCapacityFor(avail SlotAvailability, technique models.Technique, seats int) error {
	t, ok := avail.Techniques[technique]
	if !ok {
		return &CapacityExceededError{Technique: technique, Count: seats, Limit: 0}
	}
	if seats > t.Available {
		return &CapacityExceededError{Technique: technique, Count: t.Occupied + seats, Limit: t.Total}
	}
	return nil
}
