package services

import (
	"almaceramica-backend/config"
	"almaceramica-backend/models"
)

type WorkshopAvailability struct {
	Workshop  models.ValentineWorkshop `json:"workshop"`
	Used      int                      `json:"used"`
	Remaining int                      `json:"remaining"`
	Total     int                      `json:"total"`
}

// ComputeWorkshopAvailability sums participants over non-cancelled
// registrations for one workshop.
func ComputeWorkshopAvailability(workshop models.ValentineWorkshop, regs []models.ValentineRegistration, cfg config.CapacityConfig) WorkshopAvailability {
	used := 0
	for i := range regs {
		if regs[i].Workshop != workshop || !regs[i].CountsAgainstCapacity() {
			continue
		}
		used += regs[i].Participants
	}
	total := cfg.WorkshopLimits[workshop]
	remaining := total - used
	if remaining < 0 {
		remaining = 0
	}
	return WorkshopAvailability{Workshop: workshop, Used: used, Remaining: remaining, Total: total}
}

// CheckWorkshopCapacity rejects a registration that does not fit in the
// workshop's remaining seats.
func CheckWorkshopCapacity(workshop models.ValentineWorkshop, participants int, regs []models.ValentineRegistration, cfg config.CapacityConfig) error {
	avail := ComputeWorkshopAvailability(workshop, regs, cfg)
	if participants > avail.Remaining {
		return &WorkshopFullError{Workshop: workshop, Requested: participants, Remaining: avail.Remaining}
	}
	return nil
}

// ValentineStatusTransitions is the linear set of admin status moves.
var ValentineStatusTransitions = map[models.ValentineStatus][]models.ValentineStatus{
	models.ValentinePending:   {models.ValentineConfirmed, models.ValentineCancelled},
	models.ValentineConfirmed: {models.ValentineAttended, models.ValentineCancelled},
	models.ValentineCancelled: {},
	models.ValentineAttended:  {},
}

func CanTransitionValentine(from, to models.ValentineStatus) bool {
	for _, allowed := range ValentineStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
