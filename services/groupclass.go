package services

import (
	"sort"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
)

// Minimum for a group experience even when a product config allows less.
const hardMinGroupParticipants = 2

// ValidateGroupAssignments checks a group experience's per-participant
// technique assignments against the configured ceilings. Returns the
// first violation as a typed error, nil when the group is bookable.
func ValidateGroupAssignments(totalParticipants int, assignments []models.GroupAssignment, cfg config.CapacityConfig) error {
	min := cfg.MinGroupParticipants
	if min < hardMinGroupParticipants {
		min = hardMinGroupParticipants
	}
	if totalParticipants < min || totalParticipants > cfg.MaxGroupParticipants {
		return &OutOfRangeError{Participants: totalParticipants, Min: min, Max: cfg.MaxGroupParticipants}
	}

	counts := map[models.Technique]int{}
	for _, a := range assignments {
		counts[a.Technique]++
	}
	for technique, count := range counts {
		limit := cfg.GroupLimits[technique]
		if count > limit {
			return &CapacityExceededError{Technique: technique, Count: count, Limit: limit}
		}
	}

	for _, a := range assignments {
		if a.Technique == models.TechniquePainting && a.SelectedPieceID == "" {
			return &MissingPieceError{ParticipantNumber: a.ParticipantNumber}
		}
	}

	return nil
}

type GroupPreset string

const (
	PresetBalanced    GroupPreset = "balanced"
	PresetAllModeling GroupPreset = "all_modeling"
	PresetAllWheel    GroupPreset = "all_wheel"
	PresetHalfWheel   GroupPreset = "half_wheel"
)

// ApplyPreset redistributes techniques over an assignment list. Pure:
// the input is not mutated, participantNumber order is preserved, and a
// selected piece survives only if the participant stays on painting.
func ApplyPreset(preset GroupPreset, assignments []models.GroupAssignment, cfg config.CapacityConfig) []models.GroupAssignment {
	out := make([]models.GroupAssignment, len(assignments))
	copy(out, assignments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ParticipantNumber < out[j].ParticipantNumber
	})

	wheelCap := cfg.GroupLimits[models.TechniquePottersWheel]
	modelingCap := cfg.GroupLimits[models.TechniqueHandModeling]

	for i := range out {
		var technique models.Technique
		switch preset {
		case PresetAllModeling:
			technique = models.TechniqueHandModeling
		case PresetAllWheel:
			technique = models.TechniquePottersWheel
		case PresetHalfWheel:
			// ceil(N/2) to the wheel, the rest to modeling
			if i < (len(out)+1)/2 {
				technique = models.TechniquePottersWheel
			} else {
				technique = models.TechniqueHandModeling
			}
		default: // balanced: wheel first, then modeling, remainder paints
			if i < wheelCap {
				technique = models.TechniquePottersWheel
			} else if i < wheelCap+modelingCap {
				technique = models.TechniqueHandModeling
			} else {
				technique = models.TechniquePainting
			}
		}

		out[i].Technique = technique
		if technique != models.TechniquePainting {
			out[i].SelectedPieceID = ""
		}
	}

	return out
}
