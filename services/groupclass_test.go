package services

import (
	"errors"
	"strings"
	"testing"

	"almaceramica-backend/models"
)

func assignments(techniques ...models.Technique) []models.GroupAssignment {
	out := make([]models.GroupAssignment, len(techniques))
	for i, technique := range techniques {
		out[i] = models.GroupAssignment{ParticipantNumber: i + 1, Technique: technique}
		if technique == models.TechniquePainting {
			out[i].SelectedPieceID = "piece"
		}
	}
	return out
}

func TestValidateGroupHardMinimumOfTwo(t *testing.T) {
	cfg := testCapacity()
	cfg.MinGroupParticipants = 1 // config allows less, the hard floor wins

	err := ValidateGroupAssignments(1, assignments(models.TechniquePottersWheel), cfg)
	if err == nil {
		t.Fatalf("ValidateGroupAssignments(1 participant) = nil, want OutOfRangeError")
	}

	var rangeErr *OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error type = %T, want *OutOfRangeError", err)
	}
	if !strings.Contains(err.Error(), "mínimo 2") {
		t.Errorf("error message = %q, want minimum-2 message", err.Error())
	}
}

func TestValidateGroupMaximum(t *testing.T) {
	cfg := testCapacity()
	cfg.MaxGroupParticipants = 4

	err := ValidateGroupAssignments(5, nil, cfg)
	var rangeErr *OutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("ValidateGroupAssignments(5, max 4) error = %v, want *OutOfRangeError", err)
	}
}

func TestValidateGroupCapacityExceeded(t *testing.T) {
	nine := make([]models.Technique, 9)
	for i := range nine {
		nine[i] = models.TechniquePottersWheel
	}

	err := ValidateGroupAssignments(9, assignments(nine...), testCapacity())
	if err == nil {
		t.Fatalf("9 participants on the wheel with limit 8: err = nil, want CapacityExceededError")
	}

	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("error type = %T, want *CapacityExceededError", err)
	}
	if capErr.Technique != models.TechniquePottersWheel {
		t.Errorf("capErr.Technique = %v, want potters_wheel", capErr.Technique)
	}
	if capErr.Count != 9 || capErr.Limit != 8 {
		t.Errorf("capErr = (count %d, limit %d), want (9, 8)", capErr.Count, capErr.Limit)
	}
}

func TestValidateGroupMissingPiece(t *testing.T) {
	list := assignments(models.TechniquePottersWheel, models.TechniquePainting)
	list[1].SelectedPieceID = ""

	err := ValidateGroupAssignments(2, list, testCapacity())
	var pieceErr *MissingPieceError
	if !errors.As(err, &pieceErr) {
		t.Fatalf("painting without piece: error = %v, want *MissingPieceError", err)
	}
	if pieceErr.ParticipantNumber != 2 {
		t.Errorf("pieceErr.ParticipantNumber = %d, want 2", pieceErr.ParticipantNumber)
	}
}

func TestValidateGroupPassingSetRespectsLimits(t *testing.T) {
	cfg := testCapacity()
	list := assignments(
		models.TechniquePottersWheel, models.TechniquePottersWheel,
		models.TechniqueHandModeling, models.TechniqueHandModeling,
		models.TechniquePainting,
	)

	if err := ValidateGroupAssignments(5, list, cfg); err != nil {
		t.Fatalf("valid assignment set rejected: %v", err)
	}

	counts := map[models.Technique]int{}
	for _, a := range list {
		counts[a.Technique]++
	}
	for technique, count := range counts {
		if count > cfg.GroupLimits[technique] {
			t.Errorf("%s count %d exceeds limit %d after validation passed", technique, count, cfg.GroupLimits[technique])
		}
	}
}

func seedGroup(n int) []models.GroupAssignment {
	out := make([]models.GroupAssignment, n)
	for i := range out {
		out[i] = models.GroupAssignment{ParticipantNumber: i + 1}
	}
	return out
}

func TestApplyPresetBalanced(t *testing.T) {
	result := ApplyPreset(PresetBalanced, seedGroup(24), testCapacity())

	counts := map[models.Technique]int{}
	for _, a := range result {
		counts[a.Technique]++
	}
	if counts[models.TechniquePottersWheel] != 8 {
		t.Errorf("balanced wheel count = %d, want 8", counts[models.TechniquePottersWheel])
	}
	if counts[models.TechniqueHandModeling] != 14 {
		t.Errorf("balanced modeling count = %d, want 14", counts[models.TechniqueHandModeling])
	}
	if counts[models.TechniquePainting] != 2 {
		t.Errorf("balanced painting count = %d, want 2", counts[models.TechniquePainting])
	}
}

func TestApplyPresetHalfWheel(t *testing.T) {
	result := ApplyPreset(PresetHalfWheel, seedGroup(5), testCapacity())

	wheel := 0
	for _, a := range result {
		if a.Technique == models.TechniquePottersWheel {
			wheel++
		}
	}
	// ceil(5/2) = 3 to the wheel
	if wheel != 3 {
		t.Errorf("half_wheel wheel count = %d, want 3", wheel)
	}
	if result[4].Technique != models.TechniqueHandModeling {
		t.Errorf("half_wheel last participant = %v, want hand_modeling", result[4].Technique)
	}
}

func TestApplyPresetAllVariants(t *testing.T) {
	for _, tc := range []struct {
		preset GroupPreset
		want   models.Technique
	}{
		{PresetAllWheel, models.TechniquePottersWheel},
		{PresetAllModeling, models.TechniqueHandModeling},
	} {
		result := ApplyPreset(tc.preset, seedGroup(4), testCapacity())
		for _, a := range result {
			if a.Technique != tc.want {
				t.Errorf("%s assigned %v, want %v", tc.preset, a.Technique, tc.want)
			}
		}
	}
}

func TestApplyPresetPreservesOrderAndPurity(t *testing.T) {
	// Out-of-order input with a painting piece that must be cleared
	input := []models.GroupAssignment{
		{ParticipantNumber: 3, Technique: models.TechniquePainting, SelectedPieceID: "bowl"},
		{ParticipantNumber: 1},
		{ParticipantNumber: 2},
	}

	result := ApplyPreset(PresetAllWheel, input, testCapacity())

	for i, a := range result {
		if a.ParticipantNumber != i+1 {
			t.Errorf("result[%d].ParticipantNumber = %d, want %d", i, a.ParticipantNumber, i+1)
		}
		if a.SelectedPieceID != "" {
			t.Errorf("result[%d] kept piece %q after leaving painting", i, a.SelectedPieceID)
		}
	}

	// Input untouched
	if input[0].Technique != models.TechniquePainting || input[0].SelectedPieceID != "bowl" {
		t.Errorf("ApplyPreset mutated its input: %+v", input[0])
	}
}
