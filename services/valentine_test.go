package services

import (
	"errors"
	"testing"

	"almaceramica-backend/models"
)

func regs(workshop models.ValentineWorkshop, participantCounts ...int) []models.ValentineRegistration {
	out := make([]models.ValentineRegistration, len(participantCounts))
	for i, n := range participantCounts {
		out[i] = models.ValentineRegistration{
			Workshop:     workshop,
			Participants: n,
			Status:       models.ValentinePending,
		}
	}
	return out
}

func TestWorkshopAvailability(t *testing.T) {
	existing := regs(models.WorkshopTorno, 2, 2, 1)

	avail := ComputeWorkshopAvailability(models.WorkshopTorno, existing, testCapacity())

	if avail.Used != 5 {
		t.Errorf("Used = %d, want 5", avail.Used)
	}
	if avail.Remaining != 3 {
		t.Errorf("Remaining = %d, want 3", avail.Remaining)
	}
	if avail.Total != 8 {
		t.Errorf("Total = %d, want 8", avail.Total)
	}
}

func TestWorkshopAvailabilityIgnoresCancelled(t *testing.T) {
	existing := regs(models.WorkshopTorno, 2, 2)
	existing[1].Status = models.ValentineCancelled

	avail := ComputeWorkshopAvailability(models.WorkshopTorno, existing, testCapacity())

	if avail.Used != 2 {
		t.Errorf("Used = %d, want 2 (cancelled excluded)", avail.Used)
	}
}

func TestCheckWorkshopCapacityInsufficient(t *testing.T) {
	// 7 of 8 seats used, a couple tries to register
	existing := regs(models.WorkshopTorno, 2, 2, 2, 1)

	err := CheckWorkshopCapacity(models.WorkshopTorno, 2, existing, testCapacity())
	if err == nil {
		t.Fatalf("CheckWorkshopCapacity(2 seats, 1 left) = nil, want WorkshopFullError")
	}

	var fullErr *WorkshopFullError
	if !errors.As(err, &fullErr) {
		t.Fatalf("error type = %T, want *WorkshopFullError", err)
	}
	if fullErr.Remaining != 1 {
		t.Errorf("fullErr.Remaining = %d, want 1", fullErr.Remaining)
	}
	if ErrorCode(err) != "INSUFFICIENT_CAPACITY" {
		t.Errorf("ErrorCode = %q, want INSUFFICIENT_CAPACITY", ErrorCode(err))
	}

	if err := CheckWorkshopCapacity(models.WorkshopTorno, 1, existing, testCapacity()); err != nil {
		t.Errorf("CheckWorkshopCapacity(1 seat, 1 left) = %v, want nil", err)
	}
}

func TestValentineStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to models.ValentineStatus
		want     bool
	}{
		{models.ValentinePending, models.ValentineConfirmed, true},
		{models.ValentinePending, models.ValentineCancelled, true},
		{models.ValentinePending, models.ValentineAttended, false},
		{models.ValentineConfirmed, models.ValentineAttended, true},
		{models.ValentineConfirmed, models.ValentinePending, false},
		{models.ValentineCancelled, models.ValentineConfirmed, false},
		{models.ValentineAttended, models.ValentineCancelled, false},
	}

	for _, tc := range cases {
		if got := CanTransitionValentine(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionValentine(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
