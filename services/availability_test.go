package services

import (
	"testing"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
)

func testCapacity() config.CapacityConfig {
	return config.DefaultCapacity()
}

func bookingWithSlot(date, clock string, technique models.Technique, participants int, paid bool) models.Booking {
	return models.Booking{
		Participants: participants,
		IsPaid:       paid,
		Product:      models.ProductSnapshot{Technique: technique},
		Slots: models.SlotList{
			{Date: date, Time: clock, Technique: technique},
		},
	}
}

func TestComputeSlotAvailabilityEmpty(t *testing.T) {
	avail := ComputeSlotAvailability("2026-02-10", "18:00", nil, testCapacity())

	wheel := avail.Techniques[models.TechniquePottersWheel]
	if wheel.Available != 8 || wheel.Total != 8 || !wheel.IsAvailable {
		t.Errorf("empty slot wheel = %+v, want available 8 of 8", wheel)
	}
	modeling := avail.Techniques[models.TechniqueHandModeling]
	if modeling.Available != 14 {
		t.Errorf("empty slot modeling.Available = %d, want 14", modeling.Available)
	}
	if avail.Summary.Total != 0 {
		t.Errorf("empty slot Summary.Total = %d, want 0", avail.Summary.Total)
	}
}

func TestComputeSlotAvailabilityCountsOccupants(t *testing.T) {
	bookings := []models.Booking{
		bookingWithSlot("2026-02-10", "18:00", models.TechniquePottersWheel, 3, true),
		bookingWithSlot("2026-02-10", "18:00", models.TechniquePottersWheel, 2, false),
		bookingWithSlot("2026-02-10", "18:00", models.TechniquePainting, 1, true),
		// Different time, must not count
		bookingWithSlot("2026-02-10", "20:00", models.TechniquePottersWheel, 4, true),
	}

	avail := ComputeSlotAvailability("2026-02-10", "18:00", bookings, testCapacity())

	wheel := avail.Techniques[models.TechniquePottersWheel]
	if wheel.Occupied != 5 {
		t.Errorf("wheel.Occupied = %d, want 5", wheel.Occupied)
	}
	if wheel.Available != 3 {
		t.Errorf("wheel.Available = %d, want 3", wheel.Available)
	}
	painting := avail.Techniques[models.TechniquePainting]
	if painting.Occupied != 1 {
		t.Errorf("painting.Occupied = %d, want 1", painting.Occupied)
	}
}

func TestComputeSlotAvailabilityUnpaidStillOccupies(t *testing.T) {
	bookings := []models.Booking{
		bookingWithSlot("2026-02-10", "18:00", models.TechniquePottersWheel, 8, false),
	}

	avail := ComputeSlotAvailability("2026-02-10", "18:00", bookings, testCapacity())

	wheel := avail.Techniques[models.TechniquePottersWheel]
	if wheel.Available != 0 || wheel.IsAvailable {
		t.Errorf("unpaid hold of 8: wheel = %+v, want full", wheel)
	}
	if avail.Summary.Unpaid != 1 || avail.Summary.Paid != 0 || avail.Summary.Total != 1 {
		t.Errorf("Summary = %+v, want 1 unpaid of 1", avail.Summary)
	}
}

func TestComputeSlotAvailabilityGroupAssignments(t *testing.T) {
	booking := models.Booking{
		Participants: 5,
		IsPaid:       true,
		Slots:        models.SlotList{{Date: "2026-02-10", Time: "18:00"}},
		GroupAssignments: models.AssignmentList{
			{ParticipantNumber: 1, Technique: models.TechniquePottersWheel},
			{ParticipantNumber: 2, Technique: models.TechniquePottersWheel},
			{ParticipantNumber: 3, Technique: models.TechniqueHandModeling},
			{ParticipantNumber: 4, Technique: models.TechniquePainting, SelectedPieceID: "mug"},
			{ParticipantNumber: 5, Technique: models.TechniquePainting, SelectedPieceID: "vase"},
		},
	}

	avail := ComputeSlotAvailability("2026-02-10", "18:00", []models.Booking{booking}, testCapacity())

	if got := avail.Techniques[models.TechniquePottersWheel].Occupied; got != 2 {
		t.Errorf("wheel.Occupied = %d, want 2", got)
	}
	if got := avail.Techniques[models.TechniqueHandModeling].Occupied; got != 1 {
		t.Errorf("modeling.Occupied = %d, want 1", got)
	}
	if got := avail.Techniques[models.TechniquePainting].Occupied; got != 2 {
		t.Errorf("painting.Occupied = %d, want 2", got)
	}
}

func TestComputeSlotAvailabilityDefaultsToProductTechnique(t *testing.T) {
	booking := models.Booking{
		Participants: 2,
		Product:      models.ProductSnapshot{Technique: models.TechniqueHandModeling},
		Slots:        models.SlotList{{Date: "2026-02-10", Time: "18:00"}}, // no slot technique
	}

	avail := ComputeSlotAvailability("2026-02-10", "18:00", []models.Booking{booking}, testCapacity())

	if got := avail.Techniques[models.TechniqueHandModeling].Occupied; got != 2 {
		t.Errorf("modeling.Occupied = %d, want 2", got)
	}
}

func TestHasCapacityFor(t *testing.T) {
	bookings := []models.Booking{
		bookingWithSlot("2026-02-10", "18:00", models.TechniquePottersWheel, 7, true),
	}
	avail := ComputeSlotAvailability("2026-02-10", "18:00", bookings, testCapacity())

	if err := HasCapacityFor(avail, models.TechniquePottersWheel, 1); err != nil {
		t.Errorf("HasCapacityFor(wheel, 1) with 7/8 used = %v, want nil", err)
	}

	err := HasCapacityFor(avail, models.TechniquePottersWheel, 2)
	if err == nil {
		t.Fatalf("HasCapacityFor(wheel, 2) with 7/8 used = nil, want CapacityExceededError")
	}
	if ErrorCode(err) != "CAPACITY_FULL" {
		t.Errorf("ErrorCode = %q, want CAPACITY_FULL", ErrorCode(err))
	}
}

func TestComputeSlotAvailabilityRespectsInjectedLimits(t *testing.T) {
	cfg := testCapacity()
	cfg.SlotLimits[models.TechniquePottersWheel] = 2

	bookings := []models.Booking{
		bookingWithSlot("2026-02-10", "18:00", models.TechniquePottersWheel, 2, true),
	}
	avail := ComputeSlotAvailability("2026-02-10", "18:00", bookings, cfg)

	wheel := avail.Techniques[models.TechniquePottersWheel]
	if wheel.Total != 2 || wheel.IsAvailable {
		t.Errorf("with limit 2 and 2 occupied: wheel = %+v, want full", wheel)
	}
}
