package services

import (
	"errors"
	"testing"
	"time"

	"almaceramica-backend/models"
)

func TestSlotNoRefundInsideWindow(t *testing.T) {
	// Class on 2024-06-10 10:00, booked 25h before
	slot := models.TimeSlot{Date: "2024-06-10", Time: "10:00"}
	createdAt := time.Date(2024, 6, 9, 9, 0, 0, 0, time.Local)

	locked, err := SlotNoRefund(slot, createdAt)
	if err != nil {
		t.Fatalf("SlotNoRefund returned error: %v", err)
	}
	if !locked {
		t.Errorf("SlotNoRefund 25h before class = false, want true")
	}
}

func TestSlotNoRefundOutsideWindow(t *testing.T) {
	slot := models.TimeSlot{Date: "2024-06-10", Time: "10:00"}
	createdAt := time.Date(2024, 6, 7, 9, 0, 0, 0, time.Local) // 73h before

	locked, err := SlotNoRefund(slot, createdAt)
	if err != nil {
		t.Fatalf("SlotNoRefund returned error: %v", err)
	}
	if locked {
		t.Errorf("SlotNoRefund 73h before class = true, want false")
	}
}

func TestStampNoRefund(t *testing.T) {
	createdAt := time.Date(2024, 6, 9, 9, 0, 0, 0, time.Local)
	slots := models.SlotList{
		{Date: "2024-06-10", Time: "10:00"}, // 25h away: locked
		{Date: "2024-06-20", Time: "10:00"}, // far out: free
	}

	stamped, anyLocked, err := StampNoRefund(slots, createdAt)
	if err != nil {
		t.Fatalf("StampNoRefund returned error: %v", err)
	}
	if !anyLocked {
		t.Errorf("StampNoRefund anyLocked = false, want true")
	}
	if !stamped[0].NoRefund {
		t.Errorf("stamped[0].NoRefund = false, want true")
	}
	if stamped[1].NoRefund {
		t.Errorf("stamped[1].NoRefund = true, want false")
	}
	if slots[0].NoRefund {
		t.Errorf("StampNoRefund mutated its input")
	}
}

func TestCanRescheduleNoRefundLock(t *testing.T) {
	slot := models.TimeSlot{Date: "2024-06-10", Time: "10:00", NoRefund: true}
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local) // months away, lock still holds

	err := CanReschedule(slot, now, false)
	var reschedErr *RescheduleNotAllowedError
	if !errors.As(err, &reschedErr) {
		t.Fatalf("client reschedule of no-refund slot: err = %v, want *RescheduleNotAllowedError", err)
	}

	if err := CanReschedule(slot, now, true); err != nil {
		t.Errorf("admin force reschedule of no-refund slot: err = %v, want nil", err)
	}
}

func TestCanRescheduleWindow(t *testing.T) {
	slot := models.TimeSlot{Date: "2024-06-10", Time: "10:00"}

	// 71h before: rejected for clients, allowed for admins
	now := time.Date(2024, 6, 7, 11, 0, 0, 0, time.Local)
	err := CanReschedule(slot, now, false)
	var reschedErr *RescheduleNotAllowedError
	if !errors.As(err, &reschedErr) {
		t.Fatalf("client reschedule 71h before: err = %v, want *RescheduleNotAllowedError", err)
	}
	if err := CanReschedule(slot, now, true); err != nil {
		t.Errorf("admin reschedule 71h before: err = %v, want nil", err)
	}

	// 73h before: allowed
	now = time.Date(2024, 6, 7, 9, 0, 0, 0, time.Local)
	if err := CanReschedule(slot, now, false); err != nil {
		t.Errorf("client reschedule 73h before: err = %v, want nil", err)
	}
}

func TestRescheduleSlotRoundTrip(t *testing.T) {
	original := models.SlotList{
		{Date: "2024-06-10", Time: "10:00", Technique: models.TechniquePottersWheel},
		{Date: "2024-06-17", Time: "10:00", Technique: models.TechniquePottersWheel},
	}
	slotA := original[0]
	slotB := models.TimeSlot{Date: "2024-06-12", Time: "16:00", Technique: models.TechniquePottersWheel}

	moved, err := RescheduleSlot(original, slotA.Date, slotA.Time, slotB)
	if err != nil {
		t.Fatalf("RescheduleSlot A->B: %v", err)
	}
	if moved[0] != slotB {
		t.Errorf("moved[0] = %+v, want %+v", moved[0], slotB)
	}

	back, err := RescheduleSlot(moved, slotB.Date, slotB.Time, slotA)
	if err != nil {
		t.Fatalf("RescheduleSlot B->A: %v", err)
	}

	if len(back) != len(original) {
		t.Fatalf("round-trip length = %d, want %d", len(back), len(original))
	}
	for i := range original {
		if back[i] != original[i] {
			t.Errorf("round-trip slot %d = %+v, want %+v", i, back[i], original[i])
		}
	}
}

func TestRescheduleSlotNotFound(t *testing.T) {
	slots := models.SlotList{{Date: "2024-06-10", Time: "10:00"}}

	_, err := RescheduleSlot(slots, "2024-06-11", "10:00", models.TimeSlot{Date: "2024-06-12", Time: "10:00"})
	var slotErr *SlotNotFoundError
	if !errors.As(err, &slotErr) {
		t.Fatalf("RescheduleSlot of missing slot: err = %v, want *SlotNotFoundError", err)
	}
}

func TestRemoveSlot(t *testing.T) {
	slots := models.SlotList{
		{Date: "2024-06-10", Time: "10:00"},
		{Date: "2024-06-17", Time: "10:00"},
	}

	remaining, err := RemoveSlot(slots, "2024-06-10", "10:00")
	if err != nil {
		t.Fatalf("RemoveSlot: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("len(remaining) = %d, want 1", len(remaining))
	}
	if remaining[0].Date != "2024-06-17" {
		t.Errorf("remaining[0].Date = %s, want 2024-06-17", remaining[0].Date)
	}
	if len(slots) != 2 {
		t.Errorf("RemoveSlot mutated its input: len = %d, want 2", len(slots))
	}

	empty, err := RemoveSlot(remaining, "2024-06-17", "10:00")
	if err != nil {
		t.Fatalf("RemoveSlot last slot: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len after removing last slot = %d, want 0", len(empty))
	}
}
