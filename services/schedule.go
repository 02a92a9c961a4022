package services

import (
	"fmt"
	"time"

	"almaceramica-backend/models"
	"almaceramica-backend/utils"
)

const (
	// Clients may move a class only while at least this many hours
	// remain before it starts. Admins can bypass.
	RescheduleMinHours = 72

	// A slot booked closer than this to its own start is permanently
	// non-refundable and non-reschedulable. Computed once at booking
	// creation.
	NoRefundWindowHours = 48
)

// SlotNoRefund decides, at booking-creation time, whether a slot falls
// inside the no-refund window.
func SlotNoRefund(slot models.TimeSlot, createdAt time.Time) (bool, error) {
	start, err := utils.ParseSlotStart(slot.Date, slot.Time)
	if err != nil {
		return false, err
	}
	return utils.HoursBetween(createdAt, start) < NoRefundWindowHours, nil
}

// StampNoRefund applies SlotNoRefund to every slot and reports whether
// any slot is locked, which becomes the booking's acceptedNoRefund flag.
func StampNoRefund(slots models.SlotList, createdAt time.Time) (models.SlotList, bool, error) {
	out := make(models.SlotList, len(slots))
	copy(out, slots)
	anyLocked := false
	for i := range out {
		locked, err := SlotNoRefund(out[i], createdAt)
		if err != nil {
			return nil, false, err
		}
		out[i].NoRefund = locked
		if locked {
			anyLocked = true
		}
	}
	return out, anyLocked, nil
}

// CanReschedule enforces the client-side eligibility rules. An admin
// reschedule (forceAdmin) bypasses both the 72h window and the
// no-refund lock.
func CanReschedule(slot models.TimeSlot, now time.Time, forceAdmin bool) error {
	if forceAdmin {
		return nil
	}
	if slot.NoRefund {
		return &RescheduleNotAllowedError{Reason: "esta clase no admite cambios: fue reservada con menos de 48 horas de anticipación"}
	}
	start, err := utils.ParseSlotStart(slot.Date, slot.Time)
	if err != nil {
		return err
	}
	if utils.HoursBetween(now, start) < RescheduleMinHours {
		return &RescheduleNotAllowedError{
			Reason: fmt.Sprintf("los cambios deben solicitarse con al menos %d horas de anticipación", RescheduleMinHours),
		}
	}
	return nil
}

// RescheduleSlot replaces the slot matching date+time with newSlot,
// keeping its position in the list. The input list is not mutated.
func RescheduleSlot(slots models.SlotList, date, clock string, newSlot models.TimeSlot) (models.SlotList, error) {
	idx := findSlot(slots, date, clock)
	if idx < 0 {
		return nil, &SlotNotFoundError{Date: date, Time: clock}
	}
	out := make(models.SlotList, len(slots))
	copy(out, slots)
	out[idx] = newSlot
	return out, nil
}

// RemoveSlot deletes the slot matching date+time. An emptied booking is
// never auto-deleted; the caller must ensure a standalone customer
// record survives.
func RemoveSlot(slots models.SlotList, date, clock string) (models.SlotList, error) {
	idx := findSlot(slots, date, clock)
	if idx < 0 {
		return nil, &SlotNotFoundError{Date: date, Time: clock}
	}
	out := make(models.SlotList, 0, len(slots)-1)
	out = append(out, slots[:idx]...)
	out = append(out, slots[idx+1:]...)
	return out, nil
}

func findSlot(slots models.SlotList, date, clock string) int {
	for i, s := range slots {
		if s.Date == date && s.Time == clock {
			return i
		}
	}
	return -1
}
