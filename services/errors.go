package services

import (
	"errors"
	"fmt"

	"almaceramica-backend/models"
)

// Business-rule violations come back as typed errors so controllers can
// map them to 400 responses with a stable errorCode, while unexpected
// failures stay generic 500s. User-facing messages are Spanish.

type OutOfRangeError struct {
	Participants int
	Min          int
	Max          int
}

func (e *OutOfRangeError) Error() string {
	if e.Participants < e.Min {
		return fmt.Sprintf("se requieren mínimo %d personas", e.Min)
	}
	return fmt.Sprintf("se permiten máximo %d personas", e.Max)
}

type CapacityExceededError struct {
	Technique models.Technique
	Count     int
	Limit     int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacidad excedida para %s: %d asignados, límite %d", e.Technique, e.Count, e.Limit)
}

type MissingPieceError struct {
	ParticipantNumber int
}

func (e *MissingPieceError) Error() string {
	return fmt.Sprintf("el participante %d debe seleccionar una pieza para pintar", e.ParticipantNumber)
}

type WorkshopFullError struct {
	Workshop  models.ValentineWorkshop
	Requested int
	Remaining int
}

func (e *WorkshopFullError) Error() string {
	return fmt.Sprintf("no hay cupo suficiente en %s: quedan %d lugares", e.Workshop, e.Remaining)
}

type RescheduleNotAllowedError struct {
	Reason string
}

func (e *RescheduleNotAllowedError) Error() string {
	return e.Reason
}

type SlotNotFoundError struct {
	Date string
	Time string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("no existe una clase el %s a las %s en esta reserva", e.Date, e.Time)
}

// ErrorCode returns the stable machine-readable code for a business
// error, or "" for anything unexpected.
func ErrorCode(err error) string {
	var capErr *CapacityExceededError
	var fullErr *WorkshopFullError
	var rangeErr *OutOfRangeError
	var pieceErr *MissingPieceError
	var reschedErr *RescheduleNotAllowedError
	var slotErr *SlotNotFoundError
	switch {
	case errors.As(err, &capErr):
		return "CAPACITY_FULL"
	case errors.As(err, &fullErr):
		return "INSUFFICIENT_CAPACITY"
	case errors.As(err, &rangeErr):
		return "PARTICIPANTS_OUT_OF_RANGE"
	case errors.As(err, &pieceErr):
		return "MISSING_PIECE_SELECTION"
	case errors.As(err, &reschedErr):
		return "RESCHEDULE_NOT_ALLOWED"
	case errors.As(err, &slotErr):
		return "SLOT_NOT_FOUND"
	}
	return ""
}
