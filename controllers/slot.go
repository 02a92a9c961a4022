// controllers/slot.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/services"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RescheduleSlotInput struct {
	Date                 string    `json:"date" binding:"required"`
	Time                 string    `json:"time" binding:"required"`
	NewSlot              SlotInput `json:"newSlot" binding:"required"`
	ForceAdminReschedule bool      `json:"forceAdminReschedule"`
}

type DeleteSlotInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// RescheduleBookingSlot replaces one slot in a booking. Clients are held
// to the 72h window and the no-refund lock; admins can force past both.
func RescheduleBookingSlot(c *gin.Context) {
	studioID, exists := c.Get("studioId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Studio ID not found in context")
		return
	}

	studioUUID, err := uuid.Parse(studioID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid studio ID format")
		return
	}

	var input RescheduleSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	idx := -1
	for i, s := range booking.Slots {
		if s.Date == input.Date && s.Time == input.Time {
			idx = i
			break
		}
	}
	if idx < 0 {
		respondBusinessError(c, &services.SlotNotFoundError{Date: input.Date, Time: input.Time})
		return
	}

	if err := services.CanReschedule(booking.Slots[idx], time.Now(), input.ForceAdminReschedule); err != nil {
		respondBusinessError(c, err)
		return
	}

	if _, err := utils.ParseSlotStart(input.NewSlot.Date, input.NewSlot.Time); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid new slot date/time")
		return
	}

	newSlot := models.TimeSlot{
		Date:         input.NewSlot.Date,
		Time:         input.NewSlot.Time,
		InstructorID: input.NewSlot.InstructorID,
		Technique:    input.NewSlot.Technique,
		NoRefund:     booking.Slots[idx].NoRefund, // the lock follows the slot
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Re-check the target slot's capacity before moving seats into it
	existing, err := bookingsForSlot(tx, studioUUID, newSlot.Date, newSlot.Time)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	avail := services.ComputeSlotAvailability(newSlot.Date, newSlot.Time, existing, Capacity)
	technique := newSlot.Technique
	if technique == "" {
		technique = booking.Product.Technique
	}
	if technique != "" && len(booking.GroupAssignments) == 0 {
		if err := services.HasCapacityFor(avail, technique, booking.Participants); err != nil {
			tx.Rollback()
			respondBusinessError(c, err)
			return
		}
	}

	slots, err := services.RescheduleSlot(booking.Slots, input.Date, input.Time, newSlot)
	if err != nil {
		tx.Rollback()
		respondBusinessError(c, err)
		return
	}
	booking.Slots = slots

	if err := tx.Save(booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reschedule slot")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, booking)
}

// DeleteBookingSlot removes one slot. A booking emptied of slots is kept,
// and a standalone customer record is ensured so the customer is never
// orphaned from the system.
func DeleteBookingSlot(c *gin.Context) {
	studioID, exists := c.Get("studioId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Studio ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	studioUUID, err := uuid.Parse(studioID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid studio ID format")
		return
	}

	var input DeleteSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	slots, err := services.RemoveSlot(booking.Slots, input.Date, input.Time)
	if err != nil {
		respondBusinessError(c, err)
		return
	}
	booking.Slots = slots

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if len(booking.Slots) == 0 {
		customerID, err := ensureStandaloneCustomer(tx, studioUUID, uuid.Must(uuid.Parse(userID.(string))), booking)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to preserve customer record")
			return
		}
		if booking.CustomerID == nil {
			booking.CustomerID = &customerID
		}
	}

	if err := tx.Save(booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete slot")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, booking)
}

// ensureStandaloneCustomer keeps a customer record alive for a booking
// that just lost its last slot, creating it from the booking's contact
// snapshot when none exists.
func ensureStandaloneCustomer(tx *gorm.DB, studioUUID, createdBy uuid.UUID, booking *models.Booking) (uuid.UUID, error) {
	if booking.CustomerID != nil {
		return *booking.CustomerID, nil
	}

	var existing models.Customer
	err := tx.Where("studio_id = ? AND email = ?", studioUUID, booking.UserInfo.Email).
		First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	customer := models.Customer{
		ID:              uuid.New(),
		StudioID:        studioUUID,
		CreatedByUserID: createdBy,
		Name:            booking.UserInfo.Name,
		Email:           booking.UserInfo.Email,
		Phone:           booking.UserInfo.Phone,
		IsActive:        true,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return uuid.Nil, err
	}
	return customer.ID, nil
}
