// controllers/availability.go
package controllers

import (
	"net/http"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/services"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSlotAvailability reports per-technique occupancy for one date+time,
// including pending-payment holds.
func GetSlotAvailability(c *gin.Context) {
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

	date := c.Query("date")
	clock := c.Query("time")
	if date == "" || clock == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date and time query parameters are required")
		return
	}
	if _, err := utils.ParseSlotStart(date, clock); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time format")
		return
	}

	bookings, err := bookingsForSlot(config.DB, studioUUID, date, clock)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	avail := services.ComputeSlotAvailability(date, clock, bookings, Capacity)
	c.JSON(http.StatusOK, avail)
}

// PreviewGroupAssignments applies a preset distribution and validates
// the resulting assignment set without persisting anything.
func PreviewGroupAssignments(c *gin.Context) {
	var input struct {
		Preset       services.GroupPreset `json:"preset" binding:"required,oneof=balanced all_modeling all_wheel half_wheel"`
		Participants int                  `json:"participants" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	list := make([]models.GroupAssignment, input.Participants)
	for i := range list {
		list[i] = models.GroupAssignment{ParticipantNumber: i + 1}
	}
	result := services.ApplyPreset(input.Preset, list, Capacity)

	if err := services.ValidateGroupAssignments(input.Participants, result, Capacity); err != nil {
		respondBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": result})
}
