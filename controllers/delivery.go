// controllers/delivery.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateDeliveryInput struct {
	CustomerEmail string   `json:"customerEmail" binding:"required,email"`
	Description   string   `json:"description" binding:"required"`
	ScheduledDate string   `json:"scheduledDate" binding:"required"` // YYYY-MM-DD
	Photos        []string `json:"photos"`
}

type UpdateDeliveryInput struct {
	Description   *string   `json:"description"`
	ScheduledDate *string   `json:"scheduledDate"`
	Photos        *[]string `json:"photos"`
}

type UpdateDeliveryStatusInput struct {
	Status models.DeliveryStatus `json:"status" binding:"required,oneof=ready completed"`
}

type deliveryView struct {
	models.Delivery
	EffectiveStatus models.DeliveryStatus `json:"effectiveStatus"`
}

func viewDelivery(d models.Delivery, now time.Time) deliveryView {
	return deliveryView{Delivery: d, EffectiveStatus: d.EffectiveStatus(now)}
}

// CreateDelivery registers a finished piece waiting for pickup
func CreateDelivery(c *gin.Context) {
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

	var input CreateDeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	scheduled, err := utils.ParseDate(input.ScheduledDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduled date")
		return
	}

	delivery := models.Delivery{
		ID:            uuid.New(),
		StudioID:      studioUUID,
		CustomerEmail: input.CustomerEmail,
		Description:   input.Description,
		ScheduledDate: scheduled,
		Status:        models.DeliveryPending,
		Photos:        input.Photos,
	}

	if err := config.DB.Create(&delivery).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create delivery")
		return
	}

	c.JSON(http.StatusCreated, viewDelivery(delivery, time.Now()))
}

// GetDeliveries lists deliveries with their derived overdue state
func GetDeliveries(c *gin.Context) {
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

	query := config.DB.Where("studio_id = ?", studioUUID)
	if email := c.Query("customerEmail"); email != "" {
		query = query.Where("customer_email = ?", email)
	}

	var deliveries []models.Delivery
	if err := query.Order("scheduled_date ASC").Find(&deliveries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve deliveries")
		return
	}

	now := time.Now()
	views := make([]deliveryView, len(deliveries))
	for i, d := range deliveries {
		views[i] = viewDelivery(d, now)
	}

	c.JSON(http.StatusOK, views)
}

// UpdateDelivery edits a delivery's description, date or photos
func UpdateDelivery(c *gin.Context) {
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

	deliveryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery ID format")
		return
	}

	var input UpdateDeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var delivery models.Delivery
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, deliveryUUID).
		First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Delivery not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Description != nil {
		delivery.Description = *input.Description
	}
	if input.ScheduledDate != nil {
		scheduled, err := utils.ParseDate(*input.ScheduledDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid scheduled date")
			return
		}
		delivery.ScheduledDate = scheduled
	}
	if input.Photos != nil {
		delivery.Photos = *input.Photos
	}

	if err := config.DB.Save(&delivery).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update delivery")
		return
	}

	c.JSON(http.StatusOK, viewDelivery(delivery, time.Now()))
}

// UpdateDeliveryStatus advances the linear lifecycle:
// pending -> ready -> completed. Moves backwards are rejected.
func UpdateDeliveryStatus(c *gin.Context) {
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

	deliveryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery ID format")
		return
	}

	var input UpdateDeliveryStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var delivery models.Delivery
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, deliveryUUID).
		First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Delivery not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	switch input.Status {
	case models.DeliveryReady:
		if delivery.Status != models.DeliveryPending {
			utils.RespondWithError(c, http.StatusBadRequest, "Only pending deliveries can be marked ready")
			return
		}
		delivery.Status = models.DeliveryReady
		delivery.ReadyAt = &now
	case models.DeliveryCompleted:
		if delivery.Status != models.DeliveryReady {
			utils.RespondWithError(c, http.StatusBadRequest, "Only ready deliveries can be completed")
			return
		}
		delivery.Status = models.DeliveryCompleted
		delivery.CompletedAt = &now
		delivery.DeliveredAt = &now
	}

	if err := config.DB.Save(&delivery).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update delivery status")
		return
	}

	c.JSON(http.StatusOK, viewDelivery(delivery, now))
}

// DeleteDelivery removes a delivery record
func DeleteDelivery(c *gin.Context) {
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

	deliveryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid delivery ID format")
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, deliveryUUID).
		Delete(&models.Delivery{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete delivery")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Delivery not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delivery deleted successfully"})
}
