package controllers

import (
	"net/http"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdateStudioInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateHoursInput struct {
	OpeningHours models.JSONB `json:"openingHours" binding:"required"`
}

type UpdateNotificationsInput struct {
	BookingConfirmations  *bool `json:"bookingConfirmations"`
	PaymentConfirmations  *bool `json:"paymentConfirmations"`
	WhatsAppNotifications *bool `json:"whatsAppNotifications"`
	SMSNotifications      *bool `json:"smsNotifications"`
}

func loadStudio(c *gin.Context) (*models.Studio, bool) {
	studioID, exists := c.Get("studioId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Studio ID not found in context")
		return nil, false
	}

	studioUUID, err := uuid.Parse(studioID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid studio ID format")
		return nil, false
	}

	var studio models.Studio
	if err := config.DB.First(&studio, "id = ?", studioUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Studio not found")
		return nil, false
	}
	return &studio, true
}

func GetStudioProfile(c *gin.Context) {
	studio, ok := loadStudio(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                  studio.Name,
		"address":               studio.Address,
		"openingHours":          studio.OpeningHours,
		"bookingConfirmations":  studio.BookingConfirmations,
		"paymentConfirmations":  studio.PaymentConfirmations,
		"whatsAppNotifications": studio.WhatsAppNotifications,
		"smsNotifications":      studio.SMSNotifications,
	})
}

func UpdateStudioProfile(c *gin.Context) {
	studio, ok := loadStudio(c)
	if !ok {
		return
	}

	var input UpdateStudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name != "" {
		studio.Name = input.Name
	}
	if input.Address != "" {
		studio.Address = input.Address
	}

	if err := config.DB.Save(studio).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update studio profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Studio profile updated"})
}

func UpdateOpeningHours(c *gin.Context) {
	studio, ok := loadStudio(c)
	if !ok {
		return
	}

	var input UpdateHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	studio.OpeningHours = input.OpeningHours
	if err := config.DB.Save(studio).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update opening hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Opening hours updated"})
}

func UpdateNotifications(c *gin.Context) {
	studio, ok := loadStudio(c)
	if !ok {
		return
	}

	var input UpdateNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.BookingConfirmations != nil {
		studio.BookingConfirmations = *input.BookingConfirmations
	}
	if input.PaymentConfirmations != nil {
		studio.PaymentConfirmations = *input.PaymentConfirmations
	}
	if input.WhatsAppNotifications != nil {
		studio.WhatsAppNotifications = *input.WhatsAppNotifications
	}
	if input.SMSNotifications != nil {
		studio.SMSNotifications = *input.SMSNotifications
	}

	if err := config.DB.Save(studio).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
