// controllers/product.go
package controllers

import (
	"errors"
	"net/http"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name            string             `json:"name" binding:"required"`
	Description     string             `json:"description"`
	Type            models.ProductType `json:"type" binding:"required,oneof=single_class class_package introductory_class group_class open_studio_subscription couples_experience custom_group_experience"`
	Technique       models.Technique   `json:"technique" binding:"omitempty,oneof=potters_wheel hand_modeling painting"`
	Price           float64            `json:"price" binding:"required,min=0"`
	DurationMinutes int                `json:"durationMinutes" binding:"min=0"`
	Sessions        int                `json:"sessions" binding:"min=0"`
	MinParticipants int                `json:"minParticipants" binding:"min=0"`
	MaxParticipants int                `json:"maxParticipants" binding:"min=0"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name            *string           `json:"name"`
	Description     *string           `json:"description"`
	Technique       *models.Technique `json:"technique" binding:"omitempty,oneof=potters_wheel hand_modeling painting"`
	Price           *float64          `json:"price"`
	DurationMinutes *int              `json:"durationMinutes"`
	Sessions        *int              `json:"sessions"`
	MinParticipants *int              `json:"minParticipants"`
	MaxParticipants *int              `json:"maxParticipants"`
	IsActive        *bool             `json:"isActive"`
}

// CreateProduct creates a new catalog product. Existing bookings keep
// their snapshot regardless of later edits here.
func CreateProduct(c *gin.Context) {
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

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sessions := input.Sessions
	if sessions == 0 {
		sessions = 1
	}

	product := models.Product{
		ID:              uuid.New(),
		StudioID:        studioUUID,
		Name:            input.Name,
		Description:     input.Description,
		Type:            input.Type,
		Technique:       input.Technique,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Sessions:        sessions,
		MinParticipants: input.MinParticipants,
		MaxParticipants: input.MaxParticipants,
		IsActive:        true,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves all products for the studio
func GetProducts(c *gin.Context) {
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

	var products []models.Product
	if err := config.DB.Where("studio_id = ?", studioUUID).Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
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

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates an existing product
func UpdateProduct(c *gin.Context) {
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

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Technique != nil {
		product.Technique = *input.Technique
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		product.DurationMinutes = *input.DurationMinutes
	}
	if input.Sessions != nil {
		product.Sessions = *input.Sessions
	}
	if input.MinParticipants != nil {
		product.MinParticipants = *input.MinParticipants
	}
	if input.MaxParticipants != nil {
		product.MaxParticipants = *input.MaxParticipants
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog. Bookings keep their
// snapshots.
func DeleteProduct(c *gin.Context) {
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

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, productUUID).
		Delete(&models.Product{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
