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

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	Notes string  `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"isActive"`
}

// CreateCustomer creates a new customer for the studio
func CreateCustomer(c *gin.Context) {
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

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if email already exists for this studio
	var existingCustomer models.Customer
	if err := config.DB.Where("studio_id = ? AND email = ?", studioUUID, input.Email).
		First(&existingCustomer).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		ID:              uuid.New(),
		StudioID:        studioUUID,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		Name:            input.Name,
		Email:           input.Email,
		Notes:           input.Notes,
		IsActive:        true,
	}

	if input.Phone != nil {
		customer.Phone = *input.Phone
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers for the studio
func GetCustomers(c *gin.Context) {
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

	var customers []models.Customer
	if err := config.DB.Where("studio_id = ?", studioUUID).Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
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

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Bookings").
		Where("studio_id = ? AND id = ?", studioUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
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

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		// Check if email is being changed to another existing customer
		if customer.Email != *input.Email {
			var existingCustomer models.Customer
			if err := config.DB.Where("studio_id = ? AND email = ?", studioUUID, *input.Email).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this email already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
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

	customerUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	result := config.DB.Where("studio_id = ? AND id = ?", studioUUID, customerUUID).
		Delete(&models.Customer{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
