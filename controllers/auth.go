package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email         string       `json:"email" binding:"required,email"`
	Phone         string       `json:"phone" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	Password      string       `json:"password" binding:"required,min=8"`
	StudioName    string       `json:"studioName" binding:"required"`
	StudioAddress string       `json:"studioAddress"`
	OpeningHours  models.JSONB `json:"openingHours"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

// Register bootstraps a studio and its owner account.
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if email or phone already exists
	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	studio := models.Studio{
		ID:                   uuid.New(),
		Name:                 input.StudioName,
		Address:              input.StudioAddress,
		OpeningHours:         input.OpeningHours,
		BookingConfirmations: true,
		PaymentConfirmations: true,
	}

	// Set default opening hours if not provided
	if studio.OpeningHours == nil {
		studio.OpeningHours = models.JSONB{
			"monday":    map[string]interface{}{"open": "10:00", "close": "20:00", "closed": false},
			"tuesday":   map[string]interface{}{"open": "10:00", "close": "20:00", "closed": false},
			"wednesday": map[string]interface{}{"open": "10:00", "close": "20:00", "closed": false},
			"thursday":  map[string]interface{}{"open": "10:00", "close": "20:00", "closed": false},
			"friday":    map[string]interface{}{"open": "10:00", "close": "21:00", "closed": false},
			"saturday":  map[string]interface{}{"open": "10:00", "close": "21:00", "closed": false},
			"sunday":    map[string]interface{}{"open": "11:00", "close": "15:00", "closed": true},
		}
	}

	newUser := models.User{
		Email:    input.Email,
		Phone:    input.Phone,
		Name:     input.Name,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     "owner",
		StudioID: studio.ID,
	}

	tx := config.DB.Begin()
	if err := tx.Create(&studio).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create studio")
		return
	}
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	tx.Commit()

	token, err := utils.GenerateToken(newUser.ID.String(), studio.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":         newUser.ID,
			"email":      newUser.Email,
			"phone":      newUser.Phone,
			"studioName": studio.Name,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	query := config.DB.Where("email = ? OR phone = ?", identifier, identifier)
	result := query.First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.StudioID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var user models.User
	if err := config.DB.Preload("Studio").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"name":       user.Name,
			"role":       user.Role,
			"studioName": user.Studio.Name,
		},
	})
}
