// controllers/booking.go
package controllers

import (
	"encoding/json"
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

// Notifier sends customer-facing messages after state changes. Set once
// from main; a send failure never rolls back the mutation it follows.
var Notifier *services.NotificationService

// Capacity holds the studio's business limits, injected from main.
var Capacity = config.DefaultCapacity()

type SlotInput struct {
	Date         string           `json:"date" binding:"required"`
	Time         string           `json:"time" binding:"required"`
	InstructorID uuid.UUID        `json:"instructorId"`
	Technique    models.Technique `json:"technique" binding:"omitempty,oneof=potters_wheel hand_modeling painting"`
}

type PaymentInput struct {
	Amount         float64              `json:"amount" binding:"min=0"`
	Method         models.PaymentMethod `json:"method" binding:"required,oneof=cash card transfer giftcard"`
	GiftcardID     string               `json:"giftcardId"`
	GiftcardAmount float64              `json:"giftcardAmount"`
}

type CreateBookingInput struct {
	ProductID        uuid.UUID                `json:"productId" binding:"required"`
	CustomerID       *uuid.UUID               `json:"customerId"`
	UserInfo         models.UserInfo          `json:"userInfo" binding:"required"`
	Slots            []SlotInput              `json:"slots" binding:"required,min=1"`
	Participants     int                      `json:"participants" binding:"min=1"`
	GroupAssignments []models.GroupAssignment `json:"groupAssignments"`
	Price            *float64                 `json:"price"` // override; defaults to snapshot price * participants
	ClientNote       string                   `json:"clientNote"`
	ExpiresAt        *time.Time               `json:"expiresAt"`
	Payments         []PaymentInput           `json:"payments"`
}

type UpdateBookingInput struct {
	CustomerID *uuid.UUID `json:"customerId"`
	ClientNote *string    `json:"clientNote"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	Price      *float64   `json:"price"`
}

// bookingsForSlot loads every booking holding a slot at date+time, via
// jsonb containment on the denormalized slots column.
func bookingsForSlot(tx *gorm.DB, studioUUID uuid.UUID, date, clock string) ([]models.Booking, error) {
	cond, err := json.Marshal([]map[string]string{{"date": date, "time": clock}})
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err = tx.Where("studio_id = ? AND slots @> ?::jsonb", studioUUID, string(cond)).
		Find(&bookings).Error
	return bookings, err
}

// checkSlotCapacity re-checks that every requested slot still fits,
// inside the insert transaction so the check and the write share a
// connection.
func checkSlotCapacity(tx *gorm.DB, studioUUID uuid.UUID, booking *models.Booking) error {
	for _, slot := range booking.Slots {
		existing, err := bookingsForSlot(tx, studioUUID, slot.Date, slot.Time)
		if err != nil {
			return err
		}
		avail := services.ComputeSlotAvailability(slot.Date, slot.Time, existing, Capacity)

		if len(booking.GroupAssignments) > 0 {
			perTechnique := map[models.Technique]int{}
			for _, a := range booking.GroupAssignments {
				perTechnique[a.Technique]++
			}
			for technique, seats := range perTechnique {
				if err := services.HasCapacityFor(avail, technique, seats); err != nil {
					return err
				}
			}
			continue
		}

		technique := slot.Technique
		if technique == "" {
			technique = booking.Product.Technique
		}
		if technique == "" {
			continue // products without a technique (open studio) skip pool checks
		}
		if err := services.HasCapacityFor(avail, technique, booking.Participants); err != nil {
			return err
		}
	}
	return nil
}

// CreateBooking creates a booking with a denormalized product snapshot,
// stamps the no-refund flag per slot, re-checks capacity and inserts in
// one transaction.
func CreateBooking(c *gin.Context) {
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

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("studio_id = ? AND id = ?", studioUUID, input.ProductID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	participants := input.Participants
	if participants == 0 {
		participants = 1
	}

	// Group experiences must carry a valid per-participant assignment set
	isGroup := product.Type == models.ProductGroupClass ||
		product.Type == models.ProductCustomGroupExperience ||
		product.Type == models.ProductCouplesExperience
	if isGroup {
		if err := services.ValidateGroupAssignments(participants, input.GroupAssignments, Capacity); err != nil {
			respondBusinessError(c, err)
			return
		}
	}

	slots := make(models.SlotList, len(input.Slots))
	for i, s := range input.Slots {
		if _, err := utils.ParseSlotStart(s.Date, s.Time); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid slot date/time: "+s.Date+" "+s.Time)
			return
		}
		slots[i] = models.TimeSlot{
			Date:         s.Date,
			Time:         s.Time,
			InstructorID: s.InstructorID,
			Technique:    s.Technique,
		}
	}

	now := time.Now()
	slots, anyLocked, err := services.StampNoRefund(slots, now)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	price := product.Price * float64(participants)
	if input.Price != nil {
		price = *input.Price
	}

	payments := make(models.PaymentList, 0, len(input.Payments))
	for _, p := range input.Payments {
		payments = append(payments, models.PaymentDetail{
			Amount:         p.Amount,
			Method:         p.Method,
			ReceivedAt:     now,
			GiftcardID:     p.GiftcardID,
			GiftcardAmount: p.GiftcardAmount,
		})
	}
	rec := services.Reconcile(price, payments)

	booking := models.Booking{
		ID:               uuid.New(),
		StudioID:         studioUUID,
		CreatedByUserID:  uuid.Must(uuid.Parse(userID.(string))),
		BookingCode:      utils.NewBookingCode(),
		CustomerID:       input.CustomerID,
		ProductID:        product.ID,
		ProductType:      product.Type,
		Product:          product.Snapshot(),
		UserInfo:         input.UserInfo,
		Slots:            slots,
		PaymentDetails:   payments,
		GroupAssignments: input.GroupAssignments,
		Price:            price,
		IsPaid:           rec.IsPaid,
		Participants:     participants,
		BookingDate:      now,
		ExpiresAt:        input.ExpiresAt,
		ClientNote:       input.ClientNote,
		AcceptedNoRefund: anyLocked,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := checkSlotCapacity(tx, studioUUID, &booking); err != nil {
		tx.Rollback()
		respondBusinessError(c, err)
		return
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if booking.CustomerID != nil {
		if err := tx.Model(&models.Customer{}).Where("id = ?", *booking.CustomerID).
			Updates(map[string]interface{}{
				"total_bookings": gorm.Expr("total_bookings + ?", 1),
				"total_spent":    gorm.Expr("total_spent + ?", price),
				"last_booking":   now,
			}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	if Notifier != nil {
		Notifier.SendBookingConfirmation(&booking)
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings retrieves bookings, optionally filtered to one slot date
func GetBookings(c *gin.Context) {
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
	if date := c.Query("date"); date != "" {
		cond, err := json.Marshal([]map[string]string{{"date": date}})
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build filter")
			return
		}
		query = query.Where("slots @> ?::jsonb", string(cond))
	}

	var bookings []models.Booking
	if err := query.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
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

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	rec := services.Reconcile(booking.Price, booking.PaymentDetails)
	c.JSON(http.StatusOK, gin.H{
		"booking":        booking,
		"reconciliation": rec,
	})
}

// UpdateBooking updates a booking's mutable metadata. The product
// snapshot and slots are never touched here.
func UpdateBooking(c *gin.Context) {
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

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	if input.CustomerID != nil {
		booking.CustomerID = input.CustomerID
	}
	if input.ClientNote != nil {
		booking.ClientNote = *input.ClientNote
	}
	if input.ExpiresAt != nil {
		booking.ExpiresAt = input.ExpiresAt
	}
	if input.Price != nil {
		booking.Price = *input.Price
		booking.IsPaid = services.Reconcile(booking.Price, booking.PaymentDetails).IsPaid
	}

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking soft deletes a booking
func DeleteBooking(c *gin.Context) {
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

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	if booking.CustomerID != nil {
		if err := tx.Model(&models.Customer{}).Where("id = ?", *booking.CustomerID).
			Updates(map[string]interface{}{
				"total_bookings": gorm.Expr("total_bookings - ?", 1),
				"total_spent":    gorm.Expr("total_spent - ?", booking.Price),
			}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// findBooking resolves :id (uuid or booking code) for the studio and
// writes the error response itself when the booking can't be loaded.
func findBooking(c *gin.Context, studioUUID uuid.UUID) (*models.Booking, bool) {
	ref := c.Param("id")

	var booking models.Booking
	query := config.DB.Where("studio_id = ?", studioUUID)
	if id, err := uuid.Parse(ref); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("booking_code = ?", ref)
	}

	if err := query.First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &booking, true
}

// respondBusinessError maps typed service errors to 400 with a stable
// errorCode; anything untyped becomes a generic 500.
func respondBusinessError(c *gin.Context, err error) {
	code := services.ErrorCode(err)
	if code == "" {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":     err.Error(),
		"errorCode": code,
	})
}
