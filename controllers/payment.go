// controllers/payment.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/services"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddPayment appends a payment entry to a booking and persists the
// recomputed isPaid snapshot in the same update.
func AddPayment(c *gin.Context) {
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

	var input PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Method == models.PaymentGiftcard && input.GiftcardID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Giftcard payments require a giftcardId")
		return
	}

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	booking.PaymentDetails = append(booking.PaymentDetails, models.PaymentDetail{
		Amount:         input.Amount,
		Method:         input.Method,
		ReceivedAt:     time.Now(),
		GiftcardID:     input.GiftcardID,
		GiftcardAmount: input.GiftcardAmount,
	})

	rec := services.Reconcile(booking.Price, booking.PaymentDetails)
	booking.IsPaid = rec.IsPaid

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add payment")
		return
	}

	if Notifier != nil {
		Notifier.SendPaymentConfirmation(booking, rec)
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":        booking,
		"reconciliation": rec,
	})
}

// DeletePayment removes a payment entry by its position in the list and
// persists the recomputed isPaid snapshot.
func DeletePayment(c *gin.Context) {
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

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment index")
		return
	}

	booking, ok := findBooking(c, studioUUID)
	if !ok {
		return
	}

	if index >= len(booking.PaymentDetails) {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	booking.PaymentDetails = append(booking.PaymentDetails[:index], booking.PaymentDetails[index+1:]...)

	rec := services.Reconcile(booking.Price, booking.PaymentDetails)
	booking.IsPaid = rec.IsPaid

	if err := config.DB.Save(booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":        booking,
		"reconciliation": rec,
	})
}
