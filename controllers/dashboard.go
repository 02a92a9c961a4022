package controllers

import (
	"net/http"
	"time"

	"almaceramica-backend/config"
	"almaceramica-backend/models"
	"almaceramica-backend/services"
	"almaceramica-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardOverview struct {
	TotalCustomers        int64                       `json:"totalCustomers"`
	TotalBookings         int64                       `json:"totalBookings"`
	MonthlyRevenue        float64                     `json:"monthlyRevenue"`
	PendingBalance        float64                     `json:"pendingBalance"`
	UnpaidBookings        int                         `json:"unpaidBookings"`
	OverdueDeliveries     int                         `json:"overdueDeliveries"`
	ValentineParticipants int                         `json:"valentineParticipants"`
	TodayOccupancy        []services.SlotAvailability `json:"todayOccupancy"`
}

// GetDashboardOverview aggregates today's studio picture: revenue,
// outstanding balances and per-slot occupancy.
func GetDashboardOverview(c *gin.Context) {
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

	overview := DashboardOverview{}

	config.DB.Model(&models.Customer{}).
		Where("studio_id = ? AND deleted_at IS NULL", studioUUID).
		Count(&overview.TotalCustomers)

	config.DB.Model(&models.Booking{}).
		Where("studio_id = ? AND deleted_at IS NULL", studioUUID).
		Count(&overview.TotalBookings)

	// This month's collected revenue: sum of payment entries, not prices
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var monthBookings []models.Booking
	if err := config.DB.
		Where("studio_id = ? AND booking_date >= ?", studioUUID, firstOfMonth).
		Find(&monthBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	for i := range monthBookings {
		rec := services.Reconcile(monthBookings[i].Price, monthBookings[i].PaymentDetails)
		overview.MonthlyRevenue += rec.TotalPaid
	}

	// Outstanding balances across all open bookings
	var openBookings []models.Booking
	if err := config.DB.
		Where("studio_id = ? AND is_paid = ?", studioUUID, false).
		Find(&openBookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}
	for i := range openBookings {
		rec := services.Reconcile(openBookings[i].Price, openBookings[i].PaymentDetails)
		overview.PendingBalance += rec.PendingBalance
	}
	overview.UnpaidBookings = len(openBookings)

	var overdue int64
	config.DB.Model(&models.Delivery{}).
		Where("studio_id = ? AND status = ? AND scheduled_date < ?",
			studioUUID, models.DeliveryPending, utils.BeginningOfDay(now)).
		Count(&overdue)
	overview.OverdueDeliveries = int(overdue)

	var regs []models.ValentineRegistration
	config.DB.Find(&regs)
	for i := range regs {
		if regs[i].CountsAgainstCapacity() {
			overview.ValentineParticipants += regs[i].Participants
		}
	}

	// Occupancy per distinct slot time today
	today := now.Format("2006-01-02")
	todayBookings, err := bookingsForDate(studioUUID, today)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load today's bookings")
		return
	}
	seen := map[string]bool{}
	for i := range todayBookings {
		for _, slot := range todayBookings[i].Slots {
			if slot.Date != today || seen[slot.Time] {
				continue
			}
			seen[slot.Time] = true
			overview.TodayOccupancy = append(overview.TodayOccupancy,
				services.ComputeSlotAvailability(today, slot.Time, todayBookings, Capacity))
		}
	}

	c.JSON(http.StatusOK, overview)
}

func bookingsForDate(studioUUID uuid.UUID, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := config.DB.
		Where("studio_id = ? AND slots @> ?::jsonb", studioUUID, `[{"date":"`+date+`"}]`).
		Find(&bookings).Error
	return bookings, err
}
