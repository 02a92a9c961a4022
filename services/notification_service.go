// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"almaceramica-backend/models"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// campaignThrottle spaces outbound campaign sends to stay under the
// provider's rate limit.
const campaignThrottle = 150 * time.Millisecond

type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// SendBookingConfirmation notifies the customer after a booking is
// created. Failures are logged, never returned: a notification problem
// must not undo the booking.
func (s *NotificationService) SendBookingConfirmation(booking *models.Booking) {
	msg := fmt.Sprintf(
		"¡Hola %s! Tu reserva %s en Alma Cerámica está confirmada. Total: %.2f€.",
		booking.UserInfo.Name, booking.BookingCode, booking.Price)
	s.send(booking.StudioID, &booking.ID, booking.UserInfo.Phone, "booking_confirmation", msg)
}

// SendPaymentConfirmation notifies the customer after a payment entry is
// added, including the remaining balance.
func (s *NotificationService) SendPaymentConfirmation(booking *models.Booking, rec Reconciliation) {
	msg := fmt.Sprintf(
		"Hemos registrado tu pago para la reserva %s. Pagado: %.2f€, pendiente: %.2f€.",
		booking.BookingCode, rec.TotalPaid, rec.PendingBalance)
	if rec.IsPaid {
		msg = fmt.Sprintf(
			"Hemos registrado tu pago para la reserva %s. ¡Reserva pagada por completo!",
			booking.BookingCode)
	}
	s.send(booking.StudioID, &booking.ID, booking.UserInfo.Phone, "payment_confirmation", msg)
}

// SendValentineConfirmation notifies a Valentine workshop registrant.
func (s *NotificationService) SendValentineConfirmation(reg *models.ValentineRegistration) {
	msg := fmt.Sprintf(
		"¡Hola %s! Tu inscripción %s al taller de San Valentín está registrada. Te avisaremos cuando esté confirmada.",
		reg.FullName, reg.Code)
	s.send(reg.StudioID, nil, reg.Phone, "valentine_confirmation", msg)
}

// Prospect is one last-chance campaign recipient.
type Prospect struct {
	Name  string
	Phone string
}

// SendLastChanceCampaign sends the campaign message to every prospect
// sequentially with a fixed throttle. Returns how many sends succeeded.
func (s *NotificationService) SendLastChanceCampaign(studioID uuid.UUID, prospects []Prospect, message string) int {
	sent := 0
	for i, p := range prospects {
		if i > 0 {
			time.Sleep(campaignThrottle)
		}
		msg := strings.ReplaceAll(message, "[Nombre]", p.Name)
		if s.send(studioID, nil, p.Phone, "last_chance_campaign", msg) {
			sent++
		}
	}
	return sent
}

// send delivers one message via Twilio (WhatsApp when the phone is in
// E.164 format, SMS otherwise) and records a notification log row.
func (s *NotificationService) send(studioID uuid.UUID, bookingID *uuid.UUID, phone, notifType, message string) bool {
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send %s to %s: %v", notifType, phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("%s sent to %s, SID: %s", notifType, phone, *resp.Sid)
	} else {
		log.Printf("%s sent to %s, but no SID returned", notifType, phone)
	}

	notifLog := models.NotificationLog{
		StudioID:     studioID,
		BookingID:    bookingID,
		Recipient:    phone,
		Type:         notifType,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&notifLog).Error; err != nil {
		log.Printf("Failed to log notification for %s: %v", phone, err)
	}

	return status == "sent"
}
