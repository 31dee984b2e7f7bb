package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/mirado/doctors-portal-api/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// NotificationService sends booking confirmations over SMS via Textbelt.
type NotificationService struct {
	apiKey   string
	endpoint string
}

func NewNotificationService(apiKey string) *NotificationService {
	return &NotificationService{apiKey: apiKey, endpoint: textbeltURL}
}

// SendBookingConfirmationSMS confirms a freshly created booking. It is a
// no-op when the booking has no phone number or no API key is configured.
func (s *NotificationService) SendBookingConfirmationSMS(booking *models.Booking) {
	if s == nil || s.apiKey == "" {
		return
	}
	if booking.Phone == "" {
		log.Println("SMS not sent: booking has no phone number.")
		return
	}

	smsBody := fmt.Sprintf(
		"Booking confirmed: %s on %s at %s.",
		booking.Treatment,
		booking.Date,
		booking.Slot,
	)

	// Send in a goroutine so it doesn't block the API response.
	go s.sendSMS(booking.Phone, smsBody)
}

func (s *NotificationService) sendSMS(phone, message string) {
	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})

	resp, err := http.Post(s.endpoint, "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		log.Printf("Failed to send Textbelt request for number %s: %v", phone, err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	success, _ := result["success"].(bool)
	if !success {
		errorMsg, _ := result["error"].(string)
		log.Printf("Failed to send SMS via Textbelt to %s. Reason: %s", phone, errorMsg)
	} else {
		log.Printf("Successfully sent SMS via Textbelt to %s", phone)
	}
}
