// services/reminder.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db:   db,
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// Enabled reports whether SMS sending is configured. Without Twilio
// credentials the daily job is a no-op.
func (s *ReminderService) Enabled() bool {
	return os.Getenv("TWILIO_ACCOUNT_SID") != "" &&
		os.Getenv("TWILIO_AUTH_TOKEN") != "" &&
		s.from != ""
}

type reminderRow struct {
	CustomerName string
	Phone        string
	Time         string
	ServiceName  string
}

// SendDailyReminders texts every customer with a scheduled appointment
// tomorrow. Failures are logged per message; one bad number does not
// stop the batch.
func (s *ReminderService) SendDailyReminders() {
	if !s.Enabled() {
		log.Println("Reminder SMS not configured, skipping")
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var rows []reminderRow
	if err := s.db.Raw(`
		SELECT c.name AS customer_name, c.phone, a.time, s.name AS service_name
		FROM appointments a
		JOIN customers c ON c.id = a.customer_id
		JOIN services s ON s.id = a.service_id
		WHERE a.date = ? AND a.status = 'scheduled'
		ORDER BY a.time
	`, tomorrow).Scan(&rows).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	log.Printf("Sending %d appointment reminders for %s", len(rows), tomorrow)

	for _, row := range rows {
		message := fmt.Sprintf("[네일북] %s님, 내일 %s에 %s 예약이 있습니다.",
			row.CustomerName, row.Time, row.ServiceName)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(row.Phone)
		params.SetFrom(s.from)
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", row.Phone, err)
			continue
		}
		if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", row.Phone, *resp.Sid)
		}
	}
}
