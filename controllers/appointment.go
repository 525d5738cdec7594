// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"nailbook-backend/config"
	"nailbook-backend/models"
	"nailbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Every appointment read joins the referenced customer and service rows,
// so renaming a customer or service is reflected immediately.
const appointmentJoinSQL = `
	SELECT a.*,
	       c.name AS customer_name,
	       s.name AS service_name,
	       s.category AS service_category
	FROM appointments a
	JOIN customers c ON c.id = a.customer_id
	JOIN services s ON s.id = a.service_id`

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	CustomerID string `json:"customer_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:MM
	Duration   int    `json:"duration" binding:"omitempty,min=1"`
	Notes      string `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for the
// status PATCH. Payment fields are recorded when completing a visit.
type UpdateAppointmentInput struct {
	Status        string  `json:"status" binding:"required,oneof=scheduled completed cancelled"`
	PaymentAmount *int    `json:"payment_amount" binding:"omitempty,min=0"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,oneof=cash card transfer membership"`
}

func findAppointmentView(db *gorm.DB, id string) (*models.AppointmentView, error) {
	var view models.AppointmentView
	err := db.Raw(appointmentJoinSQL+" WHERE a.id = ?", id).Scan(&view).Error
	if err != nil {
		return nil, err
	}
	if view.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &view, nil
}

// GetAppointments lists appointments joined with customer and service
// names, optionally filtered to one date, ordered by time of day
func GetAppointments(c *gin.Context) {
	views := make([]models.AppointmentView, 0)

	var err error
	if date := c.Query("date"); date != "" {
		if !utils.ValidateDate(date) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		err = config.DB.Raw(appointmentJoinSQL+" WHERE a.date = ? ORDER BY a.time", date).Scan(&views).Error
	} else {
		err = config.DB.Raw(appointmentJoinSQL + " ORDER BY a.date, a.time").Scan(&views).Error
	}

	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, views)
}

// CreateAppointment books a new appointment. Validation runs before any
// write: referenced records must exist, the date and time must be well
// formed, and the slot must not lie in the past.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format, expected HH:MM")
		return
	}

	slot, err := utils.ParseDateTime(input.Date, input.Time)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date or time")
		return
	}
	if slot.Before(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment cannot be scheduled in the past")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", input.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Default the slot length to the service's duration
	duration := input.Duration
	if duration == 0 {
		duration = service.Duration
	}

	appointment := models.Appointment{
		CustomerID: input.CustomerID,
		ServiceID:  input.ServiceID,
		Date:       input.Date,
		Time:       input.Time,
		Duration:   duration,
		Status:     models.StatusScheduled,
		Notes:      input.Notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	view, err := findAppointmentView(config.DB, appointment.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointment")
		return
	}

	c.JSON(http.StatusCreated, view)
}

// UpdateAppointmentStatus changes an appointment's status and records
// payment details when the visit is completed
func UpdateAppointmentStatus(c *gin.Context) {
	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	appointment.Status = input.Status
	if input.PaymentAmount != nil {
		appointment.PaymentAmount = *input.PaymentAmount
	}
	if input.PaymentMethod != nil {
		appointment.PaymentMethod = *input.PaymentMethod
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	view, err := findAppointmentView(config.DB, appointment.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointment")
		return
	}

	c.JSON(http.StatusOK, view)
}
