// controllers/report.go
package controllers

import (
	"net/http"
	"regexp"
	"time"

	"nailbook-backend/config"
	"nailbook-backend/utils"

	"github.com/gin-gonic/gin"
)

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthlySales summarizes completed-appointment revenue for one month
type MonthlySales struct {
	Month           string         `json:"month"`
	Total           int            `json:"total"`
	ByPaymentMethod map[string]int `json:"byPaymentMethod"`
}

// GetSalesReport aggregates payment amounts of completed appointments in
// the requested month (default: the current month), broken down by
// payment method. Membership-paid visits count toward revenue here even
// though the balance was charged earlier.
func GetSalesReport(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !monthRegex.MatchString(month) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month format, expected YYYY-MM")
		return
	}

	var rows []struct {
		PaymentMethod string
		Total         int
	}
	if err := config.DB.Raw(`
		SELECT payment_method, COALESCE(SUM(payment_amount), 0) AS total
		FROM appointments
		WHERE status = 'completed'
		  AND payment_amount > 0
		  AND payment_method <> ''
		  AND date LIKE ?
		GROUP BY payment_method
	`, month+"-%").Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute sales report")
		return
	}

	report := MonthlySales{
		Month: month,
		ByPaymentMethod: map[string]int{
			"cash":       0,
			"card":       0,
			"transfer":   0,
			"membership": 0,
		},
	}
	for _, row := range rows {
		report.ByPaymentMethod[row.PaymentMethod] = row.Total
		report.Total += row.Total
	}

	c.JSON(http.StatusOK, report)
}
