// controllers/data.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"nailbook-backend/config"
	"nailbook-backend/models"
	"nailbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const snapshotVersion = "1.0"

type SnapshotMetadata struct {
	Version    string `json:"version"`
	ExportDate string `json:"exportDate"`
}

// DataSnapshot is the full-dataset backup format. The four collections
// mirror the storage tables one to one.
type DataSnapshot struct {
	Customers              []models.Customer              `json:"customers"`
	Services               []models.Service               `json:"services"`
	Appointments           []models.Appointment           `json:"appointments"`
	MembershipTransactions []models.MembershipTransaction `json:"membershipTransactions"`
	Metadata               SnapshotMetadata               `json:"metadata"`
}

// ExportData returns the entire dataset as one JSON snapshot
func ExportData(c *gin.Context) {
	snapshot := DataSnapshot{
		Customers:              make([]models.Customer, 0),
		Services:               make([]models.Service, 0),
		Appointments:           make([]models.Appointment, 0),
		MembershipTransactions: make([]models.MembershipTransaction, 0),
		Metadata: SnapshotMetadata{
			Version:    snapshotVersion,
			ExportDate: time.Now().Format(time.RFC3339),
		},
	}

	if err := config.DB.Find(&snapshot.Customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export customers")
		return
	}
	if err := config.DB.Find(&snapshot.Services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export services")
		return
	}
	if err := config.DB.Find(&snapshot.Appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export appointments")
		return
	}
	if err := config.DB.Find(&snapshot.MembershipTransactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export membership transactions")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ImportData replaces the entire dataset with the posted snapshot. The
// snapshot is validated up front and applied inside one database
// transaction; any failure leaves the existing data untouched.
func ImportData(c *gin.Context) {
	var snapshot DataSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := validateSnapshot(&snapshot); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"membership_transactions", "appointments", "customers", "services"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		if len(snapshot.Customers) > 0 {
			if err := tx.Create(&snapshot.Customers).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Services) > 0 {
			if err := tx.Create(&snapshot.Services).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Appointments) > 0 {
			if err := tx.Create(&snapshot.Appointments).Error; err != nil {
				return err
			}
		}
		if len(snapshot.MembershipTransactions) > 0 {
			if err := tx.Create(&snapshot.MembershipTransactions).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import data")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Data imported successfully",
		"summary": gin.H{
			"customers":    len(snapshot.Customers),
			"services":     len(snapshot.Services),
			"appointments": len(snapshot.Appointments),
			"transactions": len(snapshot.MembershipTransactions),
		},
	})
}

// validateSnapshot rejects the whole import when a collection is missing
// or any record carries an empty id.
func validateSnapshot(snapshot *DataSnapshot) error {
	if snapshot.Customers == nil {
		return fmt.Errorf("missing required collection: customers")
	}
	if snapshot.Services == nil {
		return fmt.Errorf("missing required collection: services")
	}
	if snapshot.Appointments == nil {
		return fmt.Errorf("missing required collection: appointments")
	}
	if snapshot.MembershipTransactions == nil {
		return fmt.Errorf("missing required collection: membershipTransactions")
	}

	for _, customer := range snapshot.Customers {
		if customer.ID == "" {
			return fmt.Errorf("customers: record with empty id")
		}
	}
	for _, service := range snapshot.Services {
		if service.ID == "" {
			return fmt.Errorf("services: record with empty id")
		}
	}
	for _, appointment := range snapshot.Appointments {
		if appointment.ID == "" {
			return fmt.Errorf("appointments: record with empty id")
		}
	}
	for _, txn := range snapshot.MembershipTransactions {
		if txn.ID == "" {
			return fmt.Errorf("membershipTransactions: record with empty id")
		}
	}
	return nil
}
