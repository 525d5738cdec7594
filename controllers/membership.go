// controllers/membership.go
package controllers

import (
	"errors"
	"net/http"

	"nailbook-backend/config"
	"nailbook-backend/services"
	"nailbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// RechargeInput defines the expected JSON structure for a recharge. The
// form layer keeps amounts to steps of 1000 KRW; the ledger itself only
// requires a positive integer.
type RechargeInput struct {
	Amount        int    `json:"amount" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

// RechargeMembership adds a prepaid amount to a customer's balance
func RechargeMembership(c *gin.Context) {
	var input RechargeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ledger := services.NewLedgerService(config.DB)
	customer, txn, err := ledger.Recharge(c.Param("id"), input.Amount, input.PaymentMethod, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		case errors.Is(err, services.ErrInvalidAmount), errors.Is(err, services.ErrInvalidPayment):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to recharge membership")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"customer":    customer,
		"transaction": txn,
	})
}

// GetMembershipHistory lists a customer's recharge transactions, most
// recent first. A customer without transactions gets an empty list.
func GetMembershipHistory(c *gin.Context) {
	ledger := services.NewLedgerService(config.DB)
	history, err := ledger.History(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve membership history")
		return
	}

	c.JSON(http.StatusOK, history)
}
