package controllers_test

import (
	"net/http"
	"testing"

	"nailbook-backend/config"
	"nailbook-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRechargeMembership(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t)
	kim := seedCustomer(t, "Kim", "010-1111-2222")

	w := doRequest(t, r, http.MethodPost, "/api/customers/"+kim.ID+"/membership", map[string]interface{}{
		"amount":         50000,
		"payment_method": "card",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Customer    models.Customer              `json:"customer"`
		Transaction models.MembershipTransaction `json:"transaction"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, 50000, body.Customer.MembershipBalance)
	assert.Equal(t, kim.ID, body.Transaction.CustomerID)
	assert.Equal(t, 50000, body.Transaction.Amount)
	assert.NotEmpty(t, body.Transaction.ID)

	w = doRequest(t, r, http.MethodPost, "/api/customers/"+kim.ID+"/membership", map[string]interface{}{
		"amount":         30000,
		"payment_method": "cash",
		"notes":          "생일 충전",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &body)
	assert.Equal(t, 80000, body.Customer.MembershipBalance)

	w = doRequest(t, r, http.MethodGet, "/api/customers/"+kim.ID+"/membership", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var history []models.MembershipTransaction
	decodeBody(t, w, &history)
	require.Len(t, history, 2)

	sum := 0
	for _, txn := range history {
		sum += txn.Amount
	}
	assert.Equal(t, 80000, sum)
}

func TestRechargeMembershipUnknownCustomer(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t)

	w := doRequest(t, r, http.MethodPost, "/api/customers/missing/membership", map[string]interface{}{
		"amount":         10000,
		"payment_method": "cash",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.MembershipTransaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRechargeMembershipInvalidInput(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t)
	kim := seedCustomer(t, "Kim", "010-1111-2222")

	w := doRequest(t, r, http.MethodPost, "/api/customers/"+kim.ID+"/membership", map[string]interface{}{
		"amount":         -5000,
		"payment_method": "card",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/customers/"+kim.ID+"/membership", map[string]interface{}{
		"amount":         10000,
		"payment_method": "check",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reloaded models.Customer
	require.NoError(t, config.DB.First(&reloaded, "id = ?", kim.ID).Error)
	assert.Zero(t, reloaded.MembershipBalance)
}

func TestMembershipHistoryEmpty(t *testing.T) {
	r := newTestRouter(t)
	token := adminToken(t)
	kim := seedCustomer(t, "Kim", "010-1111-2222")

	w := doRequest(t, r, http.MethodGet, "/api/customers/"+kim.ID+"/membership", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
