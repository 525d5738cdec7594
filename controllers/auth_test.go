package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndMe(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &body)
	require.NotEmpty(t, body.Token)

	w = doRequest(t, r, http.MethodGet, "/auth/me", nil, body.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"username": "intruder",
		"password": "admin123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/auth/login", map[string]string{
		"username": "admin",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
