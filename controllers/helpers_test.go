package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nailbook-backend/config"
	"nailbook-backend/models"
	"nailbook-backend/routes"
	"nailbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the real router against a fresh in-memory database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
		&models.MembershipTransaction{},
	))

	config.DB = db
	return routes.SetupRouter()
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("admin")
	require.NoError(t, err)
	return token
}

// doRequest performs a JSON request against the router. An empty token
// leaves the Authorization header unset.
func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedCustomer(t *testing.T, name, phone string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, Phone: phone}
	require.NoError(t, config.DB.Create(&customer).Error)
	return customer
}

func seedService(t *testing.T, name string, duration, price int, category string) models.Service {
	t.Helper()
	service := models.Service{Name: name, Duration: duration, Price: price, Category: category}
	require.NoError(t, config.DB.Create(&service).Error)
	return service
}
