// controllers/auth.go
package controllers

import (
	"log"
	"net/http"
	"os"
	"sync"

	"nailbook-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Single fixed operator account. The plaintext comes from the
// environment (defaults are the demo pair); only its bcrypt hash is
// kept in memory after first use.
var (
	adminHashOnce sync.Once
	adminHash     string
)

func adminUsername() string {
	if u := os.Getenv("ADMIN_USERNAME"); u != "" {
		return u
	}
	return "admin"
}

func adminPasswordHash() string {
	adminHashOnce.Do(func() {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Printf("Failed to hash admin password: %v", err)
			return
		}
		adminHash = hash
	})
	return adminHash
}

// Login validates the demo credential pair and issues a signed,
// time-limited token
func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hash := adminPasswordHash()
	if input.Username != adminUsername() || hash == "" || !utils.CheckPasswordHash(input.Password, hash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(input.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated operator
func Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Username not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username})
}
