package main

import (
	"fmt"
	"log"
	"os"

	"nailbook-backend/config"
	"nailbook-backend/models"
	"nailbook-backend/routes"
	"nailbook-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
		&models.MembershipTransaction{},
	)

	if err := config.SeedDefaultServices(config.DB); err != nil {
		log.Fatalf("Failed to seed service catalog: %v", err)
	}
}

func main() {
	ledger := services.NewLedgerService(config.DB)
	reminders := services.NewReminderService(config.DB)

	scheduler := cron.New()
	// Appointment reminder SMS every day at 8 AM
	scheduler.AddFunc("0 8 * * *", reminders.SendDailyReminders)
	// Nightly ledger self-check at 3 AM
	scheduler.AddFunc("0 3 * * *", ledger.RunAudit)
	scheduler.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
