package config

import (
	"errors"
	"log"

	"nailbook-backend/models"

	"gorm.io/gorm"
)

// Default catalog, matching what the salon offers on day one. Prices in KRW.
var defaultServices = []models.Service{
	{Name: "젤네일 기본", Duration: 90, Price: 70000, Category: models.CategoryNail},
	{Name: "젤네일 아트", Duration: 120, Price: 90000, Category: models.CategoryNail},
	{Name: "젤 제거", Duration: 30, Price: 20000, Category: models.CategoryNail},
	{Name: "패디큐어 기본", Duration: 60, Price: 60000, Category: models.CategoryNail},
	{Name: "패디큐어 아트", Duration: 90, Price: 80000, Category: models.CategoryNail},
	{Name: "손톱 연장", Duration: 120, Price: 100000, Category: models.CategoryNail},
	{Name: "큐티클 케어", Duration: 30, Price: 30000, Category: models.CategoryNail},
	{Name: "속눈썹 풀세트", Duration: 120, Price: 80000, Category: models.CategoryLash},
	{Name: "속눈썹 리터치", Duration: 60, Price: 40000, Category: models.CategoryLash},
	{Name: "속눈썹 연장", Duration: 90, Price: 60000, Category: models.CategoryLash},
	{Name: "속눈썹 제거", Duration: 30, Price: 20000, Category: models.CategoryLash},
}

// SeedDefaultServices inserts the default service catalog on first run.
// Seeding is keyed on the service name, so repeated startups (and
// startups after the catalog has been edited) are no-ops.
func SeedDefaultServices(db *gorm.DB) error {
	for _, service := range defaultServices {
		var existing models.Service
		err := db.Where("name = ?", service.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&service).Error; err != nil {
			return err
		}
	}
	log.Println("Service catalog seeded")
	return nil
}
