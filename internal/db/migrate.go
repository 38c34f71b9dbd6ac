package db

import (
	"fmt"

	"github.com/diewo77/salesreport/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates the sales table if it does not exist.
// Safe to call on every run.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Sale{}); err != nil {
		return fmt.Errorf("automigrate %T: %w", &models.Sale{}, err)
	}
	return nil
}

// SampleSales returns the fixed records inserted into an empty store.
func SampleSales() []models.Sale {
	return []models.Sale{
		{Date: "2025-05-05", Product: "Headphones", Quantity: 4, Price: 150.00},
		{Date: "2025-05-05", Product: "Monitor", Quantity: 2, Price: 300.00},
		{Date: "2025-05-06", Product: "Keyboard", Quantity: 6, Price: 90.00},
		{Date: "2025-05-06", Product: "Mouse", Quantity: 8, Price: 40.00},
		{Date: "2025-05-07", Product: "Monitor", Quantity: 1, Price: 300.00},
		{Date: "2025-05-07", Product: "Headphones", Quantity: 3, Price: 150.00},
	}
}

// Seed inserts SampleSales when the sales table is empty.
// A populated table is left untouched.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Sale{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count sales: %w", err)
		}
		if count > 0 {
			log.WithField("rows", count).Debug("sales table already populated, skipping seed")
			return nil
		}
		samples := SampleSales()
		if err := tx.Create(&samples).Error; err != nil {
			return fmt.Errorf("seed sales: %w", err)
		}
		log.WithField("rows", len(samples)).Info("seeded sample sales")
		return nil
	})
}
