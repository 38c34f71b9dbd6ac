package services

import (
	"context"

	"github.com/diewo77/salesreport/internal/models"
	"gorm.io/gorm"
)

type RevenueService struct {
	db *gorm.DB
}

func NewRevenueService(db *gorm.DB) *RevenueService {
	return &RevenueService{db: db}
}

// ByProduct returns Σ quantity × price per product, ordered by product name.
// An empty store yields an empty slice.
func (s *RevenueService) ByProduct(ctx context.Context) ([]models.RevenueRow, error) {
	rows := []models.RevenueRow{}
	err := s.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select("product, SUM(quantity * price) AS revenue").
		Group("product").
		Order("product").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Total returns Σ quantity × price over every stored record.
func (s *RevenueService) Total(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error
	return total, err
}
