package models

// Sale is one immutable sales record.
type Sale struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Date     string  `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Product  string  `gorm:"size:255;index" json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// TableName pins the table name regardless of naming strategy.
func (Sale) TableName() string { return "sales" }

// Amount returns quantity × unit price.
func (s *Sale) Amount() float64 {
	return float64(s.Quantity) * s.Price
}

// RevenueRow is the total revenue of one product.
type RevenueRow struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
}

// TotalRevenue sums the revenue of all rows.
func TotalRevenue(rows []RevenueRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.Revenue
	}
	return total
}
