package models

import "testing"

func TestSale_Amount(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		price    float64
		want     float64
	}{
		{"headphones", 4, 150, 600},
		{"zero quantity", 0, 99.99, 0},
		{"fractional price", 3, 19.5, 58.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sale{Quantity: tt.quantity, Price: tt.price}
			if got := s.Amount(); got != tt.want {
				t.Errorf("Amount() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSale_TableName(t *testing.T) {
	if got := (Sale{}).TableName(); got != "sales" {
		t.Fatalf("TableName() = %q, want sales", got)
	}
}

func TestTotalRevenue(t *testing.T) {
	rows := []RevenueRow{{"Headphones", 1050}, {"Monitor", 900}, {"Mouse", 320}}
	if got := TotalRevenue(rows); got != 2270 {
		t.Fatalf("TotalRevenue() = %f, want 2270", got)
	}
	if got := TotalRevenue(nil); got != 0 {
		t.Fatalf("TotalRevenue(nil) = %f, want 0", got)
	}
}
