package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diewo77/salesreport/internal/models"
)

var sampleRows = []models.RevenueRow{
	{Product: "Headphones", Revenue: 1050},
	{Product: "Keyboard", Revenue: 540},
	{Product: "Monitor", Revenue: 900},
	{Product: "Mouse", Revenue: 320},
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{320, "$320.00"},
		{1050, "$1,050.00"},
		{1234567.891, "$1,234,567.89"},
		{19.5, "$19.50"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, sampleRows); err != nil {
		t.Fatal(err)
	}
	want := "Total Revenue by Product:\n" +
		"Headphones: $1,050.00\n" +
		"Keyboard: $540.00\n" +
		"Monitor: $900.00\n" +
		"Mouse: $320.00\n"
	if buf.String() != want {
		t.Fatalf("summary mismatch:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != SummaryHeader+"\n" {
		t.Fatalf("expected header only got %q", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []models.RevenueRow{{Product: "Desk", Revenue: 1709.99}, {Product: "Lamp", Revenue: 59.5}}
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}
	want := "Product,Revenue\nDesk,1709.99\nLamp,59.5\n"
	if buf.String() != want {
		t.Fatalf("csv = %q, want %q", buf.String(), want)
	}
}

func TestCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revenue.csv")
	if err := os.WriteFile(path, []byte("stale content that must disappear\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows := append([]models.RevenueRow{{Product: "Cable, braided", Revenue: 0.1 + 0.2}}, sampleRows...)
	if err := WriteCSVFile(path, rows); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSVFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(rows) {
		t.Fatalf("expected %d rows got %d", len(rows), len(got))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], rows[i])
		}
	}
}

func TestCSVFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revenue.csv")
	if err := WriteCSVFile(path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Product,Revenue\n" {
		t.Fatalf("expected header only got %q", data)
	}
	got, err := ReadCSVFile(path)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no rows, got %v err=%v", got, err)
	}
}

func TestWriteCSVFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "revenue.csv")
	if err := WriteCSVFile(path, sampleRows); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReadCSVBadHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Name,Total\nA,1\n"))
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("expected ErrBadHeader got %v", err)
	}
}

func TestReadCSVBadNumber(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("Product,Revenue\nA,$1\n")); err == nil {
		t.Fatal("expected parse error")
	}
}
