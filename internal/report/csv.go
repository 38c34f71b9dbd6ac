package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/diewo77/salesreport/internal/models"
	"github.com/shopspring/decimal"
)

var csvHeader = []string{"Product", "Revenue"}

// ErrBadHeader is returned by ReadCSV when the first record is not Product,Revenue.
var ErrBadHeader = errors.New("unexpected csv header")

// WriteCSV writes the Product,Revenue header and one row per product.
// Revenue is the plain number, without currency symbol or separators.
func WriteCSV(w io.Writer, rows []models.RevenueRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Product, decimal.NewFromFloat(r.Revenue).String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes rows to path, replacing any existing file.
func WriteCSVFile(path string, rows []models.RevenueRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, rows)
}

// ReadCSV parses a document produced by WriteCSV.
func ReadCSV(r io.Reader) ([]models.RevenueRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header[0] != csvHeader[0] || header[1] != csvHeader[1] {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}
	rows := []models.RevenueRow{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := decimal.NewFromString(rec[1])
		if err != nil {
			return nil, fmt.Errorf("revenue for %q: %w", rec[0], err)
		}
		rows = append(rows, models.RevenueRow{Product: rec[0], Revenue: v.InexactFloat64()})
	}
	return rows, nil
}

// ReadCSVFile reads a revenue CSV from path.
func ReadCSVFile(path string) ([]models.RevenueRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
