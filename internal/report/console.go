// Package report writes revenue rows to the console and CSV sinks.
package report

import (
	"fmt"
	"io"

	"github.com/diewo77/salesreport/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryHeader is the first line of the console summary.
const SummaryHeader = "Total Revenue by Product:"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders v as $1,234.56.
func FormatMoney(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// WriteSummary prints the header followed by one "product: $revenue" line per row.
func WriteSummary(w io.Writer, rows []models.RevenueRow) error {
	if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Product, FormatMoney(r.Revenue)); err != nil {
			return err
		}
	}
	return nil
}
