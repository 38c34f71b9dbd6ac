// Package app runs the revenue report: store → aggregate → console → CSV → chart.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diewo77/salesreport/internal/chart"
	"github.com/diewo77/salesreport/internal/config"
	"github.com/diewo77/salesreport/internal/db"
	"github.com/diewo77/salesreport/internal/display"
	"github.com/diewo77/salesreport/internal/models"
	"github.com/diewo77/salesreport/internal/report"
	"github.com/diewo77/salesreport/internal/services"
	log "github.com/sirupsen/logrus"
)

// Failure kinds reported by Run. Each wraps the underlying cause.
var (
	ErrStore  = errors.New("database error")
	ErrExport = errors.New("export error")
	ErrChart  = errors.New("chart error")
)

// Plotter is the chart sink.
type Plotter interface {
	Plot(ctx context.Context, rows []models.RevenueRow) error
}

// App wires the store and the three sinks.
type App struct {
	cfg     config.Config
	out     io.Writer
	plotter Plotter
}

// New returns an App printing to out and plotting with a ChartPlotter built from cfg.
func New(cfg config.Config, out io.Writer) *App {
	return &App{cfg: cfg, out: out, plotter: NewChartPlotter(cfg.Chart)}
}

// WithPlotter replaces the chart sink.
func (a *App) WithPlotter(p Plotter) *App {
	a.plotter = p
	return a
}

// Run executes the whole report. A store failure stops before any output.
func (a *App) Run(ctx context.Context) error {
	rows, err := a.revenue(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	log.WithField("products", len(rows)).Debug("revenue aggregated")

	if err := report.WriteSummary(a.out, rows); err != nil {
		return fmt.Errorf("%w: console: %w", ErrExport, err)
	}

	path := a.cfg.Output.CSVPath
	if err := report.WriteCSVFile(path, rows); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	fmt.Fprintf(a.out, "\nRevenue data saved to '%s'\n", path)

	if err := a.plotter.Plot(ctx, rows); err != nil {
		return fmt.Errorf("%w: %w", ErrChart, err)
	}
	return nil
}

// Seed only initializes and seeds the store.
func (a *App) Seed() error {
	conn, err := db.Init(a.cfg.Database)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	if err := db.Close(conn); err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

// revenue holds the store handle only for the duration of the query.
func (a *App) revenue(ctx context.Context) ([]models.RevenueRow, error) {
	conn, err := db.Init(a.cfg.Database)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}()
	return services.NewRevenueService(conn).ByProduct(ctx)
}

// Diagnostic renders err as the user-facing line, e.g. "Database error: ...".
func Diagnostic(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// ChartPlotter writes the chart to a file and/or serves it for viewing.
type ChartPlotter struct {
	cfg  config.ChartConfig
	opts chart.Options
}

func NewChartPlotter(cfg config.ChartConfig) *ChartPlotter {
	return &ChartPlotter{cfg: cfg, opts: chart.DefaultOptions()}
}

// Plot skips empty row sets; there is nothing to draw.
func (p *ChartPlotter) Plot(ctx context.Context, rows []models.RevenueRow) error {
	if len(rows) == 0 {
		log.Info("No revenue data, skipping chart")
		return nil
	}
	if p.cfg.Path != "" {
		if err := chart.RenderFile(p.cfg.Path, rows, p.opts); err != nil {
			return err
		}
		log.WithField("path", p.cfg.Path).Info("chart written")
	}
	if !p.cfg.Display {
		return nil
	}
	srv, err := display.NewServer(rows, p.opts)
	if err != nil {
		return err
	}
	return srv.Serve(ctx, p.cfg.DisplayAddr, nil)
}
