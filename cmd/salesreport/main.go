package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diewo77/salesreport/internal/app"
	"github.com/diewo77/salesreport/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	dbPathFlag    = flag.String("db", "", "SQLite store path (overrides SALES_DB_PATH)")
	csvPathFlag   = flag.String("csv", "", "CSV output path (overrides SALES_CSV_PATH)")
	chartPathFlag = flag.String("chart", "", "Also write the chart PNG to this path")
	noDisplayFlag = flag.Bool("no-display", false, "Do not serve the chart for viewing")
	seedOnlyFlag  = flag.Bool("seed-only", false, "Initialize and seed the store, then exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	applyFlags(&cfg)
	configureLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, os.Stdout)
	if *seedOnlyFlag {
		if err := a.Seed(); err != nil {
			fail(err)
		}
		log.Println("Seeding completed successfully")
		return
	}
	if err := a.Run(ctx); err != nil {
		fail(err)
	}
}

func applyFlags(cfg *config.Config) {
	if *dbPathFlag != "" {
		cfg.Database.Path = *dbPathFlag
	}
	if *csvPathFlag != "" {
		cfg.Output.CSVPath = *csvPathFlag
	}
	if *chartPathFlag != "" {
		cfg.Chart.Path = *chartPathFlag
	}
	if *noDisplayFlag {
		cfg.Chart.Display = false
	}
}

func configureLogging(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("invalid LOG_LEVEL %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func fail(err error) {
	log.WithError(err).Debug("report failed")
	fmt.Println(app.Diagnostic(err))
	os.Exit(1)
}
