package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"libcal-hours-export/internal/export"
	"libcal-hours-export/internal/hours"
	"libcal-hours-export/internal/libcal"
	"libcal-hours-export/internal/models"
	"libcal-hours-export/pkg/config"
	"libcal-hours-export/pkg/logging"
)

func main() {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	var (
		outputFile string
		fromDate   string
		toDate     string
	)

	root := &cobra.Command{
		Use:          "libcal-hours-export",
		Short:        "Export LibCal operating hours to CSV for warehouse loading",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), outputFile, fromDate, toDate)
		},
	}
	root.Flags().StringVarP(&outputFile, "output-file", "o", "-", "CSV output file; default is stdout")
	root.Flags().StringVarP(&fromDate, "from-date", "f", yesterday, "from date (YYYY-MM-DD), inclusive")
	root.Flags().StringVarP(&toDate, "to-date", "t", yesterday, "to date (YYYY-MM-DD), inclusive")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, outputFile, fromDate, toDate string) error {
	cfg := config.Load()
	if err := cfg.ApplyLocationsFile(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger := logging.New(logCfg)

	client := libcal.NewClient(cfg, logging.WithComponent(logger, "libcal"))

	logger.Info("authenticating via oauth2")
	token, err := client.Authenticate(ctx)
	if err != nil {
		return err
	}

	logger.Info("requesting hours data", "from", fromDate, "to", toDate)
	locations, err := client.FetchHours(ctx, token, fromDate, toDate)
	if err != nil {
		return err
	}

	// bring up every sink before writing any output, so a failed warehouse
	// connection cannot leave a partial CSV file behind
	var warehouse *export.Warehouse
	if cfg.WarehouseDSN != "" {
		warehouse, err = export.NewWarehouse(cfg.WarehouseDSN, cfg.DBMaxOpenConns, cfg.DBWriteTimeout)
		if err != nil {
			return err
		}
		defer warehouse.Close()
		if err := warehouse.Begin(ctx); err != nil {
			return err
		}
	}

	out := os.Stdout
	if outputFile != "-" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("cannot open output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	emitter := export.NewCSVEmitter(out)
	if err := emitter.WriteHeader(); err != nil {
		return err
	}
	sinks := []models.RowSink{emitter}
	if warehouse != nil {
		sinks = append(sinks, warehouse)
	}

	logger.Info("generating csv output", "locations", len(locations))
	builder := hours.NewBuilder(logging.WithComponent(logger, "rows"), cfg.Rename)
	report, err := builder.Run(locations, export.MultiSink(sinks...))
	if err != nil {
		return err
	}

	if err := emitter.Flush(); err != nil {
		return err
	}
	if warehouse != nil {
		if err := warehouse.Commit(ctx); err != nil {
			return err
		}
	}

	logger.Info("run complete",
		"rows", report.Rows,
		"fallback_rows", report.Fallbacks,
		"skipped_entries", report.Skipped)
	return nil
}
