package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/trip-atlas/pkg/adapters"
	"github.com/de-tools/trip-atlas/pkg/charts"
	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/trip-atlas/pkg/services/analysis"
	"github.com/de-tools/trip-atlas/pkg/services/config"
	"github.com/de-tools/trip-atlas/pkg/services/pipeline"
	"github.com/de-tools/trip-atlas/pkg/services/zones"
	"github.com/de-tools/trip-atlas/pkg/store/duckdb"
	tripstore "github.com/de-tools/trip-atlas/pkg/store/duckdb/trips"
	zonestore "github.com/de-tools/trip-atlas/pkg/store/duckdb/zones"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	configPath string
	outputDir  string
	reporter   *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the monthly trip analysis pipeline",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the run configuration file")
	cmd.Flags().StringVar(&ac.outputDir, "output", "", "Output directory (overrides the config value)")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}
	if ac.outputDir != "" {
		cfg.OutputDir = ac.outputDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	monthStart, monthEnd, err := cfg.MonthBounds()
	if err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	if err != nil {
		return fmt.Errorf("failed to open DuckDB: %w", err)
	}
	defer db.Close()

	zoneStore, err := zonestore.NewStore(db)
	if err != nil {
		return err
	}
	zoneRows, err := zoneStore.Load(ctx, cfg.ZoneLookupPath)
	if err != nil {
		return fmt.Errorf("failed to load zone lookup: %w", err)
	}
	lookup := zones.Build(zoneRows)

	tripStore, err := tripstore.NewStore(db)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(
		tripStore,
		lookup,
		pipeline.Rules{
			MaxTripDistance: cfg.MaxTripDistance,
			MaxFareAmount:   cfg.MaxFareAmount,
			MonthStart:      monthStart,
			MonthEnd:        monthEnd,
		},
		analysis.NewAnalyzer(analysis.Limits{
			BusiestZones: cfg.BusiestZonesLimit,
			LongestTrips: cfg.LongestTripsLimit,
		}),
	)

	var inputs []pipeline.CategoryInput
	if cfg.YellowTripsPath != "" {
		inputs = append(inputs, pipeline.CategoryInput{Category: domain.CategoryYellow, Path: cfg.YellowTripsPath})
	}
	if cfg.GreenTripsPath != "" {
		inputs = append(inputs, pipeline.CategoryInput{Category: domain.CategoryGreen, Path: cfg.GreenTripsPath})
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	results := runner.RunAll(ctx, inputs)

	period := domain.TimePeriod{Start: monthStart, End: monthEnd}
	var failures []error
	for _, res := range results {
		if res.Err != nil {
			logger.Error().
				Err(res.Err).
				Str("category", string(res.Category)).
				Msg("category pipeline failed")
			failures = append(failures, fmt.Errorf("%s: %w", res.Category, res.Err))
			continue
		}

		if err := ac.reporter.Handle(adapters.MapSummaryToReport(res.Summary, period)); err != nil {
			return fmt.Errorf("failed to render %s report: %w", res.Category, err)
		}
		if err := writeCharts(cfg.OutputDir, res.Summary); err != nil {
			return err
		}
	}

	return errors.Join(failures...)
}

func writeCharts(dir string, s *analysis.Summary) error {
	hourly := filepath.Join(dir, fmt.Sprintf("%s_hourly_counts.png", s.Category))
	err := charts.SaveHourlyCounts(
		hourly,
		fmt.Sprintf("%s taxi hourly pickup/drop-off counts", s.Category),
		s.PickupCrowding.HourlyTotals(),
		s.DropoffCrowding.HourlyTotals(),
	)
	if err != nil {
		return err
	}

	correlations := filepath.Join(dir, fmt.Sprintf("%s_tip_correlations.png", s.Category))
	return charts.SaveTipCorrelations(
		correlations,
		fmt.Sprintf("%s taxi tip correlations", s.Category),
		s.TipCorrelations,
	)
}
