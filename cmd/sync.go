package cmd

import (
	"context"
	"fmt"
	"time"

	"preekrooster/core/calendar"
	"preekrooster/core/config"
	"preekrooster/core/database"
	"preekrooster/core/logger"

	"preekrooster/feature/rooster"
	"preekrooster/feature/rooster/liturgy"
	"preekrooster/feature/rooster/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a single sync pass and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass and exit",
	Long: `Fetches the upcoming service rows, reconciles them against the
calendar once and exits. Useful for cron-driven setups and manual runs.`,
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Calendar.Timezone, err)
	}

	provider, err := calendar.NewProvider(ctx, cfg.Calendar)
	if err != nil {
		return fmt.Errorf("failed to create calendar provider: %w", err)
	}

	rows := models.NewRowSource(db, cfg.Database.Query)
	probe := liturgy.New(cfg.Liturgy, l)
	service := rooster.NewService(rows, provider, probe, loc, l)

	summary := service.Run(ctx)
	l.Info("Sync finished",
		zap.String("run_id", summary.RunID),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)

	if summary.LastError != "" {
		return fmt.Errorf("sync run failed: %s", summary.LastError)
	}
	return nil
}
