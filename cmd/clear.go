package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"preekrooster/core/calendar"
	"preekrooster/core/config"
	"preekrooster/core/logger"

	"preekrooster/feature/rooster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var yesConfirm bool

// clearCmd deletes every event from the configured calendar.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all events from the calendar",
	Long: `Deletes every event from the configured calendar. Intended for
resetting a calendar before a fresh sync.

Examples:
  # Clear with interactive confirmation
  preekrooster clear

  # Clear with auto-confirm (non-interactive)
  preekrooster clear --yes`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
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

	provider, err := calendar.NewProvider(ctx, cfg.Calendar)
	if err != nil {
		return fmt.Errorf("failed to create calendar provider: %w", err)
	}

	l.Info("Clearing calendar",
		zap.String("provider", provider.Name()),
		zap.String("calendar", cfg.Calendar.CalendarID),
	)

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// The clear operation needs no row source or probe.
	service := rooster.NewService(nil, provider, nil, nil, l)
	deleted, err := service.ClearCalendar(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear calendar: %w", err)
	}

	l.Info("Calendar cleared", zap.Int("deleted", deleted))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm deleting all events: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
