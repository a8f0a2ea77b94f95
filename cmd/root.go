package cmd

import (
	"fmt"
	"os"

	"preekrooster/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "preekrooster",
	Short: "Church service calendar synchronizer",
	Long: `Preekrooster keeps the congregation's calendar in sync with the
service schedule database. Each upcoming service row is reflected as
exactly one calendar event; for the service coming up this week the event
description additionally links the weekly liturgy once it is published.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting; console
		// format matches CLI expectations.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
