// Package config provides configuration management for the preekrooster daemon.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections owned by the packages they configure:
//   - Server: status server settings (port, API key)
//   - Log: logging level and format
//   - Database: MySQL connection details and the service row query
//   - Calendar: calendar provider selection and credentials
//   - Liturgy: document URL for the availability probe
//   - Schedule: cron expressions for the sync runs
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. DATABASE_HOST -> database.host, CALENDAR_PROVIDER ->
// calendar.provider.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Calendar.Provider)
package config
