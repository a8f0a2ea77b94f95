package config

import (
	"errors"
	"reflect"
	"strings"

	"preekrooster/core/calendar"
	"preekrooster/core/database"
	"preekrooster/core/logger"
	"preekrooster/core/scheduler"
	"preekrooster/core/server"
	"preekrooster/feature/rooster/liturgy"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the operational HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the schedule database connection.
	Database database.Config `mapstructure:"database"`
	// Calendar holds configuration for the calendar provider.
	Calendar calendar.Config `mapstructure:"calendar"`
	// Liturgy holds configuration for the liturgy availability probe.
	Liturgy liturgy.Config `mapstructure:"liturgy"`
	// Schedule holds configuration for the sync run scheduler.
	Schedule scheduler.Config `mapstructure:"schedule"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DATABASE_HOST -> database.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings that have no usable default. It is called
// before the first sync run so misconfiguration fails fast instead of
// surfacing as a failed run.
func (c *Config) Validate() error {
	if !c.Calendar.IsValidProvider() {
		return errors.New("calendar.provider must be google or outlook")
	}
	if c.Database.Host == "" || c.Database.Name == "" {
		return errors.New("database.host and database.name are required")
	}
	if c.Database.Query == "" {
		return errors.New("database.query is required")
	}
	if c.Liturgy.URL == "" {
		return errors.New("liturgy.url is required")
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
