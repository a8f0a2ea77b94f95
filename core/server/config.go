package server

// Config holds configuration for the operational HTTP server.
type Config struct {
	// Port is the port where the status server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the status endpoints.
	// The health endpoint is always public.
	ApiKey string `mapstructure:"api_key" default:""`
	// Enabled toggles the status server; the sync daemon runs without it.
	Enabled bool `mapstructure:"enabled" default:"true"`
}
