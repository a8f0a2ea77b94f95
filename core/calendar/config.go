package calendar

// Provider identifiers.
const (
	ProviderGoogle  = "google"
	ProviderOutlook = "outlook"
)

// Config holds configuration for the calendar provider.
type Config struct {
	// Provider selects the calendar backend (google, outlook).
	Provider string `mapstructure:"provider" default:"google"`
	// Timezone is the IANA timezone events are created in.
	Timezone string `mapstructure:"timezone" default:"Europe/Amsterdam"`

	// CalendarID is the target calendar. For Google this is the calendar's
	// ID (or "primary"); for Outlook the user's default calendar is used
	// when empty.
	CalendarID string `mapstructure:"calendar_id" default:"primary"`

	// CredentialsFile is the Google service account JSON key file.
	CredentialsFile string `mapstructure:"credentials_file" default:"./service_account.json"`

	// TenantID, ClientID and ClientSecret configure the Microsoft Graph
	// OAuth client-credentials flow.
	TenantID     string `mapstructure:"tenant_id" default:""`
	ClientID     string `mapstructure:"client_id" default:""`
	ClientSecret string `mapstructure:"client_secret" default:""`
	// UserID is the Graph user (UPN or object ID) whose calendar is managed.
	UserID string `mapstructure:"user_id" default:""`
}

// IsValidProvider checks if the configured provider is supported.
func (c Config) IsValidProvider() bool {
	switch c.Provider {
	case ProviderGoogle, ProviderOutlook:
		return true
	default:
		return false
	}
}
