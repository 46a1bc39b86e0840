package driving

import "github.com/custodia-labs/wpdocs/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves the current source settings, applying defaults for
	// missing or invalid values.
	Get() domain.SourceSettings

	// Value returns the effective value of one setting as text.
	Value(key string) (string, error)

	// Set validates and stores a single setting.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string
}
