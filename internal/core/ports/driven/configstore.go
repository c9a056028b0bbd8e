package driven

// Configuration keys read by the deeplink service.
const (
	ConfigKeyScheme    = "deeplink.scheme"
	ConfigKeyPublisher = "deeplink.publisher"
	ConfigKeyExtension = "deeplink.extension"
	ConfigKeyCommand   = "deeplink.command"
	ConfigKeyPromptDir = "prompts.directory"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// All returns a copy of every key/value pair, keyed in dot notation.
	All() map[string]any

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
