// Package config provides process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. SIDEBAR_PORT.
const EnvPrefix = "SIDEBAR"

// Config holds all environment-based configuration.
type Config struct {
	// Port is the server port to listen on.
	// Env: SIDEBAR_PORT (default: 9876)
	Port int `envconfig:"PORT" default:"9876"`

	// ContentTypesFile is the YAML file with the content type definitions.
	// Env: SIDEBAR_CONTENTTYPES_FILE (default: config/contenttypes.yaml)
	ContentTypesFile string `envconfig:"CONTENTTYPES_FILE" default:"config/contenttypes.yaml"`

	// TranslationsDir holds messages.<locale>.yaml files.
	// Env: SIDEBAR_TRANSLATIONS_DIR
	// Default: the catalogs embedded in the binary
	TranslationsDir string `envconfig:"TRANSLATIONS_DIR"`

	// Locale of the sidebar captions.
	// Env: SIDEBAR_LOCALE (default: en)
	Locale string `envconfig:"LOCALE" default:"en"`

	// DBPath is the SQLite database with the content records.
	// Env: SIDEBAR_DB_PATH (default: :memory:)
	DBPath string `envconfig:"DB_PATH" default:":memory:"`

	// FixturesFile is an optional YAML list of records loaded at startup.
	// Env: SIDEBAR_FIXTURES_FILE
	FixturesFile string `envconfig:"FIXTURES_FILE"`

	// RoutePrefix is the path prefix of the admin area.
	// Env: SIDEBAR_ROUTE_PREFIX (default: /bolt)
	RoutePrefix string `envconfig:"ROUTE_PREFIX" default:"/bolt"`

	// LogLevel is the log verbosity level.
	// Env: SIDEBAR_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log output format (json or text).
	// Env: SIDEBAR_LOG_FORMAT (default: json)
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// APIPath is where the menu is served.
func (c Config) APIPath() string {
	return strings.TrimRight(c.RoutePrefix, "/") + "/api/menu"
}

// Validate checks values envconfig cannot.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ContentTypesFile == "" {
		return fmt.Errorf("%s_CONTENTTYPES_FILE is required", EnvPrefix)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%s_DB_PATH is required", EnvPrefix)
	}
	return nil
}

// LoadFromEnv reads the configuration from environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// Load reads the optional .env file, then the environment, and validates the result.
// Variables already set in the environment win over the .env file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envPath, err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
