package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("ECG")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetFloat64("synthesis.duration") <= 0 {
		return fmt.Errorf("invalid synthesis duration: %f", viper.GetFloat64("synthesis.duration"))
	}
	if viper.GetInt("synthesis.sample_rate") <= 0 {
		return fmt.Errorf("invalid synthesis sample rate: %d", viper.GetInt("synthesis.sample_rate"))
	}

	minZoom := viper.GetFloat64("viewport.min_zoom")
	maxZoom := viper.GetFloat64("viewport.max_zoom")
	if minZoom <= 0 || maxZoom < minZoom {
		return fmt.Errorf("invalid zoom range: [%f, %f]", minZoom, maxZoom)
	}

	// Auto-correct a non-positive review delay rather than failing startup
	if viper.GetDuration("review.auto_approve_delay") <= 0 {
		viper.Set("review.auto_approve_delay", time.Second)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults. The in-memory DSN keeps session state strictly
	// process-local; point this at a file for a durable development setup.
	viper.SetDefault("database.path", ":memory:")
	viper.SetDefault("database.verbose", false)

	// Waveform synthesis defaults
	viper.SetDefault("synthesis.duration", 10.0)
	viper.SetDefault("synthesis.sample_rate", 500)

	// Viewport defaults
	viper.SetDefault("viewport.min_zoom", 0.5)
	viper.SetDefault("viewport.max_zoom", 4.0)

	// Quality review defaults
	viper.SetDefault("review.auto_approve_delay", 1*time.Second)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)
}
