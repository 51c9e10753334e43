package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Synthesis    SynthesisConfig `mapstructure:"synthesis"`
	Viewport     ViewportConfig  `mapstructure:"viewport"`
	Review       ReviewConfig    `mapstructure:"review"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// SynthesisConfig controls the default synthesized waveform
type SynthesisConfig struct {
	Duration   float64 `mapstructure:"duration"`    // Seconds
	SampleRate int     `mapstructure:"sample_rate"` // Hz
}

// ViewportConfig bounds the zoom factor accepted by the API
type ViewportConfig struct {
	MinZoom float64 `mapstructure:"min_zoom"`
	MaxZoom float64 `mapstructure:"max_zoom"`
}

// ReviewConfig controls the quality-control workflow
type ReviewConfig struct {
	AutoApproveDelay time.Duration `mapstructure:"auto_approve_delay"`
}

// RateLimitConfig contains API rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}
