package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hora-argentina/internal/policy"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	App    AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Policies []PolicyConfig // offset policies offered for comparison
}

// PolicyConfig is the file/env representation of one offset policy.
// Offsets are hours east of UTC; window bounds are "MM-DD" strings.
type PolicyConfig struct {
	Name         string
	Kind         string // fixed, seasonal
	Offset       float64
	SummerOffset float64
	SummerStart  string
	SummerEnd    string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.hora-argentina")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.policies", defaultPolicies())

	// Read from environment variables
	viper.SetEnvPrefix("HORA_ARGENTINA")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// defaultPolicies covers the Argentine debate: the current fixed UTC-3,
// the proposed fixed UTC-4, and the proposed UTC-4 with a UTC-3 summer
// window over the southern summer.
func defaultPolicies() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name":   "utc-3",
			"kind":   "fixed",
			"offset": -3.0,
		},
		{
			"name":   "utc-4",
			"kind":   "fixed",
			"offset": -4.0,
		},
		{
			"name":         "utc-4-verano",
			"kind":         "seasonal",
			"offset":       -4.0,
			"summeroffset": -3.0,
			"summerstart":  "10-01",
			"summerend":    "03-31",
		},
	}
}

// Policies converts the configured policy entries into validated domain
// policies, preserving their configured order
func (c *Config) Policies() ([]policy.Policy, error) {
	policies := make([]policy.Policy, 0, len(c.App.Policies))
	for _, pc := range c.App.Policies {
		p, err := pc.toPolicy()
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

func (pc PolicyConfig) toPolicy() (policy.Policy, error) {
	switch policy.Kind(pc.Kind) {
	case policy.KindFixed:
		return policy.Fixed(pc.Name, pc.Offset), nil
	case policy.KindSeasonal:
		start, err := policy.ParseMonthDay(pc.SummerStart)
		if err != nil {
			return policy.Policy{}, fmt.Errorf("%w %q: summer start: %v", policy.ErrInvalidPolicy, pc.Name, err)
		}
		end, err := policy.ParseMonthDay(pc.SummerEnd)
		if err != nil {
			return policy.Policy{}, fmt.Errorf("%w %q: summer end: %v", policy.ErrInvalidPolicy, pc.Name, err)
		}
		return policy.Seasonal(pc.Name, pc.Offset, pc.SummerOffset, start, end), nil
	}
	return policy.Policy{}, fmt.Errorf("%w %q: unknown kind %q", policy.ErrInvalidPolicy, pc.Name, pc.Kind)
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
