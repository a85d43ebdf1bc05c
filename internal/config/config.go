package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/weekday-picker/internal/export"
	"github.com/username/weekday-picker/internal/preset"
)

// EnvPrefix is the prefix of environment variables that override config keys
const EnvPrefix = "WEEKDAY_PICKER"

// Config represents application configuration
type Config struct {
	Log     LogConfig           `mapstructure:"log"`
	Output  OutputConfig        `mapstructure:"output"`
	Presets []preset.Definition `mapstructure:"presets"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Empty logs to stderr
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// OutputConfig represents how completed selections are written
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json, yaml or ics
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Output:  OutputConfig{Format: string(export.FormatText)},
		Presets: preset.Defaults(),
	}
}

// Load loads configuration from file. A missing file is not an error when no
// explicit path was given: defaults apply, with environment overrides.
func Load(configPath string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.weekday-picker")
		v.AddConfigPath("/etc/weekday-picker")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("output.format", def.Output.Format)

	presets := make([]map[string]any, 0, len(def.Presets))
	for _, p := range def.Presets {
		presets = append(presets, map[string]any{
			"label":     p.Label,
			"last_days": p.LastDays,
		})
	}
	v.SetDefault("presets", presets)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	labels := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("presets[%d]: %w", i, err)
		}
		if labels[p.Label] {
			return fmt.Errorf("presets[%d]: duplicate label '%s'", i, p.Label)
		}
		labels[p.Label] = true
	}

	return nil
}

// GetLogLevel returns the configured log level, defaulting to info
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}
