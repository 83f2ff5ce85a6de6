package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/labeler/internal/source"
)

// InputConfig controls where item names come from.
type InputConfig struct {
	Path       string `mapstructure:"path"`
	SampleSize int    `mapstructure:"sample_size"`
	Seed       uint64 `mapstructure:"seed"`
}

// ExportConfig selects the export sink.
type ExportConfig struct {
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
	Color string `mapstructure:"color"` // auto | always | never
}

// LogConfig holds logger settings. An empty file means stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Config holds everything a labeling session needs.
// Values come from .labeler.yaml, LABELER_* env vars and CLI flags.
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Export ExportConfig `mapstructure:"export"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "")
	v.SetDefault("input.sample_size", source.DefaultSampleSize)
	v.SetDefault("input.seed", 0)
	v.SetDefault("export.format", "json")
	v.SetDefault("export.path", "")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.color", "auto")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Init wires the config file and environment into v. A missing config file
// is fine; an unreadable one is not.
func Init(v *viper.Viper, cfgFile, home string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".labeler")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
	}
	v.SetEnvPrefix("LABELER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load unmarshals v into a Config and checks the values a session relies on.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Input.SampleSize < 0 {
		return Config{}, fmt.Errorf("input.sample_size must be >= 0, got %d", c.Input.SampleSize)
	}
	switch strings.ToLower(c.UI.Color) {
	case "", "auto", "always", "never":
	default:
		return Config{}, fmt.Errorf("ui.color must be auto, always or never, got %q", c.UI.Color)
	}
	return c, nil
}
