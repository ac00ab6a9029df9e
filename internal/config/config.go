package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/config"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/utils"
)

// Config is the optional app config file. Values here are defaults that
// command-line flags and persisted settings override.
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Logging     LoggingConfig     `yaml:"logging"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Watch       WatchConfig       `yaml:"watch"`
	Onboarding  OnboardingConfig  `yaml:"onboarding"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// PreferencesConfig seeds the settings written by init.
type PreferencesConfig struct {
	Language string `yaml:"language"`
	Theme    string `yaml:"theme"`
	Timezone string `yaml:"timezone"`
}

type WatchConfig struct {
	Interval string `yaml:"interval"`
}

type OnboardingConfig struct {
	CalculatingDelay string `yaml:"calculating_delay"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: constants.DefaultConfigPath},
		Logging: LoggingConfig{Level: "info"},
		Preferences: PreferencesConfig{
			Language: constants.DefaultLanguage,
			Theme:    constants.DefaultTheme,
			Timezone: constants.DefaultTimezone,
		},
		Watch:      WatchConfig{Interval: constants.DefaultWatchInterval.String()},
		Onboarding: OnboardingConfig{CalculatingDelay: constants.CalculatingDelay.String()},
	}
}

// Load reads the YAML file at path with ${VAR} expansion. A missing file
// yields Default(); keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(constants.EnvAppConfigPath)
	}
	if path == "" {
		path = constants.DefaultAppConfigPath
	}

	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(expanded); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	provider, err := config.NewYAML(
		config.Static(Default()),
		config.File(expanded),
		config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create config provider: %w", err)
	}

	var cfg Config
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("failed to populate config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", expanded, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.WatchInterval(); err != nil {
		return err
	}
	if _, err := c.CalculatingDelay(); err != nil {
		return err
	}
	if !utils.ValidateTimezone(c.Preferences.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Preferences.Timezone)
	}
	return nil
}

// WatchInterval is how often the milestone watcher re-evaluates progress.
func (c *Config) WatchInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, fmt.Errorf("watch.interval: %w", err)
	}
	if d < time.Minute {
		return 0, fmt.Errorf("watch.interval must be at least 1m, got %s", d)
	}
	return d, nil
}

// CalculatingDelay is how long the onboarding Calculating step waits.
func (c *Config) CalculatingDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Onboarding.CalculatingDelay)
	if err != nil {
		return 0, fmt.Errorf("onboarding.calculating_delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("onboarding.calculating_delay cannot be negative")
	}
	return d, nil
}
