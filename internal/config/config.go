// Package config provides configuration management for Timer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config holds all configuration for the Timer application.
type Config struct {
	Timer   TimerConfig   `mapstructure:"timer"`
	Alert   AlertConfig   `mapstructure:"alert"`
	Keys    KeysConfig    `mapstructure:"keys"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// TimerConfig holds the initial duration inputs and the refresh cadence.
type TimerConfig struct {
	Hours           int      `mapstructure:"hours"`
	Minutes         int      `mapstructure:"minutes"`
	Seconds         int      `mapstructure:"seconds"`
	RefreshInterval Duration `mapstructure:"refresh_interval"`
}

// AlertConfig holds completion alert settings.
type AlertConfig struct {
	Sound         bool     `mapstructure:"sound"`
	Notify        bool     `mapstructure:"notify"`
	Pulse         Duration `mapstructure:"pulse"`
	BeepFrequency float64  `mapstructure:"beep_frequency"`
	BeepCount     int      `mapstructure:"beep_count"`
	BeepLength    Duration `mapstructure:"beep_length"`
	Timeout       Duration `mapstructure:"timeout"`
}

// KeysConfig holds the keyboard shortcuts.
type KeysConfig struct {
	Primary string `mapstructure:"primary"`
	Reset   string `mapstructure:"reset"`
}

// Appearance values for ThemeConfig.SystemAppearance.
const (
	AppearanceAuto  = "auto"
	AppearanceLight = "light"
	AppearanceDark  = "dark"
)

// ThemeConfig holds the host appearance setting used when no theme mode
// has been chosen explicitly.
type ThemeConfig struct {
	SystemAppearance string `mapstructure:"system_appearance"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

const defaultDataDir = "~/.timer"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Hours:           0,
			Minutes:         1,
			Seconds:         0,
			RefreshInterval: Duration(50 * time.Millisecond),
		},
		Alert: AlertConfig{
			Sound:         true,
			Notify:        true,
			Pulse:         Duration(2800 * time.Millisecond),
			BeepFrequency: 880,
			BeepCount:     3,
			BeepLength:    Duration(180 * time.Millisecond),
			Timeout:       Duration(10 * time.Second),
		},
		Keys: KeysConfig{
			Primary: " ",
			Reset:   "r",
		},
		Theme: ThemeConfig{
			SystemAppearance: AppearanceAuto,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Log: LogConfig{
			Level: "info",
			File:  "timer.log",
		},
	}
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating the file
// with defaults when it does not exist.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return decode(v)
}

// Save saves the configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath as TOML.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	v.Set("timer.hours", cfg.Timer.Hours)
	v.Set("timer.minutes", cfg.Timer.Minutes)
	v.Set("timer.seconds", cfg.Timer.Seconds)
	v.Set("timer.refresh_interval", cfg.Timer.RefreshInterval.String())
	v.Set("alert.sound", cfg.Alert.Sound)
	v.Set("alert.notify", cfg.Alert.Notify)
	v.Set("alert.pulse", cfg.Alert.Pulse.String())
	v.Set("alert.beep_frequency", cfg.Alert.BeepFrequency)
	v.Set("alert.beep_count", cfg.Alert.BeepCount)
	v.Set("alert.beep_length", cfg.Alert.BeepLength.String())
	v.Set("alert.timeout", cfg.Alert.Timeout.String())
	v.Set("keys.primary", cfg.Keys.Primary)
	v.Set("keys.reset", cfg.Keys.Reset)
	v.Set("theme.system_appearance", cfg.Theme.SystemAppearance)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	return v.WriteConfigAs(configPath)
}

// Watch re-reads configPath whenever it changes and hands the new
// configuration to onChange. Unreadable intermediate states are
// passed to onError and otherwise skipped.
func Watch(configPath string, onChange func(*Config), onError func(error)) error {
	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".timer", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "timer.db")
}

// GetLogPath returns the path to the log file. An absolute log.file is
// used as is; a relative one lives in the data directory.
func GetLogPath(cfg *Config) string {
	file := cfg.Log.File
	if file == "" {
		file = "timer.log"
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(cfg.Storage.DataDir, file)
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := expandHome(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dataDir

	switch cfg.Theme.SystemAppearance {
	case AppearanceAuto, AppearanceLight, AppearanceDark:
	default:
		cfg.Theme.SystemAppearance = AppearanceAuto
	}
	if cfg.Timer.RefreshInterval <= 0 {
		cfg.Timer.RefreshInterval = DefaultConfig().Timer.RefreshInterval
	}
	return &cfg, nil
}

// expandHome resolves a leading ~ in the data directory.
func expandHome(dir string) (string, error) {
	if dir == "" {
		dir = defaultDataDir
	}
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(dir, "~")), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("timer.hours", defaults.Timer.Hours)
	v.SetDefault("timer.minutes", defaults.Timer.Minutes)
	v.SetDefault("timer.seconds", defaults.Timer.Seconds)
	v.SetDefault("timer.refresh_interval", defaults.Timer.RefreshInterval.String())
	v.SetDefault("alert.sound", defaults.Alert.Sound)
	v.SetDefault("alert.notify", defaults.Alert.Notify)
	v.SetDefault("alert.pulse", defaults.Alert.Pulse.String())
	v.SetDefault("alert.beep_frequency", defaults.Alert.BeepFrequency)
	v.SetDefault("alert.beep_count", defaults.Alert.BeepCount)
	v.SetDefault("alert.beep_length", defaults.Alert.BeepLength.String())
	v.SetDefault("alert.timeout", defaults.Alert.Timeout.String())
	v.SetDefault("keys.primary", defaults.Keys.Primary)
	v.SetDefault("keys.reset", defaults.Keys.Reset)
	v.SetDefault("theme.system_appearance", defaults.Theme.SystemAppearance)
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
}
