package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timer.RefreshInterval != Duration(50*time.Millisecond) {
		t.Errorf("expected refresh interval 50ms, got %v", cfg.Timer.RefreshInterval)
	}
	if cfg.Alert.Pulse != Duration(2800*time.Millisecond) {
		t.Errorf("expected pulse 2.8s, got %v", cfg.Alert.Pulse)
	}
	if cfg.Keys.Primary != " " {
		t.Errorf("expected space as primary key, got %q", cfg.Keys.Primary)
	}
	if cfg.Keys.Reset != "r" {
		t.Errorf("expected r as reset key, got %q", cfg.Keys.Reset)
	}
	if cfg.Theme.SystemAppearance != AppearanceAuto {
		t.Errorf("expected auto appearance, got %q", cfg.Theme.SystemAppearance)
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Errorf("expected 90s, got %v", time.Duration(d))
	}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "1m30s" {
		t.Errorf("expected 1m30s, got %s", text)
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
	if cfg.Timer.Minutes != 1 {
		t.Errorf("expected default 1 minute, got %d", cfg.Timer.Minutes)
	}
	if cfg.Alert.BeepLength != Duration(180*time.Millisecond) {
		t.Errorf("expected beep length 180ms, got %v", cfg.Alert.BeepLength)
	}
	if strings.HasPrefix(cfg.Storage.DataDir, "~") {
		t.Errorf("expected data dir to be expanded, got %q", cfg.Storage.DataDir)
	}
}

func TestLoadFrom_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[timer]
hours = 1
minutes = 30
seconds = 15
refresh_interval = "100ms"

[alert]
sound = false
pulse = "1s"

[theme]
system_appearance = "dark"

[storage]
data_dir = '` + dir + `'

`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Timer.Hours != 1 || cfg.Timer.Minutes != 30 || cfg.Timer.Seconds != 15 {
		t.Errorf("unexpected timer inputs: %+v", cfg.Timer)
	}
	if cfg.Timer.RefreshInterval != Duration(100*time.Millisecond) {
		t.Errorf("expected 100ms, got %v", cfg.Timer.RefreshInterval)
	}
	if cfg.Alert.Sound {
		t.Error("expected sound disabled")
	}
	if !cfg.Alert.Notify {
		t.Error("expected notify to keep its default")
	}
	if cfg.Alert.Pulse != Duration(time.Second) {
		t.Errorf("expected pulse 1s, got %v", cfg.Alert.Pulse)
	}
	if cfg.Theme.SystemAppearance != AppearanceDark {
		t.Errorf("expected dark appearance, got %q", cfg.Theme.SystemAppearance)
	}
	if GetDBPath(cfg) != filepath.Join(dir, "timer.db") {
		t.Errorf("unexpected db path %q", GetDBPath(cfg))
	}
}

func TestLoadFrom_InvalidAppearanceFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\nsystem_appearance = \"sepia\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Theme.SystemAppearance != AppearanceAuto {
		t.Errorf("expected auto, got %q", cfg.Theme.SystemAppearance)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Timer.Seconds = 42
	cfg.Keys.Reset = "x"
	cfg.Storage.DataDir = dir
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.Timer.Seconds != 42 {
		t.Errorf("expected 42 seconds, got %d", loaded.Timer.Seconds)
	}
	if loaded.Keys.Reset != "x" {
		t.Errorf("expected reset key x, got %q", loaded.Keys.Reset)
	}
}

func TestGetLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDir = filepath.Join("data", "timer")

	if got := GetLogPath(cfg); got != filepath.Join("data", "timer", "timer.log") {
		t.Errorf("unexpected relative log path %q", got)
	}

	abs := filepath.Join(t.TempDir(), "custom.log")
	cfg.Log.File = abs
	if got := GetLogPath(cfg); got != abs {
		t.Errorf("expected absolute log path %q, got %q", abs, got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.timer")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".timer") {
		t.Errorf("expected %q, got %q", filepath.Join(home, ".timer"), got)
	}

	got, err = expandHome("/srv/timer")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/srv/timer" {
		t.Errorf("expected path unchanged, got %q", got)
	}
}
