package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "does-not-exist.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Catalog != "" {
		t.Fatalf("Catalog = %q, want empty (embedded)", cfg.Catalog)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.Watch || cfg.ResetPageOnFilter {
		t.Fatalf("Watch/ResetPageOnFilter = %v/%v, want false/false", cfg.Watch, cfg.ResetPageOnFilter)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
	if cfg.Log.Level != defaultLogLevel {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, defaultLogLevel)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "glassy", "config.toml")
	if cfg.Path != want {
		t.Fatalf("Path = %q, want %q", cfg.Path, want)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
catalog = "  ~/catalogs/**/*.yaml  "
theme = "  Midnight  "
watch = true
poll_interval = 5
reset_page_on_filter = true

[log]
file = "  ~/logs/glassy.log  "
level = " DEBUG "
max_size_mb = 1
max_backups = 7
max_age_days = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "catalogs/**/*.yaml"); cfg.Catalog != want {
		t.Fatalf("Catalog = %q, want %q", cfg.Catalog, want)
	}
	if cfg.Theme != "Midnight" {
		t.Fatalf("Theme = %q, want Midnight", cfg.Theme)
	}
	if !cfg.Watch || !cfg.ResetPageOnFilter {
		t.Fatalf("Watch/ResetPageOnFilter = %v/%v, want true/true", cfg.Watch, cfg.ResetPageOnFilter)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.MaxSizeMB != 1 || cfg.Log.MaxBackups != 7 || cfg.Log.MaxAgeDays != 2 {
		t.Fatalf("Log rotation = %+v, want 1/7/2", cfg.Log)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
catalog = "   "
theme = ""

[log]
level = "  "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog != "" {
		t.Fatalf("Catalog = %q, want empty", cfg.Catalog)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.Log.Level != defaultLogLevel {
		t.Fatalf("Log.Level = %q, want %q", cfg.Log.Level, defaultLogLevel)
	}
	if cfg.Log.MaxSizeMB != defaultMaxSizeMB {
		t.Fatalf("Log.MaxSizeMB = %d, want %d", cfg.Log.MaxSizeMB, defaultMaxSizeMB)
	}
}

func TestLoad_LogFileOffIsKept(t *testing.T) {
	path := writeConfig(t, "[log]\nfile = \"off\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Log.File != "off" || !cfg.Log.LoggingDisabled() {
		t.Fatalf("Log.File = %q, want logging disabled", cfg.Log.File)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `catalog = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_NegativeNumbersFail(t *testing.T) {
	path := writeConfig(t, "poll_interval = -1\n[log]\nmax_backups = -2\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want validation error")
	}
	for _, want := range []string{"poll_interval", "log rotation"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Load error = %q, want it to mention %q", err.Error(), want)
		}
	}
}

func TestApply_OverridesFileValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	catalog := "~/other.json"
	theme := "Paper"
	watch := true
	cfg.Apply(Overrides{Catalog: &catalog, Theme: &theme, Watch: &watch})

	if cfg.Catalog != filepath.Join(home, "other.json") {
		t.Fatalf("Catalog = %q, want expanded path", cfg.Catalog)
	}
	if cfg.Theme != "Paper" || !cfg.Watch {
		t.Fatalf("Theme/Watch = %q/%v, want Paper/true", cfg.Theme, cfg.Watch)
	}

	blank := "  "
	cfg.Apply(Overrides{Theme: &blank})
	if cfg.Theme != "Paper" {
		t.Fatalf("blank theme override replaced %q", cfg.Theme)
	}
}

func TestLoggingDisabled(t *testing.T) {
	for _, file := range []string{"", "-", "off", " OFF "} {
		if !(LogConfig{File: file}).LoggingDisabled() {
			t.Fatalf("LoggingDisabled(%q) = false, want true", file)
		}
	}
	if (LogConfig{File: "/tmp/glassy.log"}).LoggingDisabled() {
		t.Fatalf("LoggingDisabled(path) = true, want false")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
