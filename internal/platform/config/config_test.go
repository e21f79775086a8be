package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fittrack/internal/platform/config"
)

func TestLoadDefaultsWhenSettingsFileMissing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatabasePath != filepath.Join(dir, "fitness_tracker.db") {
		t.Fatalf("unexpected default db path: %s", cfg.DatabasePath)
	}
	if cfg.Theme.Background != "#1e3d59" || cfg.Theme.Accent != "#aed581" {
		t.Fatalf("default palette not applied: %+v", cfg.Theme)
	}
	if cfg.ActivityBanner != "" || cfg.NutritionBanner != "" {
		t.Fatalf("banners should default to unset")
	}
}

func TestLoadLayersSettingsOverDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	settings := `
database_path: /tmp/custom.db
theme:
  accent: "#ff8800"
activity_banner: art/activity.txt
`
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(settings), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatabasePath != "/tmp/custom.db" {
		t.Fatalf("db path not overridden: %s", cfg.DatabasePath)
	}
	if cfg.Theme.Accent != "#ff8800" {
		t.Fatalf("accent not overridden: %s", cfg.Theme.Accent)
	}
	if cfg.Theme.Background != "#1e3d59" {
		t.Fatalf("unset colors must keep defaults: %s", cfg.Theme.Background)
	}
	if cfg.ActivityBanner != "art/activity.txt" {
		t.Fatalf("banner not read: %s", cfg.ActivityBanner)
	}
}

func TestLoadRejectsEmptyDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(""); err == nil {
		t.Fatalf("empty data dir should fail")
	}
}
