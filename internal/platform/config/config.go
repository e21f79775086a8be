package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Palette holds the UI colors as hex strings. The defaults echo the
// navy/green scheme the application has always shipped with.
type Palette struct {
	Background string `yaml:"background"`
	Frame      string `yaml:"frame"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
	Success    string `yaml:"success"`
	Error      string `yaml:"error"`
}

// Settings is the user-editable part of the configuration, read from
// settings.yaml in the data directory. Every field has a working default so
// the file is optional.
type Settings struct {
	DatabasePath    string  `yaml:"database_path"`
	Theme           Palette `yaml:"theme"`
	ActivityBanner  string  `yaml:"activity_banner"`
	NutritionBanner string  `yaml:"nutrition_banner"`
}

type Config struct {
	DataDir string
	Settings
}

func defaultPalette() Palette {
	return Palette{
		Background: "#1e3d59",
		Frame:      "#2c5f77",
		Text:       "#ffffff",
		Muted:      "#9bb2c4",
		Accent:     "#aed581",
		Success:    "#aed581",
		Error:      "#e57373",
	}
}

// Load resolves the configuration for dataDir, layering settings.yaml over
// the defaults. A missing settings file is not an error.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	cfg := Config{
		DataDir: dataDir,
		Settings: Settings{
			DatabasePath: filepath.Join(dataDir, "fitness_tracker.db"),
			Theme:        defaultPalette(),
		},
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "settings.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg.Settings); err != nil {
		return Config{}, fmt.Errorf("decode settings: %w", err)
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(dataDir, "fitness_tracker.db")
	}
	cfg.Theme = mergePalette(defaultPalette(), cfg.Theme)
	return cfg, nil
}

// mergePalette fills colors the settings file left blank.
func mergePalette(base, over Palette) Palette {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Palette{
		Background: pick(over.Background, base.Background),
		Frame:      pick(over.Frame, base.Frame),
		Text:       pick(over.Text, base.Text),
		Muted:      pick(over.Muted, base.Muted),
		Accent:     pick(over.Accent, base.Accent),
		Success:    pick(over.Success, base.Success),
		Error:      pick(over.Error, base.Error),
	}
}
