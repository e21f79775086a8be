package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"fittrack/internal/ui/assets"
)

func TestBannerLoadsArt(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "banner.txt")
	if err := os.WriteFile(path, []byte(" /\\ fit /\\ \n"), 0o644); err != nil {
		t.Fatalf("write banner: %v", err)
	}
	if got := assets.Banner(path); got != " /\\ fit /\\ " {
		t.Fatalf("unexpected banner: %q", got)
	}
}

func TestBannerFailuresAreSilent(t *testing.T) {
	t.Parallel()
	if got := assets.Banner(""); got != "" {
		t.Fatalf("unset path must yield empty banner, got %q", got)
	}
	if got := assets.Banner(filepath.Join(t.TempDir(), "missing.txt")); got != "" {
		t.Fatalf("missing file must yield empty banner, got %q", got)
	}
}
