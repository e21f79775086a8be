package assets

import (
	"log/slog"
	"os"
	"strings"
)

// Banner reads the decorative text banner at path. Banners are strictly
// cosmetic: an unset path or any read failure yields an empty banner, the
// failure is logged, and the rest of the interface is unaffected.
func Banner(path string) string {
	if path == "" {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("banner asset skipped", "path", path, "error", err)
		return ""
	}
	return strings.TrimRight(string(raw), "\n")
}
