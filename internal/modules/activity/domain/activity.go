package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "fittrack/internal/platform/errors"
)

// Intensity levels offered by the entry form. The selector constrains what
// the form can submit; the record itself accepts any text, so rows written
// through other fronts may carry other values.
const (
	IntensityLow    = "Low"
	IntensityMedium = "Medium"
	IntensityHigh   = "High"
)

func IntensityLevels() []string {
	return []string{IntensityLow, IntensityMedium, IntensityHigh}
}

// NoRecordsLine is rendered in place of an empty activity list.
const NoRecordsLine = "No activities logged yet."

type Activity struct {
	ID          int64
	Name        string
	DurationMin int
	Intensity   string
	Date        string // YYYY-MM-DD, stamped at insert time
}

// ParseForm validates raw form input and returns the normalized record.
// Durations carry no range check: zero and negative values pass through
// unchanged, a policy deliberately left to adopters.
func ParseForm(name, duration, intensity string) (Activity, error) {
	name = strings.TrimSpace(name)
	duration = strings.TrimSpace(duration)
	intensity = strings.TrimSpace(intensity)

	if name == "" {
		return Activity{}, apperrors.MissingField("activity name")
	}
	if duration == "" {
		return Activity{}, apperrors.MissingField("duration")
	}
	if intensity == "" {
		return Activity{}, apperrors.MissingField("intensity")
	}
	minutes, err := strconv.Atoi(duration)
	if err != nil {
		return Activity{}, apperrors.NotNumeric("duration")
	}
	return Activity{Name: name, DurationMin: minutes, Intensity: intensity}, nil
}

func (a Activity) DisplayLine() string {
	return fmt.Sprintf("%s - %d min - %s - %s", a.Name, a.DurationMin, a.Intensity, a.Date)
}

// DisplayLines formats a listing for redisplay. An empty listing maps to the
// designated no-records line, never to empty output.
func DisplayLines(records []Activity) []string {
	if len(records) == 0 {
		return []string{NoRecordsLine}
	}
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.DisplayLine())
	}
	return lines
}
