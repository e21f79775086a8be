package domain_test

import (
	"errors"
	"testing"

	"fittrack/internal/modules/activity/domain"
	apperrors "fittrack/internal/platform/errors"
)

func TestParseFormNormalizesValidInput(t *testing.T) {
	t.Parallel()
	activity, err := domain.ParseForm(" Running ", "30", "High")
	if err != nil {
		t.Fatalf("valid input should parse: %v", err)
	}
	if activity.Name != "Running" || activity.DurationMin != 30 || activity.Intensity != "High" {
		t.Fatalf("unexpected record: %+v", activity)
	}
}

func TestParseFormRejectsMissingFields(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		duration  string
		intensity string
		field     string
	}{
		{"", "30", "High", "activity name"},
		{"Running", "", "High", "duration"},
		{"Running", "30", "", "intensity"},
	}
	for _, tc := range cases {
		_, err := domain.ParseForm(tc.name, tc.duration, tc.intensity)
		if !errors.Is(err, apperrors.ErrMissingField) {
			t.Fatalf("expected missing-field error for %q/%q/%q, got %v", tc.name, tc.duration, tc.intensity, err)
		}
		var fieldErr *apperrors.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != tc.field {
			t.Fatalf("expected error naming %q, got %v", tc.field, err)
		}
	}
}

func TestParseFormRejectsNonNumericDuration(t *testing.T) {
	t.Parallel()
	_, err := domain.ParseForm("Running", "abc", "High")
	if !errors.Is(err, apperrors.ErrNotNumeric) {
		t.Fatalf("expected not-numeric error, got %v", err)
	}
}

func TestParseFormAcceptsUnboundedDurations(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"0", "-15"} {
		activity, err := domain.ParseForm("Running", raw, "High")
		if err != nil {
			t.Fatalf("duration %s should pass without range checks: %v", raw, err)
		}
		if activity.DurationMin > 0 {
			t.Fatalf("duration %s parsed as %d", raw, activity.DurationMin)
		}
	}
}

func TestParseFormAcceptsFreeTextIntensity(t *testing.T) {
	t.Parallel()
	activity, err := domain.ParseForm("Running", "30", "Brutal")
	if err != nil {
		t.Fatalf("intensity is selector-constrained only, free text must pass: %v", err)
	}
	if activity.Intensity != "Brutal" {
		t.Fatalf("unexpected intensity: %s", activity.Intensity)
	}
}

func TestDisplayLines(t *testing.T) {
	t.Parallel()
	record := domain.Activity{Name: "Running", DurationMin: 30, Intensity: "High", Date: "2026-08-23"}
	if got := record.DisplayLine(); got != "Running - 30 min - High - 2026-08-23" {
		t.Fatalf("unexpected display line: %s", got)
	}
	lines := domain.DisplayLines(nil)
	if len(lines) != 1 || lines[0] != domain.NoRecordsLine {
		t.Fatalf("empty listing must map to the no-records line, got %v", lines)
	}
}
