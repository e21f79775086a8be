package domain_test

import (
	"errors"
	"testing"

	"fittrack/internal/modules/nutrition/domain"
	apperrors "fittrack/internal/platform/errors"
)

func TestParseFormDefaultsEmptyMacrosToZero(t *testing.T) {
	t.Parallel()
	entry, err := domain.ParseForm("Apple", "95", "", "", "")
	if err != nil {
		t.Fatalf("empty macros are a default, not an error: %v", err)
	}
	if entry.Calories != 95 || entry.Carbs != 0 || entry.Protein != 0 || entry.Fats != 0 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestParseFormRejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()
	if _, err := domain.ParseForm("", "95", "", "", ""); !errors.Is(err, apperrors.ErrMissingField) {
		t.Fatalf("missing food item must fail, got %v", err)
	}
	if _, err := domain.ParseForm("Apple", "", "", "", ""); !errors.Is(err, apperrors.ErrMissingField) {
		t.Fatalf("missing calories must fail, got %v", err)
	}
}

func TestParseFormNamesTheNonNumericField(t *testing.T) {
	t.Parallel()
	cases := []struct {
		calories, carbs, protein, fats string
		field                          string
	}{
		{"many", "", "", "", "calories"},
		{"95", "x", "", "", "carbs"},
		{"95", "25", "y", "", "protein"},
		{"95", "25", "0", "z", "fats"},
	}
	for _, tc := range cases {
		_, err := domain.ParseForm("Apple", tc.calories, tc.carbs, tc.protein, tc.fats)
		if !errors.Is(err, apperrors.ErrNotNumeric) {
			t.Fatalf("expected not-numeric error for field %s, got %v", tc.field, err)
		}
		var fieldErr *apperrors.FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != tc.field {
			t.Fatalf("expected error naming %q, got %v", tc.field, err)
		}
	}
}

func TestDisplayLines(t *testing.T) {
	t.Parallel()
	entry := domain.Entry{FoodItem: "Apple", Calories: 95, Date: "2026-08-23"}
	want := "Apple - 95 cal - 0g carbs - 0g protein - 0g fats - 2026-08-23"
	if got := entry.DisplayLine(); got != want {
		t.Fatalf("unexpected display line: %s", got)
	}
	lines := domain.DisplayLines(nil)
	if len(lines) != 1 || lines[0] != domain.NoRecordsLine {
		t.Fatalf("empty listing must map to the no-records line, got %v", lines)
	}
}
