package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "fittrack/internal/platform/errors"
)

// NoRecordsLine is rendered in place of an empty nutrition list.
const NoRecordsLine = "No nutrition records found."

type Entry struct {
	ID       int64
	FoodItem string
	Calories int
	Carbs    int
	Protein  int
	Fats     int
	Date     string // YYYY-MM-DD, stamped at insert time
}

// ParseForm validates raw form input. Food item and calories are required;
// the macro fields are optional and normalize to 0 when left empty. Any
// non-empty numeric field that fails integer parsing names itself in the
// returned error. No range checks apply.
func ParseForm(foodItem, calories, carbs, protein, fats string) (Entry, error) {
	foodItem = strings.TrimSpace(foodItem)
	calories = strings.TrimSpace(calories)

	if foodItem == "" {
		return Entry{}, apperrors.MissingField("food item")
	}
	if calories == "" {
		return Entry{}, apperrors.MissingField("calories")
	}
	cal, err := strconv.Atoi(calories)
	if err != nil {
		return Entry{}, apperrors.NotNumeric("calories")
	}
	entry := Entry{FoodItem: foodItem, Calories: cal}

	if entry.Carbs, err = parseMacro("carbs", carbs); err != nil {
		return Entry{}, err
	}
	if entry.Protein, err = parseMacro("protein", protein); err != nil {
		return Entry{}, err
	}
	if entry.Fats, err = parseMacro("fats", fats); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// parseMacro applies the default-substitution rule: empty means 0, anything
// else must parse as an integer.
func parseMacro(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	grams, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NotNumeric(field)
	}
	return grams, nil
}

func (e Entry) DisplayLine() string {
	return fmt.Sprintf("%s - %d cal - %dg carbs - %dg protein - %dg fats - %s",
		e.FoodItem, e.Calories, e.Carbs, e.Protein, e.Fats, e.Date)
}

func DisplayLines(records []Entry) []string {
	if len(records) == 0 {
		return []string{NoRecordsLine}
	}
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.DisplayLine())
	}
	return lines
}
