package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "fittrack/internal/platform/errors"
)

// NoGoalsLine is rendered by the summary view when no goal has ever been set.
const NoGoalsLine = "No goals set yet."

// Goal is the single personal target pair. The store keeps at most one row:
// setting new goals replaces whatever was there.
type Goal struct {
	ID                  int64
	WeeklyExerciseHours int
	DailyCalorieLimit   int
}

// ParseForm validates raw form input. Both fields are required integers; no
// range check applies, so zero or negative targets pass unchanged.
func ParseForm(weeklyHours, dailyLimit string) (Goal, error) {
	weeklyHours = strings.TrimSpace(weeklyHours)
	dailyLimit = strings.TrimSpace(dailyLimit)

	if weeklyHours == "" {
		return Goal{}, apperrors.MissingField("weekly exercise goal")
	}
	if dailyLimit == "" {
		return Goal{}, apperrors.MissingField("daily calorie limit")
	}
	hours, err := strconv.Atoi(weeklyHours)
	if err != nil {
		return Goal{}, apperrors.NotNumeric("weekly exercise goal")
	}
	limit, err := strconv.Atoi(dailyLimit)
	if err != nil {
		return Goal{}, apperrors.NotNumeric("daily calorie limit")
	}
	return Goal{WeeklyExerciseHours: hours, DailyCalorieLimit: limit}, nil
}

// StatusLine is the one-line notice shown on the goal tab after a set.
func (g Goal) StatusLine() string {
	return fmt.Sprintf("Weekly Goal: %d hrs | Daily Limit: %d cal", g.WeeklyExerciseHours, g.DailyCalorieLimit)
}

// SummaryLines is the two-line summary-view rendering.
func (g Goal) SummaryLines() []string {
	return []string{
		fmt.Sprintf("Weekly Exercise: %d hrs", g.WeeklyExerciseHours),
		fmt.Sprintf("Daily Calorie Limit: %d cal", g.DailyCalorieLimit),
	}
}
