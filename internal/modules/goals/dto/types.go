package dto

// SetInput carries the raw field values from the goal form.
type SetInput struct {
	WeeklyHours string
	DailyLimit  string
}

type GoalOutput struct {
	ID                  int64
	WeeklyExerciseHours int
	DailyCalorieLimit   int
	StatusLine          string
}
