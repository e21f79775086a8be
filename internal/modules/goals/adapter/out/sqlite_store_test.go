package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	goalsout "fittrack/internal/modules/goals/adapter/out"
	"fittrack/internal/modules/goals/domain"
	apperrors "fittrack/internal/platform/errors"
)

func TestReplaceIsIdempotentOverRepeatedSets(t *testing.T) {
	t.Parallel()
	store, err := goalsout.NewSQLiteGoalStore(filepath.Join(t.TempDir(), "fitness_tracker.db"))
	if err != nil {
		t.Fatalf("new goal store: %v", err)
	}

	var lastID int64
	for i := 1; i <= 5; i++ {
		id, err := store.Replace(context.Background(), domain.Goal{WeeklyExerciseHours: i, DailyCalorieLimit: 1000 + i})
		if err != nil {
			t.Fatalf("replace %d: %v", i, err)
		}
		if id <= lastID {
			t.Fatalf("ids must increase across replaces: %d then %d", lastID, id)
		}
		lastID = id

		goal, err := store.Latest(context.Background())
		if err != nil {
			t.Fatalf("latest after replace %d: %v", i, err)
		}
		if goal.WeeklyExerciseHours != i || goal.DailyCalorieLimit != 1000+i {
			t.Fatalf("latest must equal the newest replace, got %+v at round %d", goal, i)
		}
	}
}

func TestLatestDistinguishesNoneFromZero(t *testing.T) {
	t.Parallel()
	store, err := goalsout.NewSQLiteGoalStore(filepath.Join(t.TempDir(), "fitness_tracker.db"))
	if err != nil {
		t.Fatalf("new goal store: %v", err)
	}

	if _, err := store.Latest(context.Background()); !errors.Is(err, apperrors.ErrNoGoalSet) {
		t.Fatalf("empty store must report the sentinel, got %v", err)
	}
	if _, err := store.Replace(context.Background(), domain.Goal{}); err != nil {
		t.Fatalf("replace with zero goal: %v", err)
	}
	goal, err := store.Latest(context.Background())
	if err != nil {
		t.Fatalf("zero-valued goal is a stored goal, not none: %v", err)
	}
	if goal.WeeklyExerciseHours != 0 || goal.DailyCalorieLimit != 0 {
		t.Fatalf("unexpected goal: %+v", goal)
	}
}
