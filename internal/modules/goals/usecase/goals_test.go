package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	goalsout "fittrack/internal/modules/goals/adapter/out"
	"fittrack/internal/modules/goals/domain"
	"fittrack/internal/modules/goals/dto"
	goalsin "fittrack/internal/modules/goals/port/in"
	"fittrack/internal/modules/goals/service"
	"fittrack/internal/modules/goals/usecase"
	apperrors "fittrack/internal/platform/errors"

	_ "modernc.org/sqlite"
)

func newUsecase(t *testing.T) (goalsin.Usecase, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fitness_tracker.db")
	store, err := goalsout.NewSQLiteGoalStore(dbPath)
	if err != nil {
		t.Fatalf("new goal store: %v", err)
	}
	return usecase.NewInteractor(service.NewGoalService(store)), dbPath
}

func TestLatestReturnsNoGoalSetUntilFirstSet(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)

	if _, err := uc.Latest(context.Background()); !errors.Is(err, apperrors.ErrNoGoalSet) {
		t.Fatalf("expected no-goal sentinel before any set, got %v", err)
	}
	lines, err := uc.SummaryLines(context.Background())
	if err != nil {
		t.Fatalf("summary lines: %v", err)
	}
	if len(lines) != 1 || lines[0] != domain.NoGoalsLine {
		t.Fatalf("expected the no-goals notice, got %v", lines)
	}
}

func TestSetReplacesPriorGoalCompletely(t *testing.T) {
	t.Parallel()
	uc, dbPath := newUsecase(t)

	if _, err := uc.Set(context.Background(), dto.SetInput{WeeklyHours: "5", DailyLimit: "2000"}); err != nil {
		t.Fatalf("first set: %v", err)
	}
	out, err := uc.Set(context.Background(), dto.SetInput{WeeklyHours: "7", DailyLimit: "1800"})
	if err != nil {
		t.Fatalf("second set: %v", err)
	}
	if out.StatusLine != "Weekly Goal: 7 hrs | Daily Limit: 1800 cal" {
		t.Fatalf("unexpected status line: %s", out.StatusLine)
	}

	latest, err := uc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest goal: %v", err)
	}
	if latest.WeeklyExerciseHours != 7 || latest.DailyCalorieLimit != 1800 {
		t.Fatalf("latest must reflect the newest set only: %+v", latest)
	}

	lines, err := uc.SummaryLines(context.Background())
	if err != nil {
		t.Fatalf("summary lines: %v", err)
	}
	if len(lines) != 2 || lines[0] != "Weekly Exercise: 7 hrs" || lines[1] != "Daily Calorie Limit: 1800 cal" {
		t.Fatalf("summary must never show the replaced goal: %v", lines)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&count); err != nil {
		t.Fatalf("count goals: %v", err)
	}
	if count != 1 {
		t.Fatalf("replace invariant violated: %d rows", count)
	}
}

func TestSetValidationFailureLeavesExistingGoal(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)

	if _, err := uc.Set(context.Background(), dto.SetInput{WeeklyHours: "5", DailyLimit: "2000"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := uc.Set(context.Background(), dto.SetInput{WeeklyHours: "lots", DailyLimit: "1800"}); !errors.Is(err, apperrors.ErrNotNumeric) {
		t.Fatalf("expected not-numeric error, got %v", err)
	}

	latest, err := uc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest goal: %v", err)
	}
	if latest.WeeklyExerciseHours != 5 || latest.DailyCalorieLimit != 2000 {
		t.Fatalf("rejected set must not disturb the stored goal: %+v", latest)
	}
}
