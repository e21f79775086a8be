package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fittrack/internal/modules/goals/domain"
	goalsout "fittrack/internal/modules/goals/port/out"
	apperrors "fittrack/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteGoalStore struct {
	db *sql.DB
}

func NewSQLiteGoalStore(dbPath string) (goalsout.GoalStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteGoalStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteGoalStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  weekly_exercise_goal INTEGER,
  daily_calorie_limit INTEGER
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create goals table: %w", err)
	}
	return nil
}

// Replace runs the delete-all + insert inside one transaction so a reader
// never observes zero or multiple goal rows as a stable state.
func (s *SQLiteGoalStore) Replace(ctx context.Context, goal domain.Goal) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin goal replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return 0, fmt.Errorf("clear goals: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO goals (weekly_exercise_goal, daily_calorie_limit) VALUES (?, ?)`,
		goal.WeeklyExerciseHours, goal.DailyCalorieLimit,
	)
	if err != nil {
		return 0, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("goal insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit goal replace: %w", err)
	}
	return id, nil
}

func (s *SQLiteGoalStore) Latest(ctx context.Context) (domain.Goal, error) {
	const query = `
SELECT id, weekly_exercise_goal, daily_calorie_limit
FROM goals
ORDER BY id DESC
LIMIT 1;
`
	var goal domain.Goal
	err := s.db.QueryRowContext(ctx, query).Scan(&goal.ID, &goal.WeeklyExerciseHours, &goal.DailyCalorieLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Goal{}, apperrors.ErrNoGoalSet
	}
	if err != nil {
		return domain.Goal{}, fmt.Errorf("read latest goal: %w", err)
	}
	return goal, nil
}
