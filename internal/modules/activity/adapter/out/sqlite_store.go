package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fittrack/internal/modules/activity/domain"
	activityout "fittrack/internal/modules/activity/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteActivityStore struct {
	db *sql.DB
}

func NewSQLiteActivityStore(dbPath string) (activityout.ActivityStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteActivityStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteActivityStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS activities (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  activity_name TEXT NOT NULL,
  duration INTEGER NOT NULL,
  intensity TEXT NOT NULL,
  date DATE DEFAULT (DATE('now'))
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create activities table: %w", err)
	}
	return nil
}

func (s *SQLiteActivityStore) Insert(ctx context.Context, activity domain.Activity) (int64, error) {
	const stmt = `
INSERT INTO activities (activity_name, duration, intensity, date)
VALUES (?, ?, ?, ?);
`
	res, err := s.db.ExecContext(ctx, stmt,
		activity.Name,
		activity.DurationMin,
		activity.Intensity,
		activity.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("activity insert id: %w", err)
	}
	return id, nil
}

func (s *SQLiteActivityStore) List(ctx context.Context) ([]domain.Activity, error) {
	const query = `
SELECT id, activity_name, duration, intensity, date
FROM activities
ORDER BY id;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.Activity
	for rows.Next() {
		var record domain.Activity
		if err := rows.Scan(&record.ID, &record.Name, &record.DurationMin, &record.Intensity, &record.Date); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return records, nil
}
