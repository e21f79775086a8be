package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fittrack/internal/modules/nutrition/domain"
	nutritionout "fittrack/internal/modules/nutrition/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteEntryStore struct {
	db *sql.DB
}

func NewSQLiteEntryStore(dbPath string) (nutritionout.EntryStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteEntryStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// The macro columns stay nullable in the schema for compatibility with rows
// written by other tools; this application always writes normalized zeros.
func (s *SQLiteEntryStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS nutrition (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  food_item TEXT NOT NULL,
  calories INTEGER NOT NULL,
  carbs INTEGER,
  protein INTEGER,
  fats INTEGER,
  date DATE DEFAULT (DATE('now'))
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create nutrition table: %w", err)
	}
	return nil
}

func (s *SQLiteEntryStore) Insert(ctx context.Context, entry domain.Entry) (int64, error) {
	const stmt = `
INSERT INTO nutrition (food_item, calories, carbs, protein, fats, date)
VALUES (?, ?, ?, ?, ?, ?);
`
	res, err := s.db.ExecContext(ctx, stmt,
		entry.FoodItem,
		entry.Calories,
		entry.Carbs,
		entry.Protein,
		entry.Fats,
		entry.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("insert nutrition entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("nutrition insert id: %w", err)
	}
	return id, nil
}

func (s *SQLiteEntryStore) List(ctx context.Context) ([]domain.Entry, error) {
	const query = `
SELECT id, food_item, calories, COALESCE(carbs, 0), COALESCE(protein, 0), COALESCE(fats, 0), date
FROM nutrition
ORDER BY id;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list nutrition entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.Entry
	for rows.Next() {
		var record domain.Entry
		if err := rows.Scan(&record.ID, &record.FoodItem, &record.Calories, &record.Carbs, &record.Protein, &record.Fats, &record.Date); err != nil {
			return nil, fmt.Errorf("scan nutrition entry: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nutrition entries: %w", err)
	}
	return records, nil
}
