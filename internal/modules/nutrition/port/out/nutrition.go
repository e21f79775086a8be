package out

import (
	"context"

	"fittrack/internal/modules/nutrition/domain"
)

type EntryStore interface {
	Insert(ctx context.Context, entry domain.Entry) (int64, error)
	List(ctx context.Context) ([]domain.Entry, error)
}
