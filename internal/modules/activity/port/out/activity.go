package out

import (
	"context"

	"fittrack/internal/modules/activity/domain"
)

type ActivityStore interface {
	Insert(ctx context.Context, activity domain.Activity) (int64, error)
	List(ctx context.Context) ([]domain.Activity, error)
}
