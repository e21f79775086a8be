package out

import (
	"context"

	"fittrack/internal/modules/goals/domain"
)

type GoalStore interface {
	// Replace removes every stored goal and inserts the new one as a single
	// atomic unit, returning the fresh id.
	Replace(ctx context.Context, goal domain.Goal) (int64, error)
	// Latest returns the stored goal, or apperrors.ErrNoGoalSet when no goal
	// has ever been set.
	Latest(ctx context.Context) (domain.Goal, error)
}
