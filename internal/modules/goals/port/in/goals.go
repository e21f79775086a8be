package in

import (
	"context"

	"fittrack/internal/modules/goals/dto"
)

type Usecase interface {
	Set(ctx context.Context, input dto.SetInput) (dto.GoalOutput, error)
	Latest(ctx context.Context) (dto.GoalOutput, error)
	SummaryLines(ctx context.Context) ([]string, error)
}
