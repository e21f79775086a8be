package in

import (
	"context"

	"fittrack/internal/modules/activity/dto"
)

type Usecase interface {
	Log(ctx context.Context, input dto.LogInput) (dto.ActivityOutput, error)
	List(ctx context.Context) ([]dto.ActivityOutput, error)
	ListLines(ctx context.Context) ([]string, error)
}
