package in

import (
	"context"

	"fittrack/internal/modules/nutrition/dto"
)

type Usecase interface {
	Log(ctx context.Context, input dto.LogInput) (dto.EntryOutput, error)
	List(ctx context.Context) ([]dto.EntryOutput, error)
	ListLines(ctx context.Context) ([]string, error)
}
