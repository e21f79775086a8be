package in

import (
	"context"

	"fittrack/internal/modules/activity/dto"
	activityin "fittrack/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Log(ctx context.Context, name, duration, intensity string) (dto.ActivityOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{Name: name, Duration: duration, Intensity: intensity})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ActivityOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) ListLines(ctx context.Context) ([]string, error) {
	return h.usecase.ListLines(ctx)
}
