package in

import (
	"context"

	"fittrack/internal/modules/goals/dto"
	goalsin "fittrack/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Set(ctx context.Context, weeklyHours, dailyLimit string) (dto.GoalOutput, error) {
	return h.usecase.Set(ctx, dto.SetInput{WeeklyHours: weeklyHours, DailyLimit: dailyLimit})
}

func (h CLIHandler) Latest(ctx context.Context) (dto.GoalOutput, error) {
	return h.usecase.Latest(ctx)
}

func (h CLIHandler) SummaryLines(ctx context.Context) ([]string, error) {
	return h.usecase.SummaryLines(ctx)
}
