package usecase

import (
	"context"
	"errors"

	"fittrack/internal/modules/goals/domain"
	"fittrack/internal/modules/goals/dto"
	goalsin "fittrack/internal/modules/goals/port/in"
	"fittrack/internal/modules/goals/service"
	apperrors "fittrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.GoalService
}

func NewInteractor(svc *service.GoalService) goalsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Set(ctx context.Context, input dto.SetInput) (dto.GoalOutput, error) {
	goal, err := i.svc.Set(ctx, input.WeeklyHours, input.DailyLimit)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

func (i *Interactor) Latest(ctx context.Context) (dto.GoalOutput, error) {
	goal, err := i.svc.Latest(ctx)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return toOutput(goal), nil
}

// SummaryLines is the read-only summarize action: the two-line summary, or
// the no-goals notice when nothing has ever been set. It never mutates
// anything; storage failures still propagate.
func (i *Interactor) SummaryLines(ctx context.Context) ([]string, error) {
	goal, err := i.svc.Latest(ctx)
	if errors.Is(err, apperrors.ErrNoGoalSet) {
		return []string{domain.NoGoalsLine}, nil
	}
	if err != nil {
		return nil, err
	}
	return goal.SummaryLines(), nil
}

func toOutput(goal domain.Goal) dto.GoalOutput {
	return dto.GoalOutput{
		ID:                  goal.ID,
		WeeklyExerciseHours: goal.WeeklyExerciseHours,
		DailyCalorieLimit:   goal.DailyCalorieLimit,
		StatusLine:          goal.StatusLine(),
	}
}
