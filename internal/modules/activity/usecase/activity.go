package usecase

import (
	"context"

	"fittrack/internal/modules/activity/domain"
	"fittrack/internal/modules/activity/dto"
	activityin "fittrack/internal/modules/activity/port/in"
	"fittrack/internal/modules/activity/service"
)

type Interactor struct {
	svc *service.ActivityService
}

func NewInteractor(svc *service.ActivityService) activityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Log(ctx context.Context, input dto.LogInput) (dto.ActivityOutput, error) {
	activity, err := i.svc.Log(ctx, input.Name, input.Duration, input.Intensity)
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(activity), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.ActivityOutput, error) {
	records, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toOutput(record))
	}
	return out, nil
}

// ListLines is the refresh path for the activity display: the stored
// records rendered as display lines, or the no-records line.
func (i *Interactor) ListLines(ctx context.Context) ([]string, error) {
	records, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.DisplayLines(records), nil
}

func toOutput(activity domain.Activity) dto.ActivityOutput {
	return dto.ActivityOutput{
		ID:          activity.ID,
		Name:        activity.Name,
		DurationMin: activity.DurationMin,
		Intensity:   activity.Intensity,
		Date:        activity.Date,
		Line:        activity.DisplayLine(),
	}
}
