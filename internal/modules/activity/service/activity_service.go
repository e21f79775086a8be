package service

import (
	"context"

	"fittrack/internal/modules/activity/domain"
	activityout "fittrack/internal/modules/activity/port/out"
	"fittrack/internal/platform/clock"
)

type ActivityService struct {
	clock clock.Clock
	store activityout.ActivityStore
}

func NewActivityService(clock clock.Clock, store activityout.ActivityStore) *ActivityService {
	return &ActivityService{clock: clock, store: store}
}

// Log runs one submission cycle: validate the raw fields, stamp today's
// date, persist. Validation failures return before anything is written.
func (s *ActivityService) Log(ctx context.Context, name, duration, intensity string) (domain.Activity, error) {
	activity, err := domain.ParseForm(name, duration, intensity)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.Date = clock.Today(s.clock)
	id, err := s.store.Insert(ctx, activity)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.ID = id
	return activity, nil
}

func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.store.List(ctx)
}
