package service

import (
	"context"

	"fittrack/internal/modules/goals/domain"
	goalsout "fittrack/internal/modules/goals/port/out"
)

type GoalService struct {
	store goalsout.GoalStore
}

func NewGoalService(store goalsout.GoalStore) *GoalService {
	return &GoalService{store: store}
}

func (s *GoalService) Set(ctx context.Context, weeklyHours, dailyLimit string) (domain.Goal, error) {
	goal, err := domain.ParseForm(weeklyHours, dailyLimit)
	if err != nil {
		return domain.Goal{}, err
	}
	id, err := s.store.Replace(ctx, goal)
	if err != nil {
		return domain.Goal{}, err
	}
	goal.ID = id
	return goal, nil
}

func (s *GoalService) Latest(ctx context.Context) (domain.Goal, error) {
	return s.store.Latest(ctx)
}
