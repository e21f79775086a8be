package service

import (
	"context"

	"fittrack/internal/modules/nutrition/domain"
	nutritionout "fittrack/internal/modules/nutrition/port/out"
	"fittrack/internal/platform/clock"
)

type NutritionService struct {
	clock clock.Clock
	store nutritionout.EntryStore
}

func NewNutritionService(clock clock.Clock, store nutritionout.EntryStore) *NutritionService {
	return &NutritionService{clock: clock, store: store}
}

func (s *NutritionService) Log(ctx context.Context, foodItem, calories, carbs, protein, fats string) (domain.Entry, error) {
	entry, err := domain.ParseForm(foodItem, calories, carbs, protein, fats)
	if err != nil {
		return domain.Entry{}, err
	}
	entry.Date = clock.Today(s.clock)
	id, err := s.store.Insert(ctx, entry)
	if err != nil {
		return domain.Entry{}, err
	}
	entry.ID = id
	return entry, nil
}

func (s *NutritionService) List(ctx context.Context) ([]domain.Entry, error) {
	return s.store.List(ctx)
}
