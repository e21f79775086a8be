package usecase

import (
	"context"

	"fittrack/internal/modules/nutrition/domain"
	"fittrack/internal/modules/nutrition/dto"
	nutritionin "fittrack/internal/modules/nutrition/port/in"
	"fittrack/internal/modules/nutrition/service"
)

type Interactor struct {
	svc *service.NutritionService
}

func NewInteractor(svc *service.NutritionService) nutritionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Log(ctx context.Context, input dto.LogInput) (dto.EntryOutput, error) {
	entry, err := i.svc.Log(ctx, input.FoodItem, input.Calories, input.Carbs, input.Protein, input.Fats)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.EntryOutput, error) {
	records, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toOutput(record))
	}
	return out, nil
}

func (i *Interactor) ListLines(ctx context.Context) ([]string, error) {
	records, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.DisplayLines(records), nil
}

func toOutput(entry domain.Entry) dto.EntryOutput {
	return dto.EntryOutput{
		ID:       entry.ID,
		FoodItem: entry.FoodItem,
		Calories: entry.Calories,
		Carbs:    entry.Carbs,
		Protein:  entry.Protein,
		Fats:     entry.Fats,
		Date:     entry.Date,
		Line:     entry.DisplayLine(),
	}
}
