package in

import (
	"context"

	"fittrack/internal/modules/nutrition/dto"
	nutritionin "fittrack/internal/modules/nutrition/port/in"
)

type CLIHandler struct {
	usecase nutritionin.Usecase
}

func NewCLIHandler(usecase nutritionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Log(ctx context.Context, foodItem, calories, carbs, protein, fats string) (dto.EntryOutput, error) {
	return h.usecase.Log(ctx, dto.LogInput{
		FoodItem: foodItem,
		Calories: calories,
		Carbs:    carbs,
		Protein:  protein,
		Fats:     fats,
	})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.EntryOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) ListLines(ctx context.Context) ([]string, error) {
	return h.usecase.ListLines(ctx)
}
