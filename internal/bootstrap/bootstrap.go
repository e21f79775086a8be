package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	activityinadapter "fittrack/internal/modules/activity/adapter/in"
	activityoutadapter "fittrack/internal/modules/activity/adapter/out"
	activityservice "fittrack/internal/modules/activity/service"
	activityusecase "fittrack/internal/modules/activity/usecase"
	goalsinadapter "fittrack/internal/modules/goals/adapter/in"
	goalsoutadapter "fittrack/internal/modules/goals/adapter/out"
	goalsservice "fittrack/internal/modules/goals/service"
	goalsusecase "fittrack/internal/modules/goals/usecase"
	nutritioninadapter "fittrack/internal/modules/nutrition/adapter/in"
	nutritionoutadapter "fittrack/internal/modules/nutrition/adapter/out"
	nutritionservice "fittrack/internal/modules/nutrition/service"
	nutritionusecase "fittrack/internal/modules/nutrition/usecase"
	"fittrack/internal/platform/clock"
	"fittrack/internal/platform/config"
	uiapp "fittrack/internal/ui/app"
	"fittrack/internal/ui/assets"
	"fittrack/internal/ui/theme"
)

type App struct {
	ActivityCLI  activityinadapter.CLIHandler
	NutritionCLI nutritioninadapter.CLIHandler
	GoalsCLI     goalsinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	activityStore, err := activityoutadapter.NewSQLiteActivityStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("new activity store: %w", err)
	}
	activityUC := activityusecase.NewInteractor(activityservice.NewActivityService(clk, activityStore))

	nutritionStore, err := nutritionoutadapter.NewSQLiteEntryStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("new nutrition store: %w", err)
	}
	nutritionUC := nutritionusecase.NewInteractor(nutritionservice.NewNutritionService(clk, nutritionStore))

	goalStore, err := goalsoutadapter.NewSQLiteGoalStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("new goal store: %w", err)
	}
	goalsUC := goalsusecase.NewInteractor(goalsservice.NewGoalService(goalStore))

	return &App{
		ActivityCLI:  activityinadapter.NewCLIHandler(activityUC),
		NutritionCLI: nutritioninadapter.NewCLIHandler(nutritionUC),
		GoalsCLI:     goalsinadapter.NewCLIHandler(goalsUC),
	}, nil
}

func RunTUI(cfg config.Config, app *App) error {
	model := uiapp.NewModel(
		theme.New(cfg.Theme),
		app.ActivityCLI,
		app.NutritionCLI,
		app.GoalsCLI,
		assets.Banner(cfg.ActivityBanner),
		assets.Banner(cfg.NutritionBanner),
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
