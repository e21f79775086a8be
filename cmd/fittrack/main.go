package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fittrack/internal/bootstrap"
	"fittrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "Fitness and Health Tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg, app)
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory holding the database and settings")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newActivityCmd(&dataDir))
	root.AddCommand(newNutritionCmd(&dataDir))
	root.AddCommand(newGoalsCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return app, cfg, nil
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the tabbed tracker interface",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg, app)
		},
	}
}

func newActivityCmd(dataDir *string) *cobra.Command {
	activity := &cobra.Command{Use: "activity", Short: "Track fitness activities"}

	var name, duration, intensity string
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log one activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ActivityCLI.Log(cmd.Context(), name, duration, intensity)
			if err != nil {
				return err
			}
			cmd.Printf("Activity logged successfully!\n%s\n", out.Line)
			return nil
		},
	}
	logCmd.Flags().StringVar(&name, "name", "", "activity name")
	logCmd.Flags().StringVar(&duration, "duration", "", "duration in minutes")
	logCmd.Flags().StringVar(&intensity, "intensity", "", "intensity (Low, Medium, High)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List logged activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			lines, err := app.ActivityCLI.ListLines(cmd.Context())
			if err != nil {
				return err
			}
			for _, line := range lines {
				cmd.Println(line)
			}
			return nil
		},
	}

	activity.AddCommand(logCmd)
	activity.AddCommand(listCmd)
	return activity
}

func newNutritionCmd(dataDir *string) *cobra.Command {
	nutrition := &cobra.Command{Use: "nutrition", Short: "Log daily nutrition"}

	var foodItem, calories, carbs, protein, fats string
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log one nutrition entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.NutritionCLI.Log(cmd.Context(), foodItem, calories, carbs, protein, fats)
			if err != nil {
				return err
			}
			cmd.Printf("Nutrition logged successfully!\n%s\n", out.Line)
			return nil
		},
	}
	logCmd.Flags().StringVar(&foodItem, "food", "", "food item")
	logCmd.Flags().StringVar(&calories, "calories", "", "calories")
	logCmd.Flags().StringVar(&carbs, "carbs", "", "carbs in grams (optional)")
	logCmd.Flags().StringVar(&protein, "protein", "", "protein in grams (optional)")
	logCmd.Flags().StringVar(&fats, "fats", "", "fats in grams (optional)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List nutrition entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			lines, err := app.NutritionCLI.ListLines(cmd.Context())
			if err != nil {
				return err
			}
			for _, line := range lines {
				cmd.Println(line)
			}
			return nil
		},
	}

	nutrition.AddCommand(logCmd)
	nutrition.AddCommand(listCmd)
	return nutrition
}

func newGoalsCmd(dataDir *string) *cobra.Command {
	goals := &cobra.Command{Use: "goals", Short: "Set and review personal goals"}

	var weekly, daily string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set goals, replacing any previous pair",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.GoalsCLI.Set(cmd.Context(), weekly, daily)
			if err != nil {
				return err
			}
			cmd.Printf("Goals set successfully!\n%s\n", out.StatusLine)
			return nil
		},
	}
	setCmd.Flags().StringVar(&weekly, "weekly", "", "weekly exercise goal in hours")
	setCmd.Flags().StringVar(&daily, "daily", "", "daily calorie limit")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current goal summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			lines, err := app.GoalsCLI.SummaryLines(cmd.Context())
			if err != nil {
				return err
			}
			for _, line := range lines {
				cmd.Println(line)
			}
			return nil
		},
	}

	goals.AddCommand(setCmd)
	goals.AddCommand(showCmd)
	return goals
}
