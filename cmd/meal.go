package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/stats"
	"github.com/misterclayt0n/fittrack/internal/tracker"
)

var (
	mealSlot     string
	mealName     string
	mealCalories int
	mealProtein  int
	mealCarbs    int
	mealFat      int

	listAllMeals bool
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log, list and delete meals",
}

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := models.ParseMealSlot(mealSlot)
		if err != nil {
			return err
		}

		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		m, err := tr.LogMeal(cmd.Context(), tracker.MealInput{
			Slot:     slot,
			Name:     mealName,
			Calories: mealCalories,
			Protein:  mealProtein,
			Carbs:    mealCarbs,
			Fat:      mealFat,
		})
		if err != nil {
			return fmt.Errorf("Failed to log meal: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %s: %s, %d cal (%s)\n", m.Slot, m.Name, m.Calories, m.ID)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's meals with macro totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		state := tr.State()
		if len(state.Meals) == 0 {
			fmt.Fprintln(out, "No meals logged yet.")
			return nil
		}

		if listAllMeals {
			for _, m := range state.Meals {
				fmt.Fprintf(out, "%s  ", m.Date)
				printMeal(cmd, m)
			}
			return nil
		}

		bal := stats.TodaysCalories(&state, tr.Today())
		if len(bal.Meals) == 0 {
			fmt.Fprintln(out, "No meals logged for today.")
			return nil
		}
		for _, m := range bal.Meals {
			printMeal(cmd, m)
		}
		fmt.Fprintln(out)
		printMetric(out, "Total", fmt.Sprintf("%d / %d cal  P: %dg  C: %dg  F: %dg",
			bal.Consumed, bal.Goal, bal.Protein, bal.Carbs, bal.Fat))
		printMetric(out, "Remaining", fmt.Sprintf("%d cal", bal.Remaining))
		return nil
	},
}

func printMeal(cmd *cobra.Command, m models.MealEntry) {
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %d cal  P: %dg  C: %dg  F: %dg  %s\n",
		magenta(fmt.Sprintf("%-9s", m.Slot)), m.Name, m.Calories, m.Protein, m.Carbs, m.Fat, faint(m.ID))
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a meal by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		removed, err := tr.DeleteMeal(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to delete meal: %w", err)
		}
		if !removed {
			fmt.Fprintf(cmd.OutOrStdout(), "No meal with id %s\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Meal %s deleted\n", args[0])
		return nil
	},
}

func init() {
	mealAddCmd.Flags().StringVarP(&mealSlot, "slot", "s", "", "Meal slot (Breakfast, Lunch, Dinner, Snack)")
	mealAddCmd.Flags().StringVarP(&mealName, "name", "n", "", "What you ate")
	mealAddCmd.Flags().IntVarP(&mealCalories, "calories", "c", 0, "Calories")
	mealAddCmd.Flags().IntVar(&mealProtein, "protein", 0, "Protein in grams")
	mealAddCmd.Flags().IntVar(&mealCarbs, "carbs", 0, "Carbohydrates in grams")
	mealAddCmd.Flags().IntVar(&mealFat, "fat", 0, "Fat in grams")
	mealAddCmd.MarkFlagRequired("slot")
	mealAddCmd.MarkFlagRequired("name")
	mealAddCmd.MarkFlagRequired("calories")

	mealListCmd.Flags().BoolVarP(&listAllMeals, "all", "a", false, "List meals from every day")

	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
