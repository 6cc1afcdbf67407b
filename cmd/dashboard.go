package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/tracker"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"status"},
	Short:   "Show today's workout, calories, water, current weight and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		renderDashboard(cmd.OutOrStdout(), tr.Dashboard())
		return nil
	},
}

func renderDashboard(w io.Writer, d tracker.Dashboard) {
	printBoxedHeader(w, d.Date.Time().Format("Monday, January 2, 2006"))

	workout := "No workout logged"
	if p := d.Workout.Primary; p != nil {
		workout = fmt.Sprintf("%s (%d min)", p.Type, p.Duration)
	}
	printMetric(w, "Today's workout", workout)
	printMetric(w, "Calories burned", d.Workout.CaloriesBurned)
	printMetric(w, "Water intake", fmt.Sprintf("%d glasses", d.Water))

	weight := "-- kg"
	if d.HasWeight {
		weight = formatKg(d.Weight.Weight)
	}
	printMetric(w, "Current weight", weight)
	printMetric(w, "Calories consumed", d.Calories.Consumed)
	printMetric(w, "Calories remaining", d.Calories.Remaining)
	fmt.Fprintln(w)

	renderActivity(w, d.Activity)
}

func renderActivity(w io.Writer, entries []models.ActivityLogEntry) {
	header := color.New(color.FgGreen, color.Bold).Sprint("Recent activity:")
	fmt.Fprintln(w, header)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  No activity yet.")
		return
	}
	faint := color.New(color.Faint).SprintFunc()
	for _, e := range entries {
		fmt.Fprintf(w, "  • %s %s\n", e.Message, faint(e.Time))
	}
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "List the most recent actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		renderActivity(cmd.OutOrStdout(), tr.State().ActivityLog)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(activityCmd)
}
