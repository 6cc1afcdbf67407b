package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/tracker"
)

var (
	workoutType      string
	workoutDuration  int
	workoutIntensity string
	workoutCalories  int
	workoutNotes     string

	filterType string
	filterDay  string
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log, list and delete workouts",
}

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := models.ParseWorkoutType(workoutType)
		if err != nil {
			return err
		}
		intensity, err := models.ParseIntensity(workoutIntensity)
		if err != nil {
			return err
		}

		in := tracker.WorkoutInput{
			Type:      typ,
			Duration:  workoutDuration,
			Intensity: intensity,
			Notes:     workoutNotes,
		}
		if cmd.Flags().Changed("calories") {
			calories := workoutCalories
			in.Calories = &calories
		}

		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		w, err := tr.LogWorkout(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("Failed to log workout: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %s workout: %d min, %s, %d cal (%s)\n",
			w.Type, w.Duration, w.Intensity, w.Calories, w.ID)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts grouped by day, optionally filtered by type and/or day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var typ models.WorkoutType
		if filterType != "" {
			t, err := models.ParseWorkoutType(filterType)
			if err != nil {
				return err
			}
			typ = t
		}
		var day models.Date
		if filterDay != "" {
			d, err := models.ParseDate(filterDay)
			if err != nil {
				return err
			}
			day = d
		}

		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		state := tr.State()
		if len(state.Workouts) == 0 {
			fmt.Fprintln(out, "No workouts logged yet.")
			return nil
		}

		grouped := make(map[string][]models.WorkoutEntry)
		for _, w := range state.Workouts {
			if typ != "" && w.Type != typ {
				continue
			}
			if !day.IsZero() && !w.Date.Equal(day) {
				continue
			}
			key := w.Date.String()
			grouped[key] = append(grouped[key], w)
		}
		if len(grouped) == 0 {
			fmt.Fprintln(out, "No workouts match the filters.")
			return nil
		}

		var days []string
		for d := range grouped {
			days = append(days, d)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(days)))

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for _, d := range days {
			fmt.Fprintf(out, "%s\n", cyan(d))
			for _, w := range grouped[d] {
				fmt.Fprintf(out, "  %-16s %4d min  %-8s %5d cal  %s\n",
					w.Type, w.Duration, w.Intensity, w.Calories, faint(w.ID))
				if w.Notes != "" {
					fmt.Fprintf(out, "    %s\n", w.Notes)
				}
			}
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a workout by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		removed, err := tr.DeleteWorkout(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to delete workout: %w", err)
		}
		if !removed {
			fmt.Fprintf(cmd.OutOrStdout(), "No workout with id %s\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Workout %s deleted\n", args[0])
		return nil
	},
}

func init() {
	workoutAddCmd.Flags().StringVarP(&workoutType, "type", "t", "", "Workout type (Running, Cycling, Swimming, Weight Training, Yoga, HIIT, Walking, Other)")
	workoutAddCmd.Flags().IntVarP(&workoutDuration, "duration", "d", 0, "Duration in minutes")
	workoutAddCmd.Flags().StringVarP(&workoutIntensity, "intensity", "i", string(models.Moderate), "Intensity (Light, Moderate, Vigorous)")
	workoutAddCmd.Flags().IntVarP(&workoutCalories, "calories", "c", 0, "Calories burned (estimated from type, duration and intensity when omitted)")
	workoutAddCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "Free-form notes")
	workoutAddCmd.MarkFlagRequired("type")
	workoutAddCmd.MarkFlagRequired("duration")

	workoutListCmd.Flags().StringVarP(&filterType, "type", "t", "", "Filter by workout type")
	workoutListCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07)")

	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
