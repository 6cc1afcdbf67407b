package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/models"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the month grid. Days with workouts are coloured by the
// type of that day's most recent workout, with a legend below.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout days with a legend mapping colors to workout types",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		// Determine month and year (default to the current month).
		today := tr.Today()
		month := today.Month()
		year := today.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := models.NewDate(year, month, 1)
		lastOfMonth := models.DateOf(firstOfMonth.Time().AddDate(0, 1, -1))

		// Workouts are newest-first, so the first one seen per day is the latest.
		workoutsByDay := make(map[int][]models.WorkoutEntry)
		for _, w := range tr.State().Workouts {
			if w.Date.Between(firstOfMonth, lastOfMonth) {
				workoutsByDay[w.Date.Day()] = append(workoutsByDay[w.Date.Day()], w)
			}
		}

		// Fixed palette, one colour per workout type in declaration order.
		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow, color.FgBlue,
			color.FgMagenta, color.FgCyan, color.FgHiRed, color.FgHiGreen,
		}
		typeColors := make(map[models.WorkoutType]func(a ...interface{}) string)
		for i, t := range models.WorkoutTypes {
			typeColors[t] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		out := cmd.OutOrStdout()
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Fprintln(out, centerText(header, 20))
		fmt.Fprintln(out, "Su Mo Tu We Th Fr Sa")

		// Weekday of the first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Fprint(out, "   ")
		}

		used := make(map[models.WorkoutType]bool)
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if list, ok := workoutsByDay[day]; ok {
				t := list[0].Type
				used[t] = true
				if colFunc, ok := typeColors[t]; ok {
					dayStr = colFunc(dayStr + "*")
				} else {
					dayStr = color.New(color.FgWhite).Sprint(dayStr + "*")
				}
			} else {
				dayStr += " "
			}
			fmt.Fprintf(out, "%s", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Fprintln(out)
			}
		}
		fmt.Fprint(out, "\n\n")

		if len(used) > 0 {
			fmt.Fprintln(out, "Legend:")
			for _, t := range models.WorkoutTypes {
				if used[t] {
					fmt.Fprintf(out, "  %s: %s\n", typeColors[t]("██"), t)
				}
			}
		}

		if details {
			fmt.Fprintln(out, "\nWorkout Details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				fmt.Fprintf(out, "\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, w := range workoutsByDay[day] {
					fmt.Fprintf(out, "  %s %d min (%s, %d cal)\n", w.Type, w.Duration, w.Intensity, w.Calories)
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "D", false, "Print workout details for each day")
}
