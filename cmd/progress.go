package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/stats"
)

var progressDays int

const chartWidth = 30

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show workout and weight trends over the last 7, 30 or 90 days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if progressDays <= 0 {
			return fmt.Errorf("--days must be positive, got %d", progressDays)
		}

		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		renderProgress(cmd.OutOrStdout(), tr.Progress(progressDays))
		return nil
	},
}

func renderProgress(w io.Writer, p stats.Progress) {
	printBoxedHeader(w, fmt.Sprintf("LAST %d DAYS", p.WindowDays))
	fmt.Fprintf(w, "  %s → %s\n\n", p.Start, p.End)

	printMetric(w, "Total workouts", p.WorkoutCount)
	printMetric(w, "Weight change", formatWeightChange(p.WeightChange))
	printMetric(w, "Avg workouts/week", fmt.Sprintf("%.1f", p.AvgPerWeek))
	fmt.Fprintln(w)

	weight, workouts := p.Charts()
	renderSeries(w, weight, "%.1f")
	fmt.Fprintln(w)
	renderSeries(w, workouts, "%.0f")
}

func formatWeightChange(c stats.WeightChange) string {
	if !c.Sufficient {
		return "--"
	}
	s := fmt.Sprintf("%.1f kg", c.Delta)
	switch {
	case c.Delta > 0:
		return color.New(color.FgRed).Sprint("+" + s)
	case c.Delta < 0:
		return color.New(color.FgGreen).Sprint(s)
	default:
		return s
	}
}

// renderSeries draws a horizontal bar per point, scaled to the largest value.
func renderSeries(w io.Writer, s stats.Series, valueFormat string) {
	header := color.New(color.FgGreen, color.Bold).Sprint(s.Name + ":")
	fmt.Fprintln(w, header)
	if len(s.Values) == 0 {
		fmt.Fprintln(w, "  No data in this period.")
		return
	}

	top := 0.0
	labelWidth := 0
	for i, v := range s.Values {
		top = math.Max(top, v)
		labelWidth = max(labelWidth, len(s.Labels[i]))
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for i, v := range s.Values {
		n := 0
		if top > 0 {
			n = int(math.Round(v / top * chartWidth))
		}
		fmt.Fprintf(w, "  %-*s │%s "+valueFormat+"\n", labelWidth, s.Labels[i], blue(strings.Repeat("█", n)), v)
	}
}

func init() {
	progressCmd.Flags().IntVarP(&progressDays, "days", "d", 30, "Window length in days (7, 30, 90 ...)")
	rootCmd.AddCommand(progressCmd)
}
