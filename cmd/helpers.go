package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/storage"
	"github.com/misterclayt0n/fittrack/internal/tracker"
	"github.com/misterclayt0n/fittrack/internal/utils"
)

// clock is swapped out by tests.
var clock utils.Clock

// openTracker opens the configured store and loads the state. The returned
// func closes the store.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, func(), error) {
	ctx := cmd.Context()
	backend, err := storage.Open(ctx, appConfig.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to open store: %w", err)
	}
	st := storage.NewStorage(backend, logger)

	c := clock
	if c == nil {
		loc, err := utils.LoadLocation(appConfig.Timezone)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
		c = utils.SystemClock{Loc: loc}
	}

	tr, err := tracker.Open(ctx, st,
		tracker.WithClock(c),
		tracker.WithLogger(logger),
		tracker.WithCalorieGoal(appConfig.DailyCalorieGoal),
	)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("Failed to load state: %w", err)
	}

	return tr, func() {
		if err := st.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close store")
		}
	}, nil
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+padCenter(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

func formatKg(kg float64) string {
	return fmt.Sprintf("%s kg", trimFloat(kg))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
