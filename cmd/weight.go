package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/models"
	"github.com/misterclayt0n/fittrack/internal/tracker"
)

var weightDate string

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Record and list body weight",
}

var weightAddCmd = &cobra.Command{
	Use:   "add [kg]",
	Short: "Record body weight for a day, replacing any entry for that day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("Invalid weight %q: must be a number of kg", args[0])
		}

		in := tracker.WeightInput{Weight: kg}
		if weightDate != "" {
			d, err := models.ParseDate(weightDate)
			if err != nil {
				return err
			}
			in.Date = d
		}

		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		e, err := tr.RecordWeight(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("Failed to record weight: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Recorded %s on %s\n", formatKg(e.Weight), e.Date)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		entries := tr.State().WeightEntries
		if len(entries) == 0 {
			fmt.Fprintln(out, "No weight entries yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %s\n", e.Date, formatKg(e.Weight))
		}
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVarP(&weightDate, "date", "d", "", "Day of the measurement, YYYY-MM-DD (default today)")

	weightCmd.AddCommand(weightAddCmd, weightListCmd)
	rootCmd.AddCommand(weightCmd)
}
