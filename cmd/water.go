package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Show glasses of water drunk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Fprintf(cmd.OutOrStdout(), "💧 %d glasses\n", tr.State().WaterIntake)
		return nil
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one glass of water",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		n, err := tr.AddWater(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to add water: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "💧 %d glasses\n", n)
		return nil
	},
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	rootCmd.AddCommand(waterCmd)
}
