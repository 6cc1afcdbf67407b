package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the store, seeding sample data on first run",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeStore, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if !tr.Seeded() {
			fmt.Fprintf(cmd.OutOrStdout(), "Store already initialized (%s backend)\n", appConfig.Store.Backend)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Store initialized with sample data (%s backend)\n", appConfig.Store.Backend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
