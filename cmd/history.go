package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scripts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadService(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = result.Close() }()

		saver := result.Service.Saver()
		if saver == nil {
			return fmt.Errorf("no storage configured")
		}

		names, err := saver.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list scripts: %w", err)
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), infoStyle.Render("No saved scripts"))
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
