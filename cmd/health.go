package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the generation backend is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loadService(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = result.Close() }()

		client := result.Service.Client()
		status, err := client.Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("backend %s unreachable: %w", client.BaseURL(), err)
		}

		out := cmd.OutOrStdout()
		if !status.OK {
			fmt.Fprintln(out, errorStyle.Render("✗ "+client.BaseURL()+" reported not ok"))
			return errGenerationFailed
		}
		fmt.Fprintln(out, successStyle.Render("✓ "+client.BaseURL()))
		for _, route := range status.Routes {
			fmt.Fprintln(out, "  "+route)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
