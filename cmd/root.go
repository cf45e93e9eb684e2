package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vietkichban/internal/app"
	"vietkichban/pkg/config"
)

var (
	verbose    bool
	configPath string
)

// errGenerationFailed signals a failed action whose error text has already
// been written to the output area.
var errGenerationFailed = errors.New("generation failed")

var rootCmd = &cobra.Command{
	Use:   "vietkichban",
	Short: "Generate scripts, podcast dialogues and rewrites",
	Long: `Vietkichban sends script ideas, podcast briefs and rewrite requests to the
generation API and prints the text it returns.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to config file")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errGenerationFailed) {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}
	return err
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadService(ctx context.Context) (*app.BuildResult, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	slog.Debug("Config loaded", "api_base", cfg.API.BaseURL)

	return app.BuildService(ctx, cfg)
}
