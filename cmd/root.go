package cmd

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fittrack/internal/config"
)

var (
	configPath string
	verbose    bool

	appConfig *config.Config
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "fittrack",
	Short:         "Track workouts, meals, water and body weight from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		setupLogging(cmd, cfg.LogLevel)
		return nil
	},
}

func setupLogging(cmd *cobra.Command, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	log.Logger = logger
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/fittrack/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
