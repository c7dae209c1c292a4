package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "statcli",
		Short: "CLI tool for the diamondstats API",
		Long: `statcli is a CLI tool for querying the diamondstats JSON API.

It supports player search, pitch-level batting and pitching data, standings,
team schedules, season leaderboards, percentile rankings and cache management.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.NoColor {
				color.NoColor = true
			}
			client = NewClient(cfg.ServerURL, cfg.Timeout)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: DIAMONDSTATS_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output (env: NO_COLOR)")
	rootCmd.PersistentFlags().StringSliceVar(&cfg.Columns, "columns", cfg.Columns, "Columns to show for tabular text output")

	// Add subcommands
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newStandingsCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cfg.Columns, cmd.OutOrStdout())
}
