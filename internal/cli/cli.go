package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/louiszeng0623/Yzeng17/internal/config"
	"github.com/louiszeng0623/Yzeng17/internal/fetch"
	"github.com/louiszeng0623/Yzeng17/internal/logger"
	"github.com/louiszeng0623/Yzeng17/internal/resolve"
	"github.com/louiszeng0623/Yzeng17/internal/store"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitDegraded = 2
)

var (
	flagConfig  string
	flagDataDir string
	flagFormat  string
	flagTeam    string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Resolve team fixtures from upstream sources and publish calendars",
		Long: `Resolves each tracked team's upcoming fixtures through a prioritized
cascade of upstream sources, commits the canonical schedule to a CSV
store, and regenerates the iCalendar subscription files.`,
		RunE: runUpdate,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (default: built-in teams)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Override the configured data directory")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagTeam, "team", "", "Only process the team with this key")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runUpdate is the main command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.Output.DataDir = flagDataDir
	}

	teams := cfg.Teams
	if flagTeam != "" {
		teams = nil
		for _, tc := range cfg.Teams {
			if tc.Key == flagTeam {
				teams = append(teams, tc)
			}
		}
		if len(teams) == 0 {
			return fmt.Errorf("unknown team key: %s", flagTeam)
		}
	}

	st, err := store.New(cfg.Output.DataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	cascade := resolve.New(fetch.New(), resolve.Window{
		BackDays:    cfg.Window.BackDays,
		ForwardDays: cfg.Window.ForwardDays,
	})

	runner := &Runner{
		Store:   st,
		Cascade: cascade,
		Output:  cfg.Output,
	}
	result := runner.Run(cmd.Context(), teams)

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	os.Exit(result.ExitCode())
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
