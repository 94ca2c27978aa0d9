// neurolink is a terminal arcade shooter: defend the link against a
// descending formation of data fragments and the firewall nodes behind it.
//
// Usage:
//
//	neurolink play          - Play in the terminal
//	neurolink simulate      - Run the autopilot headless and print a summary
//	neurolink config        - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neurolink/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string

	// Shared by play, simulate and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neurolink",
	Short: "NeuroLink - a terminal arcade shooter",
	Long: `NeuroLink is a terminal arcade shooter. Hold the bottom of the link
against a descending formation of data fragments; every fifth level a
firewall node guards the way.

Available commands:
  play      - Play in the terminal
  simulate  - Run the autopilot headless and print a summary
  config    - Print the effective configuration

Examples:
  neurolink play
  neurolink play --difficulty hard --mute
  neurolink simulate --ticks 18000 --seed 42
  neurolink config --config ./my-neurolink.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// addConfigFlags registers the tuning flags on a command.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadConfig reads the tuning named by --config and applies --difficulty.
func loadConfig() (config.NeurolinkConfig, error) {
	preset := config.ParseDifficultyPreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.NeurolinkConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	cfg, err := config.LoadNeurolink(flagConfig)
	if err != nil {
		return config.NeurolinkConfig{}, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger builds the process logger at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neurolink",
		Level:           level,
	}), nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
