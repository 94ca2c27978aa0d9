package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neurolink/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.
The output is a complete config file: save it, edit what you need and
pass it back with --config, or drop it in ~/.neurolink/configs/neurolink.yaml.

Examples:
  neurolink config > neurolink.yaml
  neurolink config --difficulty hard
  neurolink config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file unchanged")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
