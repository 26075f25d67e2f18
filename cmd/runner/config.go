package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a run would use as YAML. The output can be
edited and passed back with --config.

Search order: --config, ~/.runner/configs/runner.yaml,
./configs/runner.yaml, built-in defaults.

Examples:
  runner config
  runner config --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := writeConfig(os.Stdout, cfg, source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig writes cfg as YAML preceded by a comment naming its source.
func writeConfig(w io.Writer, cfg config.RunnerConfig, source config.Source) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# source: %s\n%s", source, data); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
