package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagName   string
	flagConfig string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run. Without --name the game asks for a name first.

Controls:
  Space/Up/W - Jump
  P          - Pause
  R          - Replay (after game over)
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --name ann
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command runs a
// game too, so it shares them.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the name prompt)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := newLogger()

	runnerCfg, source, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(tui.Options{
		Name:   flagName,
		Runner: runnerCfg,
		Store:  store,
		Logger: logger,
	}, cfg)

	// Close store and log before potential exit
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
