package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neurolink/internal/audio"
	"github.com/vovakirdan/neurolink/internal/core"
	"github.com/vovakirdan/neurolink/internal/games/neurolink"
	"github.com/vovakirdan/neurolink/internal/platform/tui"
	"github.com/vovakirdan/neurolink/internal/storage"
)

// maxListedRuns is how many runs the session summary lists.
const maxListedRuns = 10

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The title screen waits for the first key.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P/Esc            - Pause
  N/Enter          - Next level (after clearing one)
  R                - Restart (after game over)
  M                - Toggle sound
  Q                - Quit (after game over or a cleared level)
  Ctrl+C           - Quit at any time

Difficulty options:
  easy   - Two extra lives, half the enemy fire, slower formation
  normal - Configured tuning
  hard   - One life less, double enemy fire, faster formation

Examples:
  neurolink play
  neurolink play --difficulty easy
  neurolink play --config ./my-neurolink.yaml --log-file neurolink.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
}

// play runs one interactive session. Everything it opens is closed before it
// returns, so the caller may exit on error.
func play() error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := neurolink.NewWithConfig(gameCfg)
	game.ShowWelcome()

	// Audio is optional; a failed init is logged and play continues silently.
	sound := audio.NewPlayer(gameCfg.Audio, logger)
	_ = sound.Init()
	sound.SetEnabled(!flagMute)
	defer sound.Close()

	opts := tui.Options{Audio: sound, Logger: logger}
	session, err := storage.OpenSession()
	if err != nil {
		logger.Warn("session scoreboard unavailable", "err", err)
	} else {
		defer session.Close()
		opts.Scores = session
	}

	if err := tui.Run(game, opts, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if session != nil {
		runs, err := session.TopRuns(neurolink.ID, maxListedRuns)
		if err != nil {
			logger.Warn("cannot read session runs", "err", err)
			return nil
		}
		stats, err := session.Stats(neurolink.ID)
		if err != nil {
			logger.Warn("cannot read session stats", "err", err)
		}
		fmt.Print(tui.RenderSessionSummary(game.Title(), runs, stats))
	}
	return nil
}
