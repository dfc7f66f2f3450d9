package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/signcatch/internal/core"
	"github.com/vovakirdan/signcatch/internal/platform/tui"
)

var (
	flagLogFile string
	flagName    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse        - Move the catcher
  Left/Right   - Move the catcher without a mouse
  Enter        - Start, or play again after game over
  N            - Pick a new handle after game over
  Q/Ctrl+C     - Quit

The terminal belongs to the game while it runs, so logs are only
written when --log-file is given.

Examples:
  signcatch play
  signcatch play --name ann
  signcatch play --seed 42 --log-file ./signcatch.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagName, "name", "", "Pre-fill the player handle")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out, "signcatch")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.FPS = flagFPS
	rc.Seed = flagSeed

	if err := tui.Run(cfg, rc, logger, flagName); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
