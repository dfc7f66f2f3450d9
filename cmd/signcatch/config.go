package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/signcatch/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML, with the place it was loaded from.

Search order:
  --config <path>
  ~/.signcatch/game.yaml
  ./configs/game.yaml
  embedded defaults

Redirect the output to start a custom config:
  signcatch config --defaults > ~/.signcatch/game.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults, ignoring config files")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
