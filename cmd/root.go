package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/nestor/internal/config"
	"github.com/arcanaland/nestor/internal/console"
	"github.com/arcanaland/nestor/internal/game"
	"github.com/arcanaland/nestor/internal/gamelog"
)

// RootCmd starts a game; it takes no subcommands, flags or arguments
var RootCmd = &cobra.Command{
	Use:   "nestor",
	Short: "Nestor solitaire in your terminal",
	Long: `Nestor is a solitaire played on a grid of 8 columns of 6 cards plus 4 reserve cards.
Pick two columns whose exposed cards share a rank to remove them. Column 9 pairs
a grid card with any reserve card of the same rank. Clear every card to win.

Keys: 1-9 choose a column, Esc quits, n deals a new game, u undoes the last match.
Settings are read from $XDG_CONFIG_HOME/nestor/config.toml.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cmd.Context(), os.Stdin, color.Output, cmd.ErrOrStderr())
	},
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// play runs one session reading keys from in and printing the game to out
func play(ctx context.Context, in *os.File, out, errOut io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %v", err)
	}
	for _, problem := range cfg.Validate() {
		fmt.Fprintf(errOut, "config: %s\n", problem)
	}
	if !cfg.Color {
		color.NoColor = true
	}

	level, err := gamelog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logFile, err := gamelog.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	terminal, err := console.OpenTerminal(in, out)
	if err != nil {
		return err
	}
	defer terminal.Close()

	fmt.Fprintln(terminal.Out, color.New(color.Bold).Sprint("Nestor solitaire"))

	controller := game.NewController(
		game.ShuffledDealer,
		console.NewKeyReader(in, terminal.Out, cfg.PollTimeout()),
		console.NewDisplay(terminal.Out, cfg.EmptyMarker),
		gamelog.NewTextLogger(logFile, level),
	)

	// Winning and quitting both exit cleanly.
	if _, err := controller.Run(ctx); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	return nil
}
