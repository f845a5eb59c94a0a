package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"roboshep/content"
	"roboshep/terminal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// clearScreen is the ANSI sequence for home + erase display.
const clearScreen = "\033[H\033[2J"

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Use the portfolio terminal line by line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(cfg.Content.Path)
			if err != nil {
				return err
			}
			interp := terminal.New(c.TerminalOptions()...)
			return runTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), interp, logger)
		},
	}
}

// runTerminal prints the welcome line, then answers one command per input
// line until the input ends.
func runTerminal(in io.Reader, out io.Writer, interp *terminal.Interpreter, logger *zap.Logger) error {
	for _, line := range interp.Transcript() {
		fmt.Fprintln(out, line.Text)
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, terminal.Prompt)
	for scanner.Scan() {
		raw := scanner.Text()
		effect := interp.Submit(raw)
		logger.Debug("Terminal command",
			zap.String("command", strings.TrimSpace(raw)),
			zap.Stringer("effect", effect.Kind))

		switch effect.Kind {
		case terminal.EffectAppend:
			fmt.Fprintln(out, effect.Text)
		case terminal.EffectReset:
			fmt.Fprint(out, clearScreen)
		}
		fmt.Fprint(out, terminal.Prompt)
	}
	fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
