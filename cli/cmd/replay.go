/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ponyo877/mockterm/widget/usecase"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Types a script into a session and prints the resulting screen.",
	Long: `Reads a script from the given file, or stdin when omitted. Every line is
typed into the prompt and submitted with Enter, blank lines included.
Lines beginning with ':' are directives instead:

  :toggle <path>   click the tree row at path, e.g. :toggle "system/logs"

The final transcript, live prompt line and, if visible, the tree are
printed as plain text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening script: %w", err)
			}
			defer f.Close()
			in = f
		}

		term := newSession()
		if err := replay(term, in); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), usecase.RenderPlain(term.Snapshot(), term.Tree()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func replay(term usecase.Terminal, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if isDirective(line) {
			if err := runDirective(term, line); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}
		term.Exec(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading script: %w", err)
	}
	return nil
}
