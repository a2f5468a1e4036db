/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/ponyo877/mockterm/widget/domain"
	"github.com/ponyo877/mockterm/widget/usecase"
)

const clearScreen = "\033[H\033[2J"

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Runs the fake shell as a line-mode prompt.",
	Long: `Runs the same session in line mode instead of the full-screen widget.
The tree is printed when ls reveals it; use ':toggle <path>' to expand or
collapse a folder. Type 'exit' or press Ctrl+D to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		term := newSession()
		lm := newLineMode(term, cmd.OutOrStdout())

		p := prompt.New(lm.execute, lm.complete,
			prompt.OptionTitle("mockterm"),
			prompt.OptionLivePrefix(lm.prefix),
			prompt.OptionPrefixTextColor(prompt.Green),
			prompt.OptionSetExitCheckerOnInput(lm.shouldExit),
		)
		p.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

// lineMode prints session changes as they happen.
type lineMode struct {
	term usecase.Terminal
	out  io.Writer
}

func newLineMode(term usecase.Terminal, out io.Writer) *lineMode {
	lm := &lineMode{term: term, out: out}
	term.Observe(lm.handleEvent)
	return lm
}

func (l *lineMode) handleEvent(event domain.Event) {
	switch event.Type {
	case domain.EventCleared:
		fmt.Fprint(l.out, clearScreen)
	case domain.EventSubmitted:
		if event.Record.HasOutput() {
			fmt.Fprintln(l.out, event.Record.Output)
		}
		l.printTree()
	case domain.EventToggled:
		l.printTree()
	}
}

func (l *lineMode) printTree() {
	snap := l.term.Snapshot()
	if !snap.TreeVisible {
		return
	}
	for _, row := range usecase.RenderTree(l.term.Tree(), snap.Expanded) {
		fmt.Fprintln(l.out, row.Text())
	}
}

func (l *lineMode) execute(line string) {
	if isDirective(line) {
		if err := runDirective(l.term, line); err != nil {
			fmt.Fprintln(l.out, err)
		}
		return
	}
	l.term.Exec(line)
}

func (l *lineMode) complete(prompt.Document) []prompt.Suggest {
	return nil
}

func (l *lineMode) prefix() (string, bool) {
	snap := l.term.Snapshot()
	return snap.Config.Prompt(snap.CurrentPath), true
}

func (l *lineMode) shouldExit(in string, breakline bool) bool {
	return breakline && (in == "exit" || in == "quit")
}
