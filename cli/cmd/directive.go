/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/ponyo877/mockterm/widget/usecase"
)

// Lines starting with directivePrefix act on the widget instead of being
// typed into it, e.g. `:toggle system/logs` clicks a tree row.
const directivePrefix = ":"

var errEmptyDirective = errors.New("empty directive")

func isDirective(line string) bool {
	return strings.HasPrefix(line, directivePrefix)
}

func runDirective(term usecase.Terminal, line string) error {
	args, err := shellwords.Parse(strings.TrimPrefix(line, directivePrefix))
	if err != nil {
		return fmt.Errorf("error parsing directive: %w", err)
	}
	if len(args) == 0 {
		return errEmptyDirective
	}
	switch args[0] {
	case "toggle":
		if len(args) != 2 {
			return fmt.Errorf("toggle takes exactly one path, got %d", len(args)-1)
		}
		term.Toggle(args[1])
		return nil
	default:
		return fmt.Errorf("unknown directive %q", args[0])
	}
}
