package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSubcommand is returned when no known subcommand is provided
var ErrNoSubcommand = errors.New("missing subcommand: usage: optioncheck check [--file <path>] [--rule <range|uniqueness>] [--ci] [--json]")

// ErrMissingFlagValue is returned when a flag requires a value but none is provided
var ErrMissingFlagValue = errors.New("flag requires a value")

// ErrUnknownFlag is returned for flags the parser does not recognise
var ErrUnknownFlag = errors.New("unknown flag")

// ErrUnknownRule is returned when --rule names a rule that does not exist
var ErrUnknownRule = errors.New("unknown rule")

// Subcommand represents the CLI subcommand
type Subcommand string

const (
	SubcommandCheck Subcommand = "check"
)

// Rule names a validation rule that can be selected with --rule.
type Rule string

const (
	RuleRange      Rule = "range"
	RuleUniqueness Rule = "uniqueness"
)

// Command represents the parsed CLI input
type Command struct {
	Subcommand   Subcommand
	DocumentPath string // --file <path>
	Rules        []Rule // --rule <name>, repeatable; empty means all
	CIMode       bool   // --ci
	JSONOutput   bool   // --json
}

// Runs reports whether the given rule is selected.
func (c Command) Runs(r Rule) bool {
	if len(c.Rules) == 0 {
		return true
	}
	for _, selected := range c.Rules {
		if selected == r {
			return true
		}
	}
	return false
}

// ParseArgs parses CLI arguments into a Command.
// It expects args to be os.Args[1:] (excluding the program name).
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 || args[0] != string(SubcommandCheck) {
		return Command{}, ErrNoSubcommand
	}

	cmd := Command{Subcommand: SubcommandCheck}

	for i := 1; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return Command{}, fmt.Errorf("unexpected argument '%s'", arg)
		}

		switch flagName := strings.TrimPrefix(arg, "--"); flagName {
		case "file":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("--file: %w", ErrMissingFlagValue)
			}
			i++
			cmd.DocumentPath = args[i]
		case "rule":
			if i+1 >= len(args) {
				return Command{}, fmt.Errorf("--rule: %w", ErrMissingFlagValue)
			}
			i++
			r := Rule(args[i])
			if r != RuleRange && r != RuleUniqueness {
				return Command{}, fmt.Errorf("%w: '%s'", ErrUnknownRule, args[i])
			}
			cmd.Rules = append(cmd.Rules, r)
		case "ci":
			cmd.CIMode = true
		case "json":
			cmd.JSONOutput = true
		default:
			return Command{}, fmt.Errorf("%w: --%s", ErrUnknownFlag, flagName)
		}
	}

	return cmd, nil
}
