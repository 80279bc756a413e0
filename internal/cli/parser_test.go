package cli

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseArgs_Check(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPath string
		wantCI   bool
		wantJSON bool
		wantRule []Rule
	}{
		{
			name: "bare check",
			args: []string{"check"},
		},
		{
			name:     "file flag",
			args:     []string{"check", "--file", "shop/options.yaml"},
			wantPath: "shop/options.yaml",
		},
		{
			name:     "all flags",
			args:     []string{"check", "--ci", "--json", "--file", "x.yaml", "--rule", "range"},
			wantPath: "x.yaml",
			wantCI:   true,
			wantJSON: true,
			wantRule: []Rule{RuleRange},
		},
		{
			name:     "repeated rule",
			args:     []string{"check", "--rule", "range", "--rule", "uniqueness"},
			wantRule: []Rule{RuleRange, RuleUniqueness},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Subcommand != SubcommandCheck {
				t.Errorf("Subcommand = %q, want %q", cmd.Subcommand, SubcommandCheck)
			}
			if cmd.DocumentPath != tt.wantPath {
				t.Errorf("DocumentPath = %q, want %q", cmd.DocumentPath, tt.wantPath)
			}
			if cmd.CIMode != tt.wantCI {
				t.Errorf("CIMode = %v, want %v", cmd.CIMode, tt.wantCI)
			}
			if cmd.JSONOutput != tt.wantJSON {
				t.Errorf("JSONOutput = %v, want %v", cmd.JSONOutput, tt.wantJSON)
			}
			if len(cmd.Rules) != len(tt.wantRule) {
				t.Fatalf("Rules = %v, want %v", cmd.Rules, tt.wantRule)
			}
			for i := range cmd.Rules {
				if cmd.Rules[i] != tt.wantRule[i] {
					t.Errorf("Rules[%d] = %q, want %q", i, cmd.Rules[i], tt.wantRule[i])
				}
			}
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no args", []string{}, ErrNoSubcommand},
		{"unknown subcommand", []string{"run"}, ErrNoSubcommand},
		{"file without value", []string{"check", "--file"}, ErrMissingFlagValue},
		{"rule without value", []string{"check", "--rule"}, ErrMissingFlagValue},
		{"unknown rule", []string{"check", "--rule", "length"}, ErrUnknownRule},
		{"unknown flag", []string{"check", "--verbose"}, ErrUnknownFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseArgs_PositionalArgument(t *testing.T) {
	_, err := ParseArgs([]string{"check", "options.yaml"})
	if err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestCommand_Runs(t *testing.T) {
	all := Command{}
	if !all.Runs(RuleRange) || !all.Runs(RuleUniqueness) {
		t.Error("empty rule selection should run every rule")
	}

	only := Command{Rules: []Rule{RuleUniqueness}}
	if only.Runs(RuleRange) {
		t.Error("range should not run when only uniqueness is selected")
	}
	if !only.Runs(RuleUniqueness) {
		t.Error("uniqueness should run when selected")
	}
}

// Property 1: File Path Preservation
// For any path value, --file SHALL store it unchanged regardless of the
// position of the boolean flags.
func TestParseArgs_FilePathPreservation_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("file path is preserved", prop.ForAll(
		func(path string, ciFirst bool) bool {
			if path == "" {
				path = "options.yaml"
			}

			args := []string{"check", "--file", path, "--json"}
			if ciFirst {
				args = []string{"check", "--ci", "--file", path}
			}

			cmd, err := ParseArgs(args)
			if err != nil {
				return false
			}
			return cmd.DocumentPath == path && cmd.CIMode == ciFirst && cmd.JSONOutput == !ciFirst
		},
		gen.AnyString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
