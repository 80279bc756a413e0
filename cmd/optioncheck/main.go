package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"customeroptions/internal/association"
	"customeroptions/internal/cli"
	"customeroptions/internal/configuration"
	"customeroptions/internal/constraint"
	"customeroptions/internal/document"
)

// Exit codes
const (
	exitOK         = 0
	exitError      = 1 // usage or contract error
	exitViolations = 2
	exitDocument   = 3 // document missing or unparseable
)

func main() {
	environ := os.Environ()
	logger := newLogger(os.Stderr, environ)
	os.Exit(run(os.Args[1:], environ, ".", os.Stdout, os.Stderr, logger))
}

// newLogger builds the operational logger. Debug output is enabled by
// OPTIONCHECK_DEBUG.
func newLogger(w io.Writer, environ []string) *slog.Logger {
	level := slog.LevelWarn
	if getEnvBool(environ, "OPTIONCHECK_DEBUG") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run orchestrates the full execution flow and returns the exit code.
// This function is separated from main() to enable testing.
func run(args []string, environ []string, workDir string, stdout, stderr io.Writer, logger *slog.Logger) int {
	cmd, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	docPath := resolveDocumentPath(cmd.DocumentPath, environ, workDir)
	logger.Debug("loading document", slog.String("path", docPath))

	doc, err := document.LoadDocumentFromPath(docPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "document not found: %s\n", docPath)
			return exitDocument
		}
		fmt.Fprintf(stderr, "failed to parse document: %v\n", err)
		return exitDocument
	}

	report, err := checkDocument(doc, cmd, logger)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}

	logger.Debug("check finished",
		slog.Int("options", len(doc.Options)),
		slog.Int("products", len(doc.Products)),
		slog.Int("violations", report.Count()))

	if cmd.JSONOutput {
		out, err := constraint.FormatJSON(report)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot format report: %v\n", err)
			return exitError
		}
		fmt.Fprintln(stdout, out)
	} else if !report.Valid() {
		source := filepath.Base(docPath)
		if cmd.CIMode || getEnvBool(environ, "OPTIONCHECK_CI") || getEnvBool(environ, "CI") {
			fmt.Fprint(stderr, constraint.FormatCI(report, source))
		} else {
			fmt.Fprint(stderr, constraint.FormatCLI(report, source))
		}
	}

	if !report.Valid() {
		return exitViolations
	}
	return exitOK
}

// checkDocument runs the selected rules over every option and product.
// Options with fewer than two configuration entries have no range to check.
func checkDocument(doc document.Document, cmd cli.Command, logger *slog.Logger) (constraint.Report, error) {
	var report constraint.Report

	if cmd.Runs(cli.RuleRange) {
		var v constraint.Validator = configuration.Validator{}
		c := constraint.Constraint{Message: doc.Messages.Range}

		for _, o := range doc.Options {
			if len(o.Configuration) < 2 {
				logger.Debug("skipping option without range",
					slog.String("option", o.Code),
					slog.Any("keys", o.Configuration.Keys()))
				continue
			}
			sink := report.Scope(string(cli.RuleRange), "option "+o.Code)
			if err := v.Validate(o.Configuration, c, sink); err != nil {
				return report, fmt.Errorf("option '%s': %w", o.Code, err)
			}
		}
	}

	if cmd.Runs(cli.RuleUniqueness) {
		var v constraint.Validator = association.Validator{}
		c := constraint.Constraint{Message: doc.Messages.Uniqueness}

		for _, p := range doc.Products {
			sink := report.Scope(string(cli.RuleUniqueness), "product "+p.Code)
			if err := v.Validate(doc.Associations(p), c, sink); err != nil {
				return report, fmt.Errorf("product '%s': %w", p.Code, err)
			}
		}
	}

	return report, nil
}

// resolveDocumentPath determines the document path from flag, env var, or default
func resolveDocumentPath(flagValue string, environ []string, workDir string) string {
	path := flagValue
	if path == "" {
		path = getEnv(environ, "OPTIONCHECK_FILE")
	}
	if path == "" {
		return filepath.Join(workDir, document.DefaultFileName)
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// getEnv returns the value of name from the environment slice
func getEnv(environ []string, name string) string {
	prefix := name + "="
	for _, env := range environ {
		if strings.HasPrefix(env, prefix) {
			return strings.TrimPrefix(env, prefix)
		}
	}
	return ""
}

// getEnvBool checks if an environment variable is set to a truthy value
func getEnvBool(environ []string, name string) bool {
	val := strings.ToLower(getEnv(environ, name))
	return val == "true" || val == "1" || val == "yes"
}
