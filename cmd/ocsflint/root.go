// Package main implements the ocsflint command-line entry point.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ocsf-tools/ocsflint/internal/diag"
	"github.com/ocsf-tools/ocsflint/internal/runner"
)

// NewRootCmd builds the ocsflint root command.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		failFast   bool
		lang       string
		noColor    bool
		jsonOutput bool
	)

	root := &cobra.Command{
		Use:           "ocsflint [schema-root]",
		Short:         "ocsflint validates an OCSF schema tree's directive resolution and structure",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			opts := runner.Options{Root: root, FailFast: failFast, Lang: lang}

			if configPath != "" {
				cfg, err := runner.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				severities, warnings := cfg.SeverityTable()
				for _, w := range warnings {
					fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
				}
				opts.Severities = severities
				if !cmd.Flags().Changed("fail-fast") {
					opts.FailFast = cfg.FailFast
				}
				if !cmd.Flags().Changed("lang") && cfg.Lang != "" {
					opts.Lang = cfg.Lang
				}
			}

			report, err := runner.Run(opts)
			if err != nil {
				return err
			}

			if _, envNoColor := os.LookupEnv("NO_COLOR"); envNoColor {
				noColor = true
			}

			if jsonOutput {
				if err := writeJSONReport(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				writeTextReport(cmd.OutOrStdout(), report, noColor)
			}

			if report.Worst == diag.Fatal || report.Worst == diag.Error {
				return errExitWithFindings
			}
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to an ocsflint config file (YAML or JSON)")
	root.Flags().BoolVar(&failFast, "fail-fast", false, "stop resolving a document at its first fatal diagnostic")
	root.Flags().StringVar(&lang, "lang", "", "locale to render diagnostics in (en, zh-Hans)")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as a JSON object (diagnostics, worst severity, extensions) instead of text")

	return root
}

// errExitWithFindings signals main to exit non-zero without printing an
// additional error line; the diagnostics already printed are the message.
var errExitWithFindings = errSentinel("schema validation found errors")

type errSentinel string

func (e errSentinel) Error() string { return string(e) }

func writeTextReport(w interface{ Write([]byte) (int, error) }, report *runner.Report, noColor bool) {
	severityColor := map[diag.Severity]*color.Color{
		diag.Fatal:   color.New(color.FgRed, color.Bold),
		diag.Error:   color.New(color.FgRed),
		diag.Warning: color.New(color.FgYellow),
		diag.Info:    color.New(color.FgCyan),
	}

	for _, d := range report.Diagnostics {
		message := d.Localize(report.Localizer)
		line := fmt.Sprintf("[%s] %s: %s\n", d.Severity, d.Path, message)
		if noColor {
			fmt.Fprint(w, line)
			continue
		}
		c, ok := severityColor[d.Severity]
		if !ok {
			fmt.Fprint(w, line)
			continue
		}
		_, _ = c.Fprint(w, line)
	}
	fmt.Fprintf(w, "%d diagnostics, worst severity: %s\n", len(report.Diagnostics), report.Worst)
	if len(report.Extensions) > 0 {
		fmt.Fprintf(w, "extensions: %s\n", strings.Join(report.Extensions, ", "))
	}
}

// jsonDiagnostic is the stable shape --json emits, independent of
// diag.Diagnostic's internal field names.
type jsonDiagnostic struct {
	Kind     string         `json:"kind"`
	Severity string         `json:"severity"`
	Path     string         `json:"path"`
	Message  string         `json:"message"`
	Params   map[string]any `json:"params,omitempty"`
}

// jsonReport is the stable top-level shape --json emits.
type jsonReport struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Worst       string           `json:"worst_severity"`
	Extensions  []string         `json:"extensions,omitempty"`
}

func writeJSONReport(w interface{ Write([]byte) (int, error) }, report *runner.Report) error {
	out := jsonReport{
		Diagnostics: make([]jsonDiagnostic, 0, len(report.Diagnostics)),
		Worst:       report.Worst.String(),
		Extensions:  report.Extensions,
	}
	for _, d := range report.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
			Kind:     string(d.Kind),
			Severity: d.Severity.String(),
			Path:     d.Path,
			Message:  d.Localize(report.Localizer),
			Params:   d.Params,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
