package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/astdump"
	"github.com/linty-dev/linty/indent"
	"github.com/linty-dev/linty/source"
)

// ErrViolationsFound is returned by check when at least one violation was
// reported; the main function maps it to a non-zero exit without treating
// it as a command failure.
var ErrViolationsFound = errors.New("style violations found")

// CheckCmd represents the check command
type CheckCmd struct {
	Dumps  []string `arg:"" help:"AST dump files to check" type:"path"`
	Format string   `help:"Output format" default:"text" enum:"text,json"`
}

// FileReport is the per-file section of a JSON report.
type FileReport struct {
	File       string            `json:"file"`
	Nodes      int               `json:"nodes"`
	Violations []linty.Violation `json:"violations"`
}

// Report is the JSON report for one check run.
type Report struct {
	RunID string       `json:"run_id"`
	Files []FileReport `json:"files"`
	Total int          `json:"total_violations"`
}

func (c *CheckCmd) Run(ctx *Context) error {
	config, err := linty.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	report := Report{RunID: uuid.NewString()}

	if ctx.Verbose {
		color.Blue("Check run %s (%d files)", report.RunID, len(c.Dumps))
	}

	for _, path := range c.Dumps {
		fileReport, err := checkDump(config, path)
		if err != nil {
			return err
		}

		report.Files = append(report.Files, *fileReport)
		report.Total += len(fileReport.Violations)
	}

	if c.Format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		printTextReport(ctx, report)
	}

	if report.Total > 0 {
		return ErrViolationsFound
	}

	return nil
}

// checkDump runs one fresh checker session over one dump file.
func checkDump(config *linty.Config, path string) (*FileReport, error) {
	dump, err := astdump.Load(path)
	if err != nil {
		return nil, err
	}

	reader := dump.LineReader()
	if reader == nil {
		reader = source.NewFileCache()
	}

	checker := indent.NewChecker(config, dump.Tokenizer(), reader)
	if err := checker.Check(dump.Root); err != nil {
		return nil, fmt.Errorf("check of %s aborted: %w", dump.File, err)
	}

	violations := checker.Violations().All()
	if violations == nil {
		violations = []linty.Violation{}
	}

	return &FileReport{
		File:       dump.File,
		Nodes:      checker.NodesVisited(),
		Violations: violations,
	}, nil
}

func printTextReport(ctx *Context, report Report) {
	for _, file := range report.Files {
		for _, v := range file.Violations {
			color.Yellow("%s", v)
		}

		if ctx.Verbose {
			color.Blue("%s: %d nodes checked, %d violations", file.File, file.Nodes, len(file.Violations))
		}
	}

	if ctx.Quiet {
		return
	}

	if report.Total == 0 {
		color.Green("No indentation violations found")
	} else {
		color.Red("%d indentation violations found", report.Total)
	}
}
