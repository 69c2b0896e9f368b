package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/linty-dev/linty/cli"
)

const version = "0.1.0"

// CLI represents the command-line interface
var CLI struct {
	Config  string       `help:"Configuration file path" default:"linty.yaml"`
	Verbose bool         `help:"Enable verbose output" short:"v"`
	Quiet   bool         `help:"Suppress output" short:"q"`
	Check   cli.CheckCmd `cmd:"" help:"Check indentation of AST dump files"`
	Init    cli.InitCmd  `cmd:"" help:"Write a default linty.yaml"`
	Version VersionCmd   `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(*cli.Context) error {
	fmt.Println("linty v" + version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		// Violations are reported already; they only affect the exit code.
		if errors.Is(err, cli.ErrViolationsFound) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
