// Package cli implements the linty command-line front end: loading AST
// dumps, running the indentation checker over them, and formatting reports.
package cli

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}
