package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Name of the configuration file written by init.
const configFileName = "linty.yaml"

const sampleConfig = `# linty indentation checker configuration
# Defaults follow the Eclipse CDT K&R style.

# Whitespace accepted for indentation: spaces-only, tabs-only, or mixed.
tab_policy: spaces-only
# Columns added by one nesting level.
indentation_size: 4
# Columns one TAB character is wide.
tab_size: 4

# Indent declarations relative to class/struct body.
indent_inside_class_struct_body: true
# Indent declarations within namespace definitions.
indent_declarations_within_namespace_definition: false
# Indent statements within switch bodies.
indent_statements_within_switch_body: false

# Brace placement per construct: same-line, next-line, or next-line-indent.
brace_positions_class_struct_declaration: same-line
brace_positions_namespace_declaration: same-line
brace_positions_function_declaration: same-line
brace_positions_switch_statement: same-line
brace_positions_blocks: same-line
`

// InitCmd represents the init command
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(ctx *Context) error {
	if !i.Force {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}
	}

	if err := os.WriteFile(configFileName, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Created %s", configFileName)
	}

	return nil
}
