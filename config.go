package linty

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// BraceStyle selects where a block's braces may sit relative to the block
// start. See Config for which constructs each style option applies to.
type BraceStyle string

const (
	// SameLine keeps the opening brace on the line of the token before it.
	SameLine BraceStyle = "same-line"
	// NextLine puts the opening brace on its own line, flush with the block
	// start.
	NextLine BraceStyle = "next-line"
	// NextLineIndent puts both braces on their own lines, indented one
	// level further than the block start.
	NextLineIndent BraceStyle = "next-line-indent"
)

func (s BraceStyle) valid() bool {
	switch s {
	case SameLine, NextLine, NextLineIndent:
		return true
	default:
		return false
	}
}

// TabPolicy states which whitespace characters may indent lines.
type TabPolicy string

const (
	SpacesOnly TabPolicy = "spaces-only"
	TabsOnly   TabPolicy = "tabs-only"
	Mixed      TabPolicy = "mixed"
)

func (p TabPolicy) valid() bool {
	switch p {
	case SpacesOnly, TabsOnly, Mixed:
		return true
	default:
		return false
	}
}

// Config is the indentation checker configuration. The defaults follow the
// Eclipse CDT K&R style.
type Config struct {
	// General settings
	TabPolicy       TabPolicy `yaml:"tab_policy"`
	IndentationSize int       `yaml:"indentation_size"`
	TabSize         int       `yaml:"tab_size"`

	// Per-construct increase-indent flags
	IndentInsideClassStructBody                 bool `yaml:"indent_inside_class_struct_body"`
	IndentDeclarationsWithinNamespaceDefinition bool `yaml:"indent_declarations_within_namespace_definition"`
	IndentStatementsWithinSwitchBody            bool `yaml:"indent_statements_within_switch_body"`

	// Per-construct brace positions
	BracePositionsClassStructDeclaration BraceStyle `yaml:"brace_positions_class_struct_declaration"`
	BracePositionsNamespaceDeclaration   BraceStyle `yaml:"brace_positions_namespace_declaration"`
	BracePositionsFunctionDeclaration    BraceStyle `yaml:"brace_positions_function_declaration"`
	BracePositionsSwitchStatement        BraceStyle `yaml:"brace_positions_switch_statement"`
	BracePositionsBlocks                 BraceStyle `yaml:"brace_positions_blocks"`
}

// knownOptions is the closed schema of configuration keys. A key outside
// this set aborts loading before any traversal starts.
var knownOptions = map[string]struct{}{
	"tab_policy":                      {},
	"indentation_size":                {},
	"tab_size":                        {},
	"indent_inside_class_struct_body": {},
	"indent_declarations_within_namespace_definition": {},
	"indent_statements_within_switch_body":            {},
	"brace_positions_class_struct_declaration":        {},
	"brace_positions_namespace_declaration":           {},
	"brace_positions_function_declaration":            {},
	"brace_positions_switch_statement":                {},
	"brace_positions_blocks":                          {},
}

// DefaultConfig returns the K&R defaults.
func DefaultConfig() *Config {
	return &Config{
		TabPolicy:       SpacesOnly,
		IndentationSize: 4,
		TabSize:         4,

		IndentInsideClassStructBody:                 true,
		IndentDeclarationsWithinNamespaceDefinition: false,
		IndentStatementsWithinSwitchBody:            false,

		BracePositionsClassStructDeclaration: SameLine,
		BracePositionsNamespaceDeclaration:   SameLine,
		BracePositionsFunctionDeclaration:    SameLine,
		BracePositionsSwitchStatement:        SameLine,
		BracePositionsBlocks:                 SameLine,
	}
}

// LoadConfig reads the configuration from configPath. A missing file yields
// the defaults; an unknown option name or an invalid value is fatal.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data over the defaults.
func ParseConfig(data []byte) (*Config, error) {
	if err := checkOptionNames(data); err != nil {
		return nil, err
	}

	config := DefaultConfig()

	err := yaml.UnmarshalWithOptions(data, config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	return config, nil
}

// checkOptionNames rejects keys outside the schema with a precise error.
func checkOptionNames(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	for key := range raw {
		if _, ok := knownOptions[key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}

	return nil
}

func validateConfig(config *Config) error {
	var errs []error

	if !config.TabPolicy.valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTabPolicy, config.TabPolicy))
	}
	if config.IndentationSize < 1 {
		errs = append(errs, fmt.Errorf("%w: indentation_size %d", ErrInvalidSize, config.IndentationSize))
	}
	if config.TabSize < 1 {
		errs = append(errs, fmt.Errorf("%w: tab_size %d", ErrInvalidSize, config.TabSize))
	}

	styles := []struct {
		name  string
		style BraceStyle
	}{
		{"brace_positions_class_struct_declaration", config.BracePositionsClassStructDeclaration},
		{"brace_positions_namespace_declaration", config.BracePositionsNamespaceDeclaration},
		{"brace_positions_function_declaration", config.BracePositionsFunctionDeclaration},
		{"brace_positions_switch_statement", config.BracePositionsSwitchStatement},
		{"brace_positions_blocks", config.BracePositionsBlocks},
	}
	for _, s := range styles {
		if !s.style.valid() {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrInvalidBraceStyle, s.name, s.style))
		}
	}

	return errors.Join(errs...)
}

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	// Pattern for ${VAR} format
	re1 := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re1.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		return os.Getenv(varName)
	})

	// Pattern for $VAR format (word boundaries)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		return os.Getenv(varName)
	})

	return s
}

// expandConfigEnvVars expands environment variables in the string-valued
// options, so a linty.yaml can defer style choices to the environment.
func expandConfigEnvVars(config *Config) {
	config.TabPolicy = TabPolicy(expandEnvVars(string(config.TabPolicy)))

	config.BracePositionsClassStructDeclaration = BraceStyle(expandEnvVars(string(config.BracePositionsClassStructDeclaration)))
	config.BracePositionsNamespaceDeclaration = BraceStyle(expandEnvVars(string(config.BracePositionsNamespaceDeclaration)))
	config.BracePositionsFunctionDeclaration = BraceStyle(expandEnvVars(string(config.BracePositionsFunctionDeclaration)))
	config.BracePositionsSwitchStatement = BraceStyle(expandEnvVars(string(config.BracePositionsSwitchStatement)))
	config.BracePositionsBlocks = BraceStyle(expandEnvVars(string(config.BracePositionsBlocks)))
}

// loadEnvFiles loads a .env file from the current directory if one exists.
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}
