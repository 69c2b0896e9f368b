// Package linty holds the configuration and the shared diagnostic types of
// the linty indentation checker. The checking engine itself lives in the
// indent package.
package linty

import "errors"

// Sentinel errors
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrUnknownOption is returned when the configuration file contains an
	// option name outside the schema.
	ErrUnknownOption = errors.New("unknown configuration option")
	// ErrInvalidBraceStyle indicates a brace position option with a value
	// other than same-line, next-line, or next-line-indent.
	ErrInvalidBraceStyle = errors.New("invalid brace style")
	// ErrInvalidTabPolicy indicates a tab_policy other than spaces-only,
	// tabs-only, or mixed.
	ErrInvalidTabPolicy = errors.New("invalid tab policy")
	// ErrInvalidSize indicates a non-positive indentation_size or tab_size.
	ErrInvalidSize = errors.New("size options must be at least 1")
)
