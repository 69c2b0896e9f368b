package indent

import "errors"

// Sentinel errors. These are all fatal: once one surfaces, the traversal is
// aborted and the violation list must not be trusted as complete.
var (
	// ErrNoHandler indicates a node kind with no registered handler. This
	// is a coverage bug, not a property of the checked input.
	ErrNoHandler = errors.New("no handler registered for node kind")
	// ErrInconsistentBraces indicates a brace-bearing node whose token
	// window has a closing brace or owner token but no opening brace.
	ErrInconsistentBraces = errors.New("inconsistent brace tokens in block")
	// ErrEmptyTokenWindow indicates a node whose source extent yielded no
	// tokens although a position check needs at least one.
	ErrEmptyTokenWindow = errors.New("node has no tokens")
	// ErrTraversalState indicates enter/exit events arriving out of order,
	// such as an exit with no matching enter.
	ErrTraversalState = errors.New("invalid traversal state")
	// ErrLineOutOfRange indicates a node extent pointing past the end of
	// the file as served by the line reader.
	ErrLineOutOfRange = errors.New("source line out of range")
)
