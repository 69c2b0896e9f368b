// Package indent verifies that every declaration, statement, and brace pair
// of a syntax tree sits at a column consistent with the configured
// indentation policy. The tree and its token stream come from an external
// parser; this package only interprets positions that are already resolved.
package indent

import (
	"fmt"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/source"
	"github.com/linty-dev/linty/syntax"
)

// Checker runs one depth-first checking session over one syntax tree. The
// handler stack mirrors the current root-to-node path, so memory is bounded
// by tree depth, not tree size. A Checker is single-threaded and single-use
// per tree; independent files get independent Checker instances.
type Checker struct {
	config     *linty.Config
	violations *linty.Violations
	reader     source.LineReader
	tokenizer  syntax.Tokenizer

	stack    []*handler
	visited  int
	maxDepth int
}

// NewChecker creates a checker with a fresh violation sink.
func NewChecker(config *linty.Config, tokenizer syntax.Tokenizer, reader source.LineReader) *Checker {
	return NewCheckerWithSink(config, tokenizer, reader, &linty.Violations{})
}

// NewCheckerWithSink creates a checker appending into a caller-owned sink,
// for callers that accumulate violations across several trees.
func NewCheckerWithSink(config *linty.Config, tokenizer syntax.Tokenizer, reader source.LineReader, sink *linty.Violations) *Checker {
	return &Checker{
		config:     config,
		violations: sink,
		reader:     reader,
		tokenizer:  tokenizer,
	}
}

// Check runs one full traversal of root. Style violations accumulate in the
// sink and never stop the traversal; the returned error is one of the fatal
// conditions (unregistered kind, inconsistent brace tokens, unreadable
// source), after which the violation list must not be trusted as complete.
func (c *Checker) Check(root syntax.Node) error {
	if err := c.BeginTree(); err != nil {
		return err
	}

	if err := syntax.Walk(root, c.EnterNode, c.ExitNode); err != nil {
		return err
	}

	return c.EndTree()
}

// BeginTree pushes the root handler. The stack must be empty.
func (c *Checker) BeginTree() error {
	if len(c.stack) != 0 {
		return fmt.Errorf("%w: tree begun with %d live handlers", ErrTraversalState, len(c.stack))
	}

	c.stack = append(c.stack, newRootHandler(c))

	return nil
}

// EnterNode constructs and pushes the node's handler and runs its check
// immediately, before any child is visited.
func (c *Checker) EnterNode(node syntax.Node) error {
	if len(c.stack) == 0 {
		return fmt.Errorf("%w: node entered outside a tree", ErrTraversalState)
	}

	h, err := newHandler(c, node, c.stack[len(c.stack)-1])
	if err != nil {
		return err
	}

	c.stack = append(c.stack, h)
	c.visited++

	if depth := len(c.stack) - 1; depth > c.maxDepth {
		c.maxDepth = depth
	}

	return h.checkIndentation()
}

// ExitNode pops and discards the node's handler.
func (c *Checker) ExitNode(syntax.Node) error {
	if len(c.stack) <= 1 {
		return fmt.Errorf("%w: node exited without matching enter", ErrTraversalState)
	}

	c.stack[len(c.stack)-1] = nil
	c.stack = c.stack[:len(c.stack)-1]

	return nil
}

// EndTree pops the root handler. Only the root may remain on the stack.
func (c *Checker) EndTree() error {
	if len(c.stack) != 1 {
		return fmt.Errorf("%w: tree ended with %d live handlers", ErrTraversalState, len(c.stack))
	}

	c.stack = c.stack[:0]

	return nil
}

// Violations returns the sink the checker appends into.
func (c *Checker) Violations() *linty.Violations {
	return c.violations
}

// NodesVisited returns the number of handlers constructed so far.
func (c *Checker) NodesVisited() int {
	return c.visited
}

// MaxDepth returns the deepest handler stack seen, excluding the root
// handler.
func (c *Checker) MaxDepth() int {
	return c.maxDepth
}

// Depth returns the number of live handlers, excluding the root handler.
func (c *Checker) Depth() int {
	if len(c.stack) == 0 {
		return 0
	}

	return len(c.stack) - 1
}
