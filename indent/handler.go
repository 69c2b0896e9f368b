package indent

import (
	"fmt"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/syntax"
)

// handler is the per-node checking obligation. One handler exists per node
// on the current root-to-node path; the checker's stack owns it, the parent
// pointer is a non-owning back reference. Its level is fixed at
// construction and never changes while children are visited.
type handler struct {
	checker *Checker
	kind    syntax.Kind
	node    syntax.Node
	parent  *handler
	entry   entry
	level   Level

	// token window, memoized on first access
	tokens      []syntax.Token
	tokensValid bool
}

// newHandler constructs the handler for node, deriving its level from the
// parent's suggestion. A kind outside the registry is a fatal dispatch
// error.
func newHandler(c *Checker, node syntax.Node, parent *handler) (*handler, error) {
	kind := node.Kind()

	e, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, kind)
	}

	h := &handler{
		checker: c,
		kind:    kind,
		node:    node,
		parent:  parent,
		entry:   e,
	}
	h.level = parent.suggestedChildLevel()
	if e.level != nil {
		h.level = e.level(h, h.level)
	}

	return h, nil
}

// newRootHandler constructs the sentinel base of the handler stack. It has
// no node and accepts exactly column zero.
func newRootHandler(c *Checker) *handler {
	return &handler{
		checker: c,
		level:   NewLevel(0),
	}
}

// suggestedChildLevel returns the level a child derives its own from:
// the handler's level shifted by one indentation unit when this kind
// increases indent under the current configuration, unshifted otherwise.
func (h *handler) suggestedChildLevel() Level {
	if h.entry.increase != nil && h.entry.increase(h.checker.config) {
		return h.level.Derive(h.checker.config.IndentationSize)
	}

	return h.level.Derive(0)
}

// checkIndentation runs this kind's check, if any. Violations go to the
// sink; a returned error is fatal and aborts the traversal.
func (h *handler) checkIndentation() error {
	if h.entry.check == nil {
		return nil
	}

	return h.entry.check(h)
}

// tokenWindow returns the tokens covering the node's extent, memoized.
func (h *handler) tokenWindow() ([]syntax.Token, error) {
	if h.tokensValid {
		return h.tokens, nil
	}

	tokens, err := h.checker.tokenizer.Tokenize(h.node.Extent())
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize node extent: %w", err)
	}

	h.tokens = tokens
	h.tokensValid = true

	return tokens, nil
}

// firstToken returns the first token of the node's window.
func (h *handler) firstToken() (*syntax.Token, error) {
	tokens, err := h.tokenWindow()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTokenWindow, h.kind)
	}

	return &tokens[0], nil
}

// expandedColumn resolves the tab-expanded column of an extent's start.
func (h *handler) expandedColumn(extent syntax.Extent) (int, error) {
	lines, err := h.checker.reader.Lines(extent.File)
	if err != nil {
		return 0, err
	}
	if extent.Start.Line < 1 || extent.Start.Line > len(lines) {
		return 0, fmt.Errorf("%w: %s:%d", ErrLineOutOfRange, extent.File, extent.Start.Line)
	}

	line := lines[extent.Start.Line-1]

	return ExpandedColumn(line, extent.Start.Column-1, h.checker.config.TabSize), nil
}

// logViolation records one style violation at the extent's start.
func (h *handler) logViolation(rule string, extent syntax.Extent, message string) {
	h.checker.violations.Add(linty.Violation{
		Rule:    rule,
		File:    extent.File,
		Line:    extent.Start.Line,
		Column:  extent.Start.Column,
		Message: message,
	})
}

// onSameLine reports whether two tokens start on the same line. Either
// token missing counts as not on the same line.
func onSameLine(a, b *syntax.Token) bool {
	return a != nil && b != nil && a.Extent.Start.Line == b.Extent.Start.Line
}

// onSameExpandedColumn reports whether two tokens start on the same
// tab-expanded column, so files mixing tabs and spaces are compared on a
// normalized scale. Either token missing counts as not on the same column.
func (h *handler) onSameExpandedColumn(a, b *syntax.Token) (bool, error) {
	if a == nil || b == nil {
		return false, nil
	}

	colA, err := h.expandedColumn(a.Extent)
	if err != nil {
		return false, err
	}

	colB, err := h.expandedColumn(b.Extent)
	if err != nil {
		return false, err
	}

	return colA == colB, nil
}

// checkFirstTokenIndent is the direct position check used by single-token
// declarations: the node's own expanded column must be acceptable.
func checkFirstTokenIndent(h *handler) error {
	col, err := h.expandedColumn(h.node.Extent())
	if err != nil {
		return err
	}

	if !h.level.Accepts(col) {
		h.logViolation(linty.RuleStatement, h.node.Extent(), "Invalid indentation level.")
	}

	return nil
}
