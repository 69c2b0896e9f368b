package indent

import (
	"fmt"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/syntax"
)

// braceTokens scans the node's token window for the first opening brace,
// the last closing brace, and the token immediately left of the opening
// brace (the owner token, e.g. a class name or base-clause terminator).
func (h *handler) braceTokens() (lbrace, rbrace, owner *syntax.Token, err error) {
	tokens, err := h.tokenWindow()
	if err != nil {
		return nil, nil, nil, err
	}

	for i := range tokens {
		t := &tokens[i]
		if t.Kind == syntax.PUNCTUATION && t.Spelling == "{" {
			lbrace = t
			break
		}
		owner = t
	}
	if lbrace == nil {
		owner = nil
	}

	for i := len(tokens) - 1; i >= 0; i-- {
		t := &tokens[i]
		if t.Kind == syntax.PUNCTUATION && t.Spelling == "}" {
			rbrace = t
			break
		}
	}

	return lbrace, rbrace, owner, nil
}

// checkBraces verifies the placement of the block's braces against style.
// A node without an opening brace has no brace block at all; a closing
// brace or owner token found anyway means the tree and token stream
// disagree, which is fatal rather than reportable.
func (h *handler) checkBraces(style linty.BraceStyle) error {
	lbrace, rbrace, owner, err := h.braceTokens()
	if err != nil {
		return err
	}

	if lbrace == nil {
		if rbrace != nil {
			return fmt.Errorf("%w: %s has a closing brace but no opening brace", ErrInconsistentBraces, h.kind)
		}

		return nil
	}

	if rbrace == nil {
		return fmt.Errorf("%w: %s has an opening brace but no closing brace", ErrInconsistentBraces, h.kind)
	}

	first, err := h.firstToken()
	if err != nil {
		return err
	}

	switch style {
	case linty.SameLine:
		if !onSameLine(owner, lbrace) {
			h.logViolation(linty.RuleBrace, lbrace.Extent,
				"Opening brace should be on the same line as the token left of it.")
		}
		aligned, err := h.onSameExpandedColumn(first, rbrace)
		if err != nil {
			return err
		}
		if !aligned {
			h.logViolation(linty.RuleBrace, rbrace.Extent,
				"Closing brace should be on the same column as block start.")
		}
	case linty.NextLine:
		aligned, err := h.onSameExpandedColumn(first, lbrace)
		if err != nil {
			return err
		}
		if !aligned {
			h.logViolation(linty.RuleBrace, lbrace.Extent,
				"Opening brace should be on the same column as block start.")
		}
		if owner != nil && owner.Extent.Start.Line == lbrace.Extent.Start.Line+1 {
			h.logViolation(linty.RuleBrace, lbrace.Extent,
				"Opening brace should be on the line directly after block start.")
		}
		aligned, err = h.onSameExpandedColumn(first, rbrace)
		if err != nil {
			return err
		}
		if !aligned {
			h.logViolation(linty.RuleBrace, rbrace.Extent,
				"Closing brace should be on the same column as block start.")
		}
	case linty.NextLineIndent:
		if owner != nil && owner.Extent.Start.Line == lbrace.Extent.Start.Line+1 {
			h.logViolation(linty.RuleBrace, lbrace.Extent,
				"Opening brace should be on the line directly after block start.")
		}
		// Both braces must sit one level further than the block start.
		nextLevel := h.level.Derive(h.checker.config.IndentationSize)

		lcol, err := h.expandedColumn(lbrace.Extent)
		if err != nil {
			return err
		}
		if !nextLevel.Accepts(lcol) {
			h.logViolation(linty.RuleBrace, lbrace.Extent,
				"Opening brace should be indented one level further than block start.")
		}

		rcol, err := h.expandedColumn(rbrace.Extent)
		if err != nil {
			return err
		}
		if !nextLevel.Accepts(rcol) {
			h.logViolation(linty.RuleBrace, rbrace.Extent,
				"Closing brace should be indented one level further than block start.")
		}
	}

	return nil
}
