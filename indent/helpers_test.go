package indent

import (
	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/source"
	"github.com/linty-dev/linty/syntax"
)

const testFile = "test.cpp"

// stubTokenizer serves a fixed token stream, windowed by extent containment
// the same way the astdump loader does.
type stubTokenizer struct {
	tokens []syntax.Token
}

func (s stubTokenizer) Tokenize(extent syntax.Extent) ([]syntax.Token, error) {
	var window []syntax.Token
	for _, t := range s.tokens {
		if extent.Contains(t.Extent) {
			window = append(window, t)
		}
	}

	return window, nil
}

func pos(line, column int) syntax.Position {
	return syntax.Position{Line: line, Column: column}
}

func extentAt(startLine, startCol, endLine, endCol int) syntax.Extent {
	return syntax.Extent{
		File:  testFile,
		Start: pos(startLine, startCol),
		End:   pos(endLine, endCol),
	}
}

func tok(kind syntax.TokenKind, spelling string, line, column int) syntax.Token {
	return syntax.Token{
		Kind:     kind,
		Spelling: spelling,
		Extent:   extentAt(line, column, line, column+len(spelling)-1),
	}
}

func node(kind syntax.Kind, startLine, startCol, endLine, endCol int, children ...syntax.Node) *syntax.TreeNode {
	return syntax.NewTreeNode(kind, extentAt(startLine, startCol, endLine, endCol), children...)
}

// newTestChecker wires a checker over in-memory source text and tokens.
func newTestChecker(config *linty.Config, contents string, tokens []syntax.Token) *Checker {
	reader := source.NewMemoryReader()
	reader.Add(testFile, contents)

	return NewChecker(config, stubTokenizer{tokens: tokens}, reader)
}
