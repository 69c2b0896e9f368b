package indent

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/syntax"
)

func classTokens() []syntax.Token {
	return []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "{", 1, 11),
		tok(syntax.KEYWORD, "typedef", 2, 5),
		tok(syntax.KEYWORD, "int", 2, 13),
		tok(syntax.IDENTIFIER, "T", 2, 17),
		tok(syntax.PUNCTUATION, ";", 2, 18),
		tok(syntax.PUNCTUATION, "}", 3, 1),
		tok(syntax.PUNCTUATION, ";", 3, 2),
	}
}

func TestCheckBracesSameLineAccepted(t *testing.T) {
	contents := "class Foo {\n    typedef int T;\n};\n"
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 2,
		node(syntax.CLASS_DECL, 1, 1, 3, 2,
			node(syntax.TYPEDEF_DECL, 2, 5, 2, 18)))

	checker := newTestChecker(linty.DefaultConfig(), contents, classTokens())

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestCheckBracesSameLineOpeningBraceMoved(t *testing.T) {
	contents := "class Foo\n{\n    typedef int T;\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "{", 2, 1),
		tok(syntax.KEYWORD, "typedef", 3, 5),
		tok(syntax.KEYWORD, "int", 3, 13),
		tok(syntax.IDENTIFIER, "T", 3, 17),
		tok(syntax.PUNCTUATION, ";", 3, 18),
		tok(syntax.PUNCTUATION, "}", 4, 1),
		tok(syntax.PUNCTUATION, ";", 4, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 4, 2,
		node(syntax.CLASS_DECL, 1, 1, 4, 2,
			node(syntax.TYPEDEF_DECL, 3, 5, 3, 18)))

	checker := newTestChecker(linty.DefaultConfig(), contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 1, checker.Violations().Len())

	v := checker.Violations().All()[0]
	assert.Equal(t, linty.RuleBrace, v.Rule)
	assert.Equal(t, 2, v.Line)
}

func TestCheckBracesMixedTabsAndSpaces(t *testing.T) {
	// The block start sits behind four spaces (raw column 5) while the
	// closing brace sits behind a tab (raw column 2). With tab_size 4 both
	// land on expanded column 4, so the braces are aligned.
	contents := "    class Foo {\n\t};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 5),
		tok(syntax.IDENTIFIER, "Foo", 1, 11),
		tok(syntax.PUNCTUATION, "{", 1, 15),
		tok(syntax.PUNCTUATION, "}", 2, 2),
		tok(syntax.PUNCTUATION, ";", 2, 3),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 2, 3,
		node(syntax.CLASS_DECL, 1, 5, 2, 3))

	checker := newTestChecker(linty.DefaultConfig(), contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestCheckBracesNextLineMixedTabsAndSpaces(t *testing.T) {
	// Both braces sit behind a tab on their own lines while the block
	// start sits behind four spaces; all three expand to column 4.
	contents := "    class Foo\n\t{\n\t};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 5),
		tok(syntax.IDENTIFIER, "Foo", 1, 11),
		tok(syntax.PUNCTUATION, "{", 2, 2),
		tok(syntax.PUNCTUATION, "}", 3, 2),
		tok(syntax.PUNCTUATION, ";", 3, 3),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 3,
		node(syntax.CLASS_DECL, 1, 5, 3, 3))

	config := linty.DefaultConfig()
	config.BracePositionsClassStructDeclaration = linty.NextLine

	checker := newTestChecker(config, contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestCheckBracesNextLineIndent(t *testing.T) {
	tests := []struct {
		name       string
		braceCol   int // raw 1-based column of both braces
		violations int
	}{
		{"brace one level deeper is accepted", 5, 0},
		{"brace flush with block start is rejected", 1, 1},
		{"brace half a level deep is rejected", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := linty.DefaultConfig()
			config.BracePositionsClassStructDeclaration = linty.NextLineIndent

			indentStr := strings.Repeat(" ", tt.braceCol-1)
			contents := "class Foo\n" + indentStr + "{\n    typedef int T;\n    };\n"
			tokens := []syntax.Token{
				tok(syntax.KEYWORD, "class", 1, 1),
				tok(syntax.IDENTIFIER, "Foo", 1, 7),
				tok(syntax.PUNCTUATION, "{", 2, tt.braceCol),
				tok(syntax.KEYWORD, "typedef", 3, 5),
				tok(syntax.KEYWORD, "int", 3, 13),
				tok(syntax.IDENTIFIER, "T", 3, 17),
				tok(syntax.PUNCTUATION, ";", 3, 18),
				tok(syntax.PUNCTUATION, "}", 4, 5),
				tok(syntax.PUNCTUATION, ";", 4, 6),
			}
			tree := node(syntax.TRANSLATION_UNIT, 1, 1, 4, 6,
				node(syntax.CLASS_DECL, 1, 1, 4, 6,
					node(syntax.TYPEDEF_DECL, 3, 5, 3, 18)))

			checker := newTestChecker(config, contents, tokens)

			err := checker.Check(tree)
			assert.NoError(t, err)
			assert.Equal(t, tt.violations, checker.Violations().Len())

			for _, v := range checker.Violations().All() {
				assert.Equal(t, linty.RuleBrace, v.Rule)
			}
		})
	}
}

func TestCheckBracesForwardDeclarationHasNoBraceBlock(t *testing.T) {
	contents := "class Foo;\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, ";", 1, 10),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 1, 10,
		node(syntax.CLASS_DECL, 1, 1, 1, 10))

	checker := newTestChecker(linty.DefaultConfig(), contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestCheckBracesInconsistentWindowIsFatal(t *testing.T) {
	contents := "class Foo\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "}", 2, 1),
		tok(syntax.PUNCTUATION, ";", 2, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 2, 2,
		node(syntax.CLASS_DECL, 1, 1, 2, 2))

	checker := newTestChecker(linty.DefaultConfig(), contents, tokens)

	err := checker.Check(tree)
	assert.IsError(t, err, ErrInconsistentBraces)
}

func TestCheckBracesNamespaceStyleIsIndependent(t *testing.T) {
	// Namespace style next-line: brace must be flush with block start.
	config := linty.DefaultConfig()
	config.BracePositionsNamespaceDeclaration = linty.NextLine

	contents := "namespace foo\n{\n}\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "namespace", 1, 1),
		tok(syntax.IDENTIFIER, "foo", 1, 11),
		tok(syntax.PUNCTUATION, "{", 2, 1),
		tok(syntax.PUNCTUATION, "}", 3, 1),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 1,
		node(syntax.NAMESPACE, 1, 1, 3, 1))

	checker := newTestChecker(config, contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}
