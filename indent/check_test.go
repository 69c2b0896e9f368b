package indent

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/linty-dev/linty"
	"github.com/linty-dev/linty/source"
	"github.com/linty-dev/linty/syntax"
)

func TestRootHandlerAcceptsOnlyColumnZero(t *testing.T) {
	checker := newTestChecker(linty.DefaultConfig(), "", nil)
	root := newRootHandler(checker)

	assert.True(t, root.level.Accepts(0))
	assert.False(t, root.level.Multi())

	for c := 1; c <= 16; c++ {
		assert.False(t, root.level.Accepts(c))
	}
}

func TestTraversalCompleteness(t *testing.T) {
	contents := "int a;\nint b;\nint c;\n"
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 6,
		node(syntax.DECL_STMT, 1, 1, 1, 6,
			node(syntax.VAR_DECL, 1, 1, 1, 6)),
		node(syntax.DECL_STMT, 2, 1, 2, 6,
			node(syntax.VAR_DECL, 2, 1, 2, 6)),
		node(syntax.VAR_DECL, 3, 1, 3, 6))

	checker := newTestChecker(linty.DefaultConfig(), contents, nil)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 6, checker.NodesVisited())
	assert.Equal(t, 0, checker.Depth())
	assert.Equal(t, 3, checker.MaxDepth())
}

func TestViolationsAreInPreOrder(t *testing.T) {
	// Two misaligned typedefs; the first one in source order must be
	// reported first.
	contents := "class Foo {\n typedef int A;\n  typedef int B;\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "{", 1, 11),
		tok(syntax.KEYWORD, "typedef", 2, 2),
		tok(syntax.PUNCTUATION, ";", 2, 15),
		tok(syntax.KEYWORD, "typedef", 3, 3),
		tok(syntax.PUNCTUATION, ";", 3, 16),
		tok(syntax.PUNCTUATION, "}", 4, 1),
		tok(syntax.PUNCTUATION, ";", 4, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 4, 2,
		node(syntax.CLASS_DECL, 1, 1, 4, 2,
			node(syntax.TYPEDEF_DECL, 2, 2, 2, 15),
			node(syntax.TYPEDEF_DECL, 3, 3, 3, 16)))

	checker := newTestChecker(linty.DefaultConfig(), contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)

	violations := checker.Violations().All()
	assert.Equal(t, 2, len(violations))
	assert.Equal(t, 2, violations[0].Line)
	assert.Equal(t, 3, violations[1].Line)
}

func TestUnregisteredKindAbortsSession(t *testing.T) {
	contents := "class Foo {\n typedef int A;\n};\n"
	unknown := syntax.NewTreeNode(syntax.Kind(9999), extentAt(1, 1, 1, 1))
	// The misaligned typedef sits after the unknown node; its violation
	// must never be recorded.
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 2)
	tree.AddChild(unknown)
	tree.AddChild(node(syntax.TYPEDEF_DECL, 2, 2, 2, 15))

	checker := newTestChecker(linty.DefaultConfig(), contents, nil)

	err := checker.Check(tree)
	assert.IsError(t, err, ErrNoHandler)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestEndToEndMisalignedMember(t *testing.T) {
	// One class with one member typedef indented five columns instead of
	// four: exactly one statement violation and no brace violations.
	contents := "class Foo {\n     typedef int T;\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "{", 1, 11),
		tok(syntax.KEYWORD, "typedef", 2, 6),
		tok(syntax.KEYWORD, "int", 2, 14),
		tok(syntax.IDENTIFIER, "T", 2, 18),
		tok(syntax.PUNCTUATION, ";", 2, 19),
		tok(syntax.PUNCTUATION, "}", 3, 1),
		tok(syntax.PUNCTUATION, ";", 3, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 2,
		node(syntax.CLASS_DECL, 1, 1, 3, 2,
			node(syntax.TYPEDEF_DECL, 2, 6, 2, 19)))

	config := linty.DefaultConfig()
	config.IndentationSize = 4
	config.IndentInsideClassStructBody = true
	config.BracePositionsClassStructDeclaration = linty.SameLine

	checker := newTestChecker(config, contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)

	violations := checker.Violations().All()
	assert.Equal(t, 1, len(violations))
	assert.Equal(t, linty.RuleStatement, violations[0].Rule)
	assert.Equal(t, "Invalid indentation level.", violations[0].Message)
	assert.Equal(t, 2, violations[0].Line)
	assert.Equal(t, 6, violations[0].Column)
}

func TestIndentFlagsGateChildLevels(t *testing.T) {
	// With indent_inside_class_struct_body disabled, a member flush with
	// the class is accepted and an indented one is not.
	contents := "class Foo {\ntypedef int T;\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "{", 1, 11),
		tok(syntax.KEYWORD, "typedef", 2, 1),
		tok(syntax.PUNCTUATION, ";", 2, 14),
		tok(syntax.PUNCTUATION, "}", 3, 1),
		tok(syntax.PUNCTUATION, ";", 3, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 2,
		node(syntax.CLASS_DECL, 1, 1, 3, 2,
			node(syntax.TYPEDEF_DECL, 2, 1, 2, 14)))

	config := linty.DefaultConfig()
	config.IndentInsideClassStructBody = false

	checker := newTestChecker(config, contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestPartialSpecializationAcceptsBothCandidateLevels(t *testing.T) {
	// Inside an indenting class, a partial specialization's level is
	// multi-valued: flush with the class or one level deeper. Members may
	// then sit at either candidate plus one unit.
	contents := "class Outer {\n    template <typename T>\n    class Inner<T*> {\n        typedef T U;\n    };\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Outer", 1, 7),
		tok(syntax.PUNCTUATION, "{", 1, 13),
		tok(syntax.KEYWORD, "template", 2, 5),
		tok(syntax.KEYWORD, "class", 3, 5),
		tok(syntax.IDENTIFIER, "Inner", 3, 11),
		tok(syntax.PUNCTUATION, "{", 3, 21),
		tok(syntax.KEYWORD, "typedef", 4, 9),
		tok(syntax.PUNCTUATION, ";", 4, 20),
		tok(syntax.PUNCTUATION, "}", 5, 5),
		tok(syntax.PUNCTUATION, ";", 5, 6),
		tok(syntax.PUNCTUATION, "}", 6, 1),
		tok(syntax.PUNCTUATION, ";", 6, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 6, 2,
		node(syntax.CLASS_DECL, 1, 1, 6, 2,
			node(syntax.CLASS_TEMPLATE_PARTIAL_SPECIALIZATION, 2, 5, 5, 5,
				node(syntax.TYPEDEF_DECL, 4, 9, 4, 20))))

	checker := newTestChecker(linty.DefaultConfig(), contents, tokens)

	err := checker.Check(tree)
	assert.NoError(t, err)
	assert.Equal(t, 0, checker.Violations().Len())
}

func TestSharedSinkAccumulatesAcrossTrees(t *testing.T) {
	contents := "class Foo {\n typedef int A;\n};\n"
	tokens := []syntax.Token{
		tok(syntax.KEYWORD, "class", 1, 1),
		tok(syntax.IDENTIFIER, "Foo", 1, 7),
		tok(syntax.PUNCTUATION, "{", 1, 11),
		tok(syntax.KEYWORD, "typedef", 2, 2),
		tok(syntax.PUNCTUATION, ";", 2, 15),
		tok(syntax.PUNCTUATION, "}", 3, 1),
		tok(syntax.PUNCTUATION, ";", 3, 2),
	}
	tree := node(syntax.TRANSLATION_UNIT, 1, 1, 3, 2,
		node(syntax.CLASS_DECL, 1, 1, 3, 2,
			node(syntax.TYPEDEF_DECL, 2, 2, 2, 15)))

	reader := source.NewMemoryReader()
	reader.Add(testFile, contents)

	var sink linty.Violations

	// Two sessions over the same tree, one checker each, one shared sink.
	for i := 0; i < 2; i++ {
		checker := NewCheckerWithSink(linty.DefaultConfig(), stubTokenizer{tokens: tokens}, reader, &sink)
		assert.NoError(t, checker.Check(tree))
	}

	assert.Equal(t, 2, sink.Len())
}

func TestExitWithoutEnterIsTraversalStateError(t *testing.T) {
	checker := newTestChecker(linty.DefaultConfig(), "", nil)

	assert.NoError(t, checker.BeginTree())
	assert.IsError(t, checker.ExitNode(nil), ErrTraversalState)
}

func TestBeginTreeTwiceIsTraversalStateError(t *testing.T) {
	checker := newTestChecker(linty.DefaultConfig(), "", nil)

	assert.NoError(t, checker.BeginTree())
	assert.IsError(t, checker.BeginTree(), ErrTraversalState)
}
