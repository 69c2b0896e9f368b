package syntax

// Position is a 1-based line/column location in a source file. Column counts
// raw characters; tab expansion happens in the indent package.
type Position struct {
	Line   int
	Column int
}

// Extent is the source range covered by a node or token.
type Extent struct {
	File  string
	Start Position
	End   Position
}

// Contains reports whether other lies fully within e. Both ends are
// inclusive, matching how tokenizers report extents.
func (e Extent) Contains(other Extent) bool {
	if e.File != other.File {
		return false
	}
	if other.Start.Line < e.Start.Line ||
		(other.Start.Line == e.Start.Line && other.Start.Column < e.Start.Column) {
		return false
	}
	if other.End.Line > e.End.Line ||
		(other.End.Line == e.End.Line && other.End.Column > e.End.Column) {
		return false
	}

	return true
}

// TokenKind represents the lexical category of a token
type TokenKind int

const (
	PUNCTUATION TokenKind = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	COMMENT
)

// String returns the string representation of TokenKind
func (t TokenKind) String() string {
	switch t {
	case PUNCTUATION:
		return "PUNCTUATION"
	case KEYWORD:
		return "KEYWORD"
	case IDENTIFIER:
		return "IDENTIFIER"
	case LITERAL:
		return "LITERAL"
	case COMMENT:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

// TokenKindFromName resolves a lower-case kind name as it appears in AST
// dumps ("punctuation", "keyword", ...).
func TokenKindFromName(name string) (TokenKind, bool) {
	switch name {
	case "punctuation":
		return PUNCTUATION, true
	case "keyword":
		return KEYWORD, true
	case "identifier":
		return IDENTIFIER, true
	case "literal":
		return LITERAL, true
	case "comment":
		return COMMENT, true
	default:
		return 0, false
	}
}

// Token is one lexical token as reported by the external tokenizer.
type Token struct {
	Kind     TokenKind
	Spelling string
	Extent   Extent
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Kind.String() + ": " + t.Spelling
}
