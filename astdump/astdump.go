// Package astdump loads serialized AST and token dumps produced by an
// external parser and turns them into the syntax values the indent checker
// consumes. Dumps are YAML documents (JSON works too, being a YAML subset)
// with a token list and a nested node tree; they may embed the source text
// for self-contained fixtures.
package astdump

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/linty-dev/linty/source"
	"github.com/linty-dev/linty/syntax"
)

// Sentinel errors
var (
	ErrMissingFile      = errors.New("dump has no file path")
	ErrMissingTree      = errors.New("dump has no tree")
	ErrUnknownKind      = errors.New("unknown node kind in dump")
	ErrUnknownTokenKind = errors.New("unknown token kind in dump")
	ErrInvalidPosition  = errors.New("invalid position in dump")
)

// Dump is one loaded AST dump: the checked file's path, its token stream,
// the tree root, and optionally the inline source text.
type Dump struct {
	File   string
	Source string
	Root   syntax.Node
	Tokens []syntax.Token
}

type dumpDoc struct {
	File   string     `yaml:"file"`
	Source string     `yaml:"source"`
	Tokens []tokenDoc `yaml:"tokens"`
	Tree   *nodeDoc   `yaml:"tree"`
}

type tokenDoc struct {
	Kind      string `yaml:"kind"`
	Spelling  string `yaml:"spelling"`
	Line      int    `yaml:"line"`
	Column    int    `yaml:"column"`
	EndLine   int    `yaml:"end_line"`
	EndColumn int    `yaml:"end_column"`
}

type posDoc struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

type nodeDoc struct {
	Kind     string    `yaml:"kind"`
	Start    posDoc    `yaml:"start"`
	End      posDoc    `yaml:"end"`
	Children []nodeDoc `yaml:"children"`
}

// Load reads and parses the dump at path.
func Load(path string) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump file: %w", err)
	}

	dump, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dump file %s: %w", path, err)
	}

	return dump, nil
}

// Parse parses dump data. A malformed document yields an error and no
// partial tree.
func Parse(data []byte) (*Dump, error) {
	var doc dumpDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.File == "" {
		return nil, ErrMissingFile
	}
	if doc.Tree == nil {
		return nil, ErrMissingTree
	}

	tokens := make([]syntax.Token, 0, len(doc.Tokens))
	for _, t := range doc.Tokens {
		kind, ok := syntax.TokenKindFromName(t.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTokenKind, t.Kind)
		}
		if t.Line < 1 || t.Column < 1 {
			return nil, fmt.Errorf("%w: token %q at %d:%d", ErrInvalidPosition, t.Spelling, t.Line, t.Column)
		}

		end := syntax.Position{Line: t.EndLine, Column: t.EndColumn}
		if end.Line == 0 {
			// Single-line token without an explicit end.
			end = syntax.Position{Line: t.Line, Column: t.Column + utf8.RuneCountInString(t.Spelling) - 1}
		}

		tokens = append(tokens, syntax.Token{
			Kind:     kind,
			Spelling: t.Spelling,
			Extent: syntax.Extent{
				File:  doc.File,
				Start: syntax.Position{Line: t.Line, Column: t.Column},
				End:   end,
			},
		})
	}

	root, err := buildNode(doc.File, *doc.Tree)
	if err != nil {
		return nil, err
	}

	return &Dump{
		File:   doc.File,
		Source: doc.Source,
		Root:   root,
		Tokens: tokens,
	}, nil
}

func buildNode(file string, doc nodeDoc) (*syntax.TreeNode, error) {
	kind, ok := syntax.KindFromName(doc.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
	}
	if doc.Start.Line < 1 || doc.Start.Column < 1 {
		return nil, fmt.Errorf("%w: node %s at %d:%d", ErrInvalidPosition, doc.Kind, doc.Start.Line, doc.Start.Column)
	}

	extent := syntax.Extent{
		File:  file,
		Start: syntax.Position{Line: doc.Start.Line, Column: doc.Start.Column},
		End:   syntax.Position{Line: doc.End.Line, Column: doc.End.Column},
	}

	node := syntax.NewTreeNode(kind, extent)
	for _, child := range doc.Children {
		built, err := buildNode(file, child)
		if err != nil {
			return nil, err
		}
		node.AddChild(built)
	}

	return node, nil
}

// Tokenizer returns a tokenizer serving the dump's token stream: Tokenize
// yields, in order, every token whose extent lies within the query extent.
func (d *Dump) Tokenizer() syntax.Tokenizer {
	return &windowTokenizer{tokens: d.Tokens}
}

// LineReader returns a reader over the embedded source text, or nil when
// the dump carries no source and the caller should read the file itself.
func (d *Dump) LineReader() source.LineReader {
	if d.Source == "" {
		return nil
	}

	reader := source.NewMemoryReader()
	reader.Add(d.File, d.Source)

	return reader
}

type windowTokenizer struct {
	tokens []syntax.Token
}

func (w *windowTokenizer) Tokenize(extent syntax.Extent) ([]syntax.Token, error) {
	var window []syntax.Token
	for _, t := range w.tokens {
		if extent.Contains(t.Extent) {
			window = append(window, t)
		}
	}

	return window, nil
}
