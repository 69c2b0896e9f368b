// Package source provides the line-level view of checked files. The indent
// checker only needs raw line text to expand tabs; it never re-reads or
// re-parses source itself.
package source

import (
	"fmt"
	"os"
	"strings"
)

// LineReader returns a file's contents split into lines. Line addressing by
// callers is 1-based; the returned slice is 0-based.
type LineReader interface {
	Lines(path string) ([]string, error)
}

// FileCache is a LineReader that reads each file from disk once and caches
// the split lines. Not safe for concurrent use; each checker session owns
// its own cache.
type FileCache struct {
	files map[string][]string
}

// NewFileCache creates an empty file cache.
func NewFileCache() *FileCache {
	return &FileCache{files: make(map[string][]string)}
}

// Lines returns the cached lines for path, reading the file on first access.
func (c *FileCache) Lines(path string) ([]string, error) {
	if lines, ok := c.files[path]; ok {
		return lines, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	lines := SplitLines(string(data))
	c.files[path] = lines

	return lines, nil
}

// MemoryReader serves lines from memory. Used for tests and for AST dumps
// that embed their source text.
type MemoryReader struct {
	files map[string][]string
}

// NewMemoryReader creates an empty in-memory reader.
func NewMemoryReader() *MemoryReader {
	return &MemoryReader{files: make(map[string][]string)}
}

// Add registers the contents of path.
func (m *MemoryReader) Add(path, contents string) {
	m.files[path] = SplitLines(contents)
}

// Lines returns the registered lines for path.
func (m *MemoryReader) Lines(path string) ([]string, error) {
	lines, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", os.ErrNotExist, path)
	}

	return lines, nil
}

// SplitLines splits contents into lines, tolerating both LF and CRLF and a
// missing trailing newline.
func SplitLines(contents string) []string {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	lines := strings.Split(contents, "\n")
	// A trailing newline produces one phantom empty line; drop it.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
