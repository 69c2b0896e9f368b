package indent

import (
	"sort"
	"strconv"
	"strings"
)

// Level is the set of columns considered correctly indented at one tree
// position. A Level is a value: deriving or widening produces a new Level
// and never mutates the receiver, so a parent's level can be shared safely
// by any number of children.
type Level struct {
	columns []int // sorted ascending, deduplicated, never empty
}

// NewLevel returns a singleton level accepting exactly column.
func NewLevel(column int) Level {
	return Level{columns: []int{column}}
}

func newLevelFromSet(set map[int]struct{}) Level {
	columns := make([]int, 0, len(set))
	for c := range set {
		columns = append(columns, c)
	}
	sort.Ints(columns)

	return Level{columns: columns}
}

// Derive returns the level whose members are the receiver's members shifted
// by offset. Cardinality is preserved.
func (l Level) Derive(offset int) Level {
	columns := make([]int, len(l.columns))
	for i, c := range l.columns {
		columns[i] = c + offset
	}

	return Level{columns: columns}
}

// Accepts reports whether column is an acceptable indentation.
func (l Level) Accepts(column int) bool {
	i := sort.SearchInts(l.columns, column)
	return i < len(l.columns) && l.columns[i] == column
}

// Exceeds reports whether the largest acceptable column is strictly greater
// than column, i.e. the position is indented too little.
func (l Level) Exceeds(column int) bool {
	return l.columns[len(l.columns)-1] > column
}

// Widen returns the union of the receiver and other. Used at the points
// where a rule intentionally allows more than one legal placement.
func (l Level) Widen(other Level) Level {
	set := make(map[int]struct{}, len(l.columns)+len(other.columns))
	for _, c := range l.columns {
		set[c] = struct{}{}
	}
	for _, c := range other.columns {
		set[c] = struct{}{}
	}

	return newLevelFromSet(set)
}

// WidenColumn returns the receiver with one additional acceptable column.
func (l Level) WidenColumn(column int) Level {
	return l.Widen(NewLevel(column))
}

// Multi reports whether more than one column is acceptable.
func (l Level) Multi() bool {
	return len(l.columns) > 1
}

// Size returns the number of acceptable columns.
func (l Level) Size() int {
	return len(l.columns)
}

// String returns the string representation of Level
func (l Level) String() string {
	parts := make([]string, len(l.columns))
	for i, c := range l.columns {
		parts[i] = strconv.Itoa(c)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
