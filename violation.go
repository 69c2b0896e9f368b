package linty

import "fmt"

// Rule tags for reported violations.
const (
	RuleStatement = "indent.statement"
	RuleBrace     = "indent.brace"
)

// Violation is one reported style violation. Immutable once created.
type Violation struct {
	Rule    string `json:"rule"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// String returns the string representation of Violation
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d:%d: %s [%s]", v.File, v.Line, v.Column, v.Message, v.Rule)
}

// Violations is the ordered sink for reported violations. Insertion order is
// discovery order (pre-order node visitation). Owned by a single checker
// session; not safe for concurrent use.
type Violations struct {
	items []Violation
}

// Add appends a violation.
func (vs *Violations) Add(v Violation) {
	vs.items = append(vs.items, v)
}

// All returns the violations in insertion order. The returned slice is the
// sink's backing store; callers must not modify it.
func (vs *Violations) All() []Violation {
	return vs.items
}

// Len returns the number of recorded violations.
func (vs *Violations) Len() int {
	return len(vs.items)
}
