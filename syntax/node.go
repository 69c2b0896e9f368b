package syntax

// Node is one node of an externally supplied syntax tree. Implementations
// must report children in stable source order.
type Node interface {
	Kind() Kind
	Extent() Extent
	Children() []Node
}

// Tokenizer resolves a source extent into the ordered token sequence
// covering it. Implemented by the AST dump loader; the checker never
// tokenizes source text itself.
type Tokenizer interface {
	Tokenize(extent Extent) ([]Token, error)
}

// TreeNode is the concrete Node used by loaders and tests.
type TreeNode struct {
	kind     Kind
	extent   Extent
	children []Node
}

// NewTreeNode creates a tree node with the given children in source order.
func NewTreeNode(kind Kind, extent Extent, children ...Node) *TreeNode {
	return &TreeNode{kind: kind, extent: extent, children: children}
}

// Kind returns the node's syntactic category.
func (n *TreeNode) Kind() Kind { return n.kind }

// Extent returns the node's source range.
func (n *TreeNode) Extent() Extent { return n.extent }

// Children returns the node's children in source order.
func (n *TreeNode) Children() []Node { return n.children }

// AddChild appends a child, keeping source order the caller's concern.
func (n *TreeNode) AddChild(child Node) {
	n.children = append(n.children, child)
}

// Walk drives a depth-first traversal: enter is called pre-order and exit
// post-order for every node including the root. A non-nil error from either
// callback aborts the walk immediately.
func Walk(root Node, enter, exit func(Node) error) error {
	if err := enter(root); err != nil {
		return err
	}

	for _, child := range root.Children() {
		if err := Walk(child, enter, exit); err != nil {
			return err
		}
	}

	return exit(root)
}
