// Package tree implements a strict binary tree with path based node
// addressing and a nested value/left/right YAML form for persistence.
//
// A tree is just a *Node held by the caller. All operations walk down
// from that node; there are no parent pointers and no internal locking.
// A tree belongs to exactly one owner and must not be mutated from
// several goroutines at the same time.
package tree

// Node is a single vertex of a binary tree. It exclusively owns its
// left and right subtree; cycles and shared subtrees are not allowed.
// The fields carry no hidden invariants and may be modified directly.
type Node struct {
	// Value is the payload of this node.
	// Any printable, serializable scalar works.
	Value interface{}

	// Left is the left child, or nil if there is none.
	Left *Node

	// Right is the right child, or nil if there is none.
	Right *Node
}

// New creates a leaf node holding `value`.
func New(value interface{}) *Node {
	return &Node{Value: value}
}

// Child returns the child sitting in the slot selected by `step`.
func (nd *Node) Child(step Step) *Node {
	if step == Left {
		return nd.Left
	}
	return nd.Right
}

func (nd *Node) setChild(step Step, child *Node) {
	if step == Left {
		nd.Left = child
	} else {
		nd.Right = child
	}
}

// Clone returns a deep copy of the tree below `nd`.
// Cloning a nil node yields nil.
func (nd *Node) Clone() *Node {
	if nd == nil {
		return nil
	}

	return &Node{
		Value: nd.Value,
		Left:  nd.Left.Clone(),
		Right: nd.Right.Clone(),
	}
}

// Equal checks if `a` and `b` have the same shape and the same value at
// every position. Values are compared with ==, which is fine for the
// scalars the serialization supports.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Value != b.Value {
		return false
	}

	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
