// Package tree defines the process tree produced by discovery: a closed set of
// operator nodes over activity leaves.
//
// A Node is either a leaf (Operator == OpNone) carrying an activity label, the
// silent leaf tau (OpNone with an empty label, standing for the empty trace),
// or an operator with an ordered list of children. Sequence and loop children
// are order-sensitive; exclusive-choice and parallel children are not, but are
// still emitted in a fixed order so trees compare structurally.
//
// For a loop node the first child is the body and the remaining children are
// the redo parts.
package tree

import (
	"errors"
)

// ErrUnknownOperator indicates an operator symbol that does not name an Operator.
var ErrUnknownOperator = errors.New("tree: unknown operator")

// Operator tags the kind of a Node.
type Operator int

const (
	// OpNone marks a leaf.
	OpNone Operator = iota
	// OpXor is the exclusive choice: exactly one child is executed.
	OpXor
	// OpSequence executes the children one after another, in order.
	OpSequence
	// OpParallel interleaves the children freely.
	OpParallel
	// OpLoop executes the body, then any number of (redo, body) rounds.
	OpLoop
)

// operatorSymbols follows the usual process-tree notation.
var operatorSymbols = [...]string{
	OpNone:     "",
	OpXor:      "X",
	OpSequence: "->",
	OpParallel: "+",
	OpLoop:     "*",
}

// String returns the operator symbol ("X", "->", "+", "*"); leaves render as "".
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorSymbols) {
		return "?"
	}

	return operatorSymbols[o]
}

// ParseOperator maps a symbol produced by String back to its Operator.
func ParseOperator(s string) (Operator, error) {
	for i, sym := range operatorSymbols {
		if i != int(OpNone) && sym == s {
			return Operator(i), nil
		}
	}

	return OpNone, ErrUnknownOperator
}

// Node is one vertex of a process tree. Children are owned by their parent;
// no node is shared between two parents.
type Node struct {
	// Operator is OpNone for leaves.
	Operator Operator

	// Label is the activity of a leaf; "" for tau and for operator nodes.
	Label string

	// Children are the ordered subtrees of an operator node.
	Children []*Node
}

// Leaf returns a leaf for activity label.
func Leaf(label string) *Node {
	return &Node{Label: label}
}

// Tau returns the silent leaf standing for the empty trace.
func Tau() *Node {
	return &Node{}
}

// NewOperator returns an operator node over children, in the given order.
func NewOperator(op Operator, children ...*Node) *Node {
	return &Node{Operator: op, Children: children}
}
