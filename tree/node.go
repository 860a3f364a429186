package tree

import (
	"encoding/json"
	"sort"
	"strings"
)

// IsLeaf reports whether n is a leaf (tau included).
func (n *Node) IsLeaf() bool { return n.Operator == OpNone }

// IsTau reports whether n is the silent leaf.
func (n *Node) IsTau() bool { return n.Operator == OpNone && n.Label == "" }

// String renders n in the conventional textual notation, e.g.
// ->( 'A', X( 'B', tau ) ).
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.IsLeaf() {
		if n.IsTau() {
			sb.WriteString("tau")
			return
		}
		sb.WriteByte('\'')
		sb.WriteString(n.Label)
		sb.WriteByte('\'')
		return
	}
	sb.WriteString(n.Operator.String())
	sb.WriteString("( ")
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.write(sb)
	}
	sb.WriteString(" )")
}

// Equal reports whether n and other have the same structure: same operators,
// same labels and the same children in the same order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Operator != other.Operator || n.Label != other.Label || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	out := &Node{Operator: n.Operator, Label: n.Label}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}

	return out
}

// Activities returns the sorted distinct labels of the visible leaves under n.
func (n *Node) Activities() []string {
	seen := make(map[string]struct{})
	n.Walk(func(m *Node) {
		if m.IsLeaf() && !m.IsTau() {
			seen[m.Label] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}

// Walk calls fn for n and every descendant in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		d = max(d, c.Depth())
	}

	return d + 1
}

// Size returns the number of nodes under n, n included.
func (n *Node) Size() int {
	s := 0
	n.Walk(func(*Node) { s++ })

	return s
}

// jsonNode is the wire shape of a Node.
type jsonNode struct {
	Operator string  `json:"operator,omitempty"`
	Label    string  `json:"label,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON encodes leaves as {"label":"A"}, tau as {} and operators as
// {"operator":"->","children":[...]}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{Operator: n.Operator.String(), Label: n.Label, Children: n.Children})
}

// UnmarshalJSON decodes the shape written by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var j jsonNode
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	op := OpNone
	if j.Operator != "" {
		var err error
		if op, err = ParseOperator(j.Operator); err != nil {
			return err
		}
	}
	*n = Node{Operator: op, Label: j.Label, Children: j.Children}

	return nil
}
