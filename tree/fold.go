package tree

// Fold returns a simplified copy of n:
//   - an operator with a single child is replaced by that child;
//   - a sequence, exclusive choice or parallel child of an operator of the
//     same kind is spliced into its parent, keeping child order.
//
// Loops are never spliced because their children are positional.
// The input tree is not modified.
func Fold(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		return n.Clone()
	}
	children := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		fc := Fold(c)
		if fc.Operator == n.Operator && associative(n.Operator) {
			children = append(children, fc.Children...)
			continue
		}
		children = append(children, fc)
	}
	if len(children) == 1 && n.Operator != OpLoop {
		return children[0]
	}

	return &Node{Operator: n.Operator, Children: children}
}

func associative(op Operator) bool {
	return op == OpSequence || op == OpXor || op == OpParallel
}
