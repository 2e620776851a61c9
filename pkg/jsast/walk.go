package jsast

// WalkStatus controls Walk traversal.
type WalkStatus int

const (
	// WalkContinue visits the node's children next.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren skips the children of the current node.
	WalkSkipChildren
	// WalkStop ends the traversal.
	WalkStop
)

// WalkFunc is called for each node visited by Walk.
type WalkFunc func(n *Node) WalkStatus

// Walk performs a pre-order traversal starting at from.
// It returns false if the walk was stopped.
func (t *Tree) Walk(from *Node, fn WalkFunc) bool {
	if from == nil {
		return true
	}

	switch fn(from) {
	case WalkStop:
		return false
	case WalkSkipChildren:
		return true
	case WalkContinue:
	}

	for _, id := range from.Children {
		if !t.Walk(&t.Nodes[id], fn) {
			return false
		}
	}
	return true
}

// FindByType returns every node of the given type in document order.
func (t *Tree) FindByType(typ string) []*Node {
	var out []*Node
	for i := range t.Nodes {
		if t.Nodes[i].Type == typ {
			out = append(out, &t.Nodes[i])
		}
	}
	return out
}
