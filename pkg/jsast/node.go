package jsast

// NodeID addresses a node within its Tree.
type NodeID int32

// NoNode is the parent of the root node.
const NoNode NodeID = -1

// Node is a syntax-tree node.
//
// Nodes live in a Tree arena and refer to each other by NodeID, so the
// parent back-reference never owns anything. IDs are assigned in
// document pre-order: for any two nodes, the lower ID starts first.
type Node struct {
	// ID is the index of the node in its Tree.
	ID NodeID

	// Type is the ESTree type name where one exists, otherwise the
	// grammar's own kind name.
	Type string

	// Range is the byte span of the node.
	Range SourceRange

	// Loc is the line/column span of the node.
	Loc Location

	// Parent is the enclosing node, or NoNode for the root.
	Parent NodeID

	// Children are the named child nodes in source order.
	Children []NodeID

	// Field is the role of this node within its parent ("body",
	// "declarator", ...). Empty when the grammar gives none.
	Field string

	// Attrs carries small per-type facts such as the declaration kind
	// of a VariableDeclaration.
	Attrs map[string]string
}

// StartPosition implements Locator.
func (n *Node) StartPosition() Position {
	return n.Loc.Start
}

// Attr returns the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasParent reports whether the node has a parent.
func (n *Node) HasParent() bool {
	return n.Parent != NoNode
}

// Tree is an arena of nodes. The root is always at index 0.
type Tree struct {
	Nodes []Node
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if len(t.Nodes) == 0 {
		return nil
	}
	return &t.Nodes[0]
}

// Node returns the node with the given ID, or nil if out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.Nodes) {
		return nil
	}
	return &t.Nodes[id]
}

// Parent returns the parent of n, or nil for the root.
func (t *Tree) Parent(n *Node) *Node {
	if n == nil {
		return nil
	}
	return t.Node(n.Parent)
}

// Children returns the child nodes of n.
func (t *Tree) Children(n *Node) []*Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.Children))
	for i, id := range n.Children {
		out[i] = &t.Nodes[id]
	}
	return out
}

// ChildByField returns the first child of n in the given field.
func (t *Tree) ChildByField(n *Node, field string) *Node {
	if n == nil {
		return nil
	}
	for _, id := range n.Children {
		if t.Nodes[id].Field == field {
			return &t.Nodes[id]
		}
	}
	return nil
}

// ChildrenOfType returns the children of n whose type matches.
func (t *Tree) ChildrenOfType(n *Node, typ string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, id := range n.Children {
		if t.Nodes[id].Type == typ {
			out = append(out, &t.Nodes[id])
		}
	}
	return out
}

// PrevSibling returns the sibling before n, or nil.
func (t *Tree) PrevSibling(n *Node) *Node {
	return t.sibling(n, -1)
}

// NextSibling returns the sibling after n, or nil.
func (t *Tree) NextSibling(n *Node) *Node {
	return t.sibling(n, 1)
}

func (t *Tree) sibling(n *Node, delta int) *Node {
	parent := t.Parent(n)
	if parent == nil {
		return nil
	}
	for i, id := range parent.Children {
		if id != n.ID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(parent.Children) {
			return nil
		}
		return &t.Nodes[parent.Children[j]]
	}
	return nil
}

// Ancestors returns the chain of parents of n, nearest first.
func (t *Tree) Ancestors(n *Node) []*Node {
	var out []*Node
	for p := t.Parent(n); p != nil; p = t.Parent(p) {
		out = append(out, p)
	}
	return out
}

// ClosestAncestor returns the nearest ancestor of n with one of the
// given types, or nil.
func (t *Tree) ClosestAncestor(n *Node, types ...string) *Node {
	for p := t.Parent(n); p != nil; p = t.Parent(p) {
		for _, typ := range types {
			if p.Type == typ {
				return p
			}
		}
	}
	return nil
}

// Builder appends nodes to a Tree in pre-order.
type Builder struct {
	tree  *Tree
	stack []NodeID
}

// NewBuilder returns a Builder for an empty tree.
func NewBuilder(capacity int) *Builder {
	return &Builder{tree: &Tree{Nodes: make([]Node, 0, capacity)}}
}

// Open appends a node as a child of the currently open node and makes
// it the current node. Children must be opened in source order.
func (b *Builder) Open(typ, field string, rng SourceRange, loc Location) NodeID {
	id := NodeID(len(b.tree.Nodes))
	parent := NoNode
	if len(b.stack) > 0 {
		parent = b.stack[len(b.stack)-1]
		b.tree.Nodes[parent].Children = append(b.tree.Nodes[parent].Children, id)
	}

	b.tree.Nodes = append(b.tree.Nodes, Node{
		ID:     id,
		Type:   typ,
		Range:  rng,
		Loc:    loc,
		Parent: parent,
		Field:  field,
	})
	b.stack = append(b.stack, id)
	return id
}

// SetAttr sets an attribute on the currently open node.
func (b *Builder) SetAttr(name, value string) {
	if len(b.stack) == 0 {
		return
	}
	n := &b.tree.Nodes[b.stack[len(b.stack)-1]]
	if n.Attrs == nil {
		n.Attrs = make(map[string]string, 1)
	}
	n.Attrs[name] = value
}

// Close closes the current node.
func (b *Builder) Close() {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Tree returns the built tree.
func (b *Builder) Tree() *Tree {
	return b.tree
}
