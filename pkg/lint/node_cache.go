package lint

import (
	"slices"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// NodeCache holds the nodes and tokens of a file grouped by type.
//
// The cache walks the tree and the token array once, on first use, so that
// a run of many rules asking for the same node types costs O(nodes) instead
// of O(rules × nodes).
//
// # Do Not Mutate Returned Slices
//
// The slices returned by NodeCache are shared by every rule checking the
// file. Copy before sorting or filtering.
//
// # Thread Safety
//
// NodeCache is not thread-safe. A File and its cache belong to one check.
type NodeCache struct {
	nodes  map[string][]*jsast.Node
	tokens map[string][]int

	nodesBuilt  bool
	tokensBuilt bool
}

// Initial capacity for the per-type maps; JavaScript programs rarely use
// more distinct node kinds than this.
const initCapNodeTypes = 64

func newNodeCache() *NodeCache {
	return &NodeCache{}
}

// buildNodes groups every node of tree by Type in document order.
func (nc *NodeCache) buildNodes(tree *jsast.Tree) {
	if nc.nodesBuilt {
		return
	}
	nc.nodes = make(map[string][]*jsast.Node, initCapNodeTypes)
	if tree != nil {
		for i := range tree.Nodes {
			n := &tree.Nodes[i]
			nc.nodes[n.Type] = append(nc.nodes[n.Type], n)
		}
	}
	nc.nodesBuilt = true
}

// buildTokens groups token indices by token Type in document order.
func (nc *NodeCache) buildTokens(tokens []jsast.Token) {
	if nc.tokensBuilt {
		return
	}
	nc.tokens = make(map[string][]int, len(jsast.TokenTypes))
	for i := range tokens {
		typ := tokens[i].Type
		nc.tokens[typ] = append(nc.tokens[typ], i)
	}
	nc.tokensBuilt = true
}

// invalidateTokens drops the token grouping after the token array changed.
func (nc *NodeCache) invalidateTokens() {
	nc.tokens = nil
	nc.tokensBuilt = false
}

// NodesOfType returns the nodes of one type in document order.
// Do not mutate the returned slice.
func (nc *NodeCache) NodesOfType(typ string) []*jsast.Node {
	return nc.nodes[typ]
}

// NodesOfTypes returns the nodes of any of the given types in document
// order. With a single type the cached slice itself is returned.
func (nc *NodeCache) NodesOfTypes(types ...string) []*jsast.Node {
	switch len(types) {
	case 0:
		return nil
	case 1:
		return nc.nodes[types[0]]
	}

	var total int
	for _, typ := range uniqueTypes(types) {
		total += len(nc.nodes[typ])
	}
	merged := make([]*jsast.Node, 0, total)
	for _, typ := range uniqueTypes(types) {
		merged = append(merged, nc.nodes[typ]...)
	}
	// IDs are assigned in pre-order, so ID order is document order.
	slices.SortFunc(merged, func(a, b *jsast.Node) int {
		return int(a.ID) - int(b.ID)
	})
	return merged
}

// TokenIndicesOfTypes returns the indices of tokens of any of the given
// types in document order.
func (nc *NodeCache) TokenIndicesOfTypes(types ...string) []int {
	switch len(types) {
	case 0:
		return nil
	case 1:
		return nc.tokens[types[0]]
	}

	var merged []int
	for _, typ := range uniqueTypes(types) {
		merged = append(merged, nc.tokens[typ]...)
	}
	slices.Sort(merged)
	return merged
}

func uniqueTypes(types []string) []string {
	if len(types) < 2 {
		return types
	}
	out := make([]string, 0, len(types))
	for _, typ := range types {
		if !slices.Contains(out, typ) {
			out = append(out, typ)
		}
	}
	return out
}
