package phonefwd

// node is one vertex of the forwarding trie: twelve child slots (one per
// digit of the alphabet), an optional outgoing forward target, and the
// unordered list of source prefixes that forward into this node.
//
// A node is owned outright by its parent: it is mutated in place, and
// there is exactly one path to it from the root. Nodes are never shared or
// aliased between two positions in the trie.
type node struct {
	children    [numDigits]*node
	forwardTo   *string
	forwardFrom NumberList
}

// isEmpty reports whether n holds no active role: no children, no outgoing
// forward, and no inverse entries.
func (n *node) isEmpty() bool {
	if n.forwardTo != nil || n.forwardFrom.Len() > 0 {
		return false
	}
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// childOrCreate returns the existing child for digit index i, creating it if
// absent.
func (n *node) childOrCreate(i int) *node {
	if n.children[i] == nil {
		n.children[i] = &node{}
	}
	return n.children[i]
}
