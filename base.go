package phonefwd

// Base owns one forwarding trie and exposes Add, Remove, Get, Reverse and
// Count: a thin struct that owns a root node and forwards every operation
// into the node tree.
//
// A Base is not safe for concurrent use: every operation mutates or reads
// the tree directly with no internal locking.
type Base struct {
	root *node
}

// New returns an empty forwarding base: a single root node with no rules.
// The root always survives, even when empty, so later calls always have a
// node to descend from.
func New() *Base {
	return &Base{root: &node{}}
}

// lookup walks the trie along s and returns the node at that exact path, or
// nil if any prefix of s was never created.
func (b *Base) lookup(s string) *node {
	cur := b.root
	for i := 0; i < len(s); i++ {
		cur = cur.children[ToIndex(s[i])]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// walkCreate walks the trie along s, creating any missing nodes, and
// returns the node at that exact path.
func (b *Base) walkCreate(s string) *node {
	cur := b.root
	for i := 0; i < len(s); i++ {
		cur = cur.childOrCreate(ToIndex(s[i]))
	}
	return cur
}

// pruneEmptyAlong walks the trie along path and unlinks every trailing node
// that has become empty, cascading upward from the deepest empty node
// toward the root. The root itself is never unlinked, even if empty.
func (b *Base) pruneEmptyAlong(path string) {
	stack := make([]*node, len(path)+1)
	stack[0] = b.root
	cur := b.root
	for i := 0; i < len(path); i++ {
		c := cur.children[ToIndex(path[i])]
		if c == nil {
			return
		}
		stack[i+1] = c
		cur = c
	}
	for i := len(path); i > 0; i-- {
		if !stack[i].isEmpty() {
			return
		}
		stack[i-1].children[ToIndex(path[i-1])] = nil
	}
}

// Add installs the rule src -> dst, replacing any existing rule for src. It
// returns false and changes nothing when src or dst is not a PhoneNumber or
// when src equals dst byte-for-byte.
func (b *Base) Add(src, dst string) bool {
	if !IsNumber(src) || !IsNumber(dst) || src == dst {
		return false
	}

	nSrc := b.walkCreate(src)

	if nSrc.forwardTo != nil {
		oldDst := *nSrc.forwardTo
		if t := b.lookup(oldDst); t != nil {
			t.forwardFrom.DeleteExact(src)
			b.pruneEmptyAlong(oldDst)
		}
		nSrc.forwardTo = nil
	}

	d := dst
	nSrc.forwardTo = &d

	nDst := b.walkCreate(dst)
	nDst.forwardFrom.Append(src)

	return true
}

// Remove deletes every outgoing rule whose source has prefix, including
// prefix itself. Incoming rules (rules whose target has prefix as a
// prefix) are untouched. A non-PhoneNumber prefix is a no-op.
func (b *Base) Remove(prefix string) {
	if !IsNumber(prefix) {
		return
	}
	n := b.lookup(prefix)
	if n == nil {
		return
	}
	nowEmpty := b.removeSubtreeOutgoing(n, prefix)
	if !nowEmpty {
		return
	}
	parentPath := prefix[:len(prefix)-1]
	parent := b.lookup(parentPath)
	parent.children[ToIndex(prefix[len(prefix)-1])] = nil
	b.pruneEmptyAlong(parentPath)
}

// removeSubtreeOutgoing demolishes every outgoing forward in the subtree
// rooted at n (whose path is path), propagating the demolition into the
// inverse lists of whatever nodes those forwards pointed at. It returns
// whether n itself is now empty, so the caller can unlink it.
func (b *Base) removeSubtreeOutgoing(n *node, path string) bool {
	if n.forwardTo != nil {
		target := *n.forwardTo
		if t := b.lookup(target); t != nil {
			t.forwardFrom.DeleteWithPrefix(path)
			b.pruneEmptyAlong(target)
		}
		n.forwardTo = nil
	}

	for i := 0; i < numDigits; i++ {
		c := n.children[i]
		if c == nil {
			continue
		}
		if b.removeSubtreeOutgoing(c, path+string(rune(FromIndex(i)))) {
			n.children[i] = nil
		}
	}

	return n.isEmpty()
}

// Get returns the forwarding result for n: the rewrite obtained from the
// longest registered source prefix, or n unchanged if no rule applies. If n
// is not a PhoneNumber, the result is the empty-string sentinel list.
func (b *Base) Get(n string) *NumberList {
	if !IsNumber(n) {
		return emptyResult()
	}

	cur := b.root
	var matched *string
	matchedDepth := 0
	for i := 0; i < len(n); i++ {
		cur = cur.children[ToIndex(n[i])]
		if cur == nil {
			break
		}
		if cur.forwardTo != nil {
			matched = cur.forwardTo
			matchedDepth = i + 1
		}
	}

	if matched == nil {
		return &NumberList{items: []string{n}}
	}
	return &NumberList{items: []string{*matched + n[matchedDepth:]}}
}

// Reverse returns the sorted, deduplicated set of all numbers m such that
// some active rule A -> B and some suffix s make n = B·s and m = A·s. n is
// always included. If n is not a PhoneNumber, the result is the
// empty-string sentinel list.
func (b *Base) Reverse(n string) *NumberList {
	if !IsNumber(n) {
		return emptyResult()
	}

	result := &NumberList{}
	result.SortedInsert(n)

	cur := b.root
	for i := 0; i < len(n); i++ {
		cur = cur.children[ToIndex(n[i])]
		if cur == nil {
			break
		}
		suffix := n[i+1:]
		cur.forwardFrom.Iterate(func(a string) bool {
			result.SortedInsert(a + suffix)
			return true
		})
	}
	return result
}

// Count returns the number of strings of the given length, drawn from the
// digit alphabet restricted to set, whose Reverse image contains at least
// one element other than themselves. The result wraps modulo the machine
// word size, matching C's size_t wraparound. Invalid arguments (empty set,
// non-positive length, no recognized digit in set) yield 0.
func (b *Base) Count(set string, length int) uint {
	if set == "" || length <= 0 {
		return 0
	}

	var inSet [numDigits]bool
	sigma := 0
	for i := 0; i < len(set); i++ {
		if !IsDigit(set[i]) {
			continue
		}
		idx := ToIndex(set[i])
		if !inSet[idx] {
			inSet[idx] = true
			sigma++
		}
	}
	if sigma == 0 {
		return 0
	}

	var countAt func(n *node, depth int) uint
	countAt = func(n *node, depth int) uint {
		if n == nil || depth > length {
			return 0
		}
		if n.forwardFrom.Len() > 0 {
			return powMod(uint(sigma), uint(length-depth))
		}
		if depth >= length {
			return 0
		}
		var total uint
		for i := 0; i < numDigits; i++ {
			if inSet[i] {
				total += countAt(n.children[i], depth+1)
			}
		}
		return total
	}

	return countAt(b.root, 0)
}

// powMod computes base^exp by repeated squaring. Overflow wraps at machine
// word size (uint), matching the size_t arithmetic of the original
// definition.
func powMod(base, exp uint) uint {
	result := uint(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
