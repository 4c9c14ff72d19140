package phonefwd

import "sort"

// NumberList is a finite ordered sequence of phone numbers, as returned by
// Base.Get and Base.Reverse and used internally as the unordered inverse
// link list stored at each node.
//
// Two flavors share this type, distinguished only by which methods the
// caller uses: an inverse-link list is built with Append/DeleteExact/
// DeleteWithPrefix and stays unordered, while a query result is built with
// SortedInsert and stays strictly increasing.
type NumberList struct {
	items []string
}

// emptyResult is the sentinel NumberList returned by Get and Reverse when
// the input is not a valid PhoneNumber: a single element that is itself the
// empty string, distinguishable from any real result because no valid
// PhoneNumber is empty.
func emptyResult() *NumberList {
	return &NumberList{items: []string{""}}
}

// Len returns the number of strings in the list.
func (l *NumberList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the string at idx, or "", false if idx is out of range. This
// also reports false at index 0 for the empty-string sentinel, so callers
// can't mistake the sentinel for a real empty result.
func (l *NumberList) At(idx int) (string, bool) {
	if l == nil || idx < 0 || idx >= len(l.items) {
		return "", false
	}
	if idx == 0 && len(l.items) == 1 && l.items[0] == "" {
		return "", false
	}
	return l.items[idx], true
}

// Append adds s to the list without ordering it, used for the unordered
// inverse-link lists at a trie node. The caller guarantees s is not already
// present.
func (l *NumberList) Append(s string) {
	l.items = append(l.items, s)
}

// DeleteExact removes the unique element equal to s, if present. No-op
// otherwise.
func (l *NumberList) DeleteExact(s string) {
	for i, v := range l.items {
		if v == s {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// DeleteWithPrefix removes every element that starts with p.
func (l *NumberList) DeleteWithPrefix(p string) {
	kept := l.items[:0]
	for _, v := range l.items {
		if len(v) < len(p) || v[:len(p)] != p {
			kept = append(kept, v)
		}
	}
	l.items = kept
}

// Iterate calls fn for every element, in the list's internal order. Stops
// early if fn returns false.
func (l *NumberList) Iterate(fn func(string) bool) {
	if l == nil {
		return
	}
	for _, v := range l.items {
		if !fn(v) {
			return
		}
	}
}

// SortedInsert inserts s into a list kept in strictly increasing
// PhoneNumber order, discarding s if an equal element is already present.
// This is how Base.Reverse accumulates its result.
func (l *NumberList) SortedInsert(s string) {
	i := sort.Search(len(l.items), func(i int) bool { return l.items[i] >= s })
	if i < len(l.items) && l.items[i] == s {
		return
	}
	l.items = append(l.items, "")
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = s
}
