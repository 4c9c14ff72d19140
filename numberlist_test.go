package phonefwd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func itemsOf(l *NumberList) []string {
	if l == nil {
		return nil
	}
	return l.items
}

func TestNumberListSortedInsertOrdersAndDedups(t *testing.T) {
	l := &NumberList{}
	l.SortedInsert("45")
	l.SortedInsert("123")
	l.SortedInsert("678")
	l.SortedInsert("123")

	want := []string{"123", "45", "678"}
	if diff := cmp.Diff(want, itemsOf(l)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestNumberListSortedInsertUsesByteOrder(t *testing.T) {
	l := &NumberList{}
	l.SortedInsert(";")
	l.SortedInsert(":")
	l.SortedInsert("9")
	l.SortedInsert("0")

	want := []string{"0", "9", ":", ";"}
	assert.Equal(t, want, itemsOf(l))
}

func TestNumberListAppendAndDeleteExact(t *testing.T) {
	l := &NumberList{}
	l.Append("1")
	l.Append("2")
	l.Append("3")
	l.DeleteExact("2")
	assert.Equal(t, 2, l.Len())

	var seen []string
	l.Iterate(func(s string) bool {
		seen = append(seen, s)
		return true
	})
	assert.ElementsMatch(t, []string{"1", "3"}, seen)

	l.DeleteExact("missing")
	assert.Equal(t, 2, l.Len())
}

func TestNumberListDeleteWithPrefix(t *testing.T) {
	l := &NumberList{}
	l.Append("123")
	l.Append("1245")
	l.Append("99")
	l.DeleteWithPrefix("12")

	var seen []string
	l.Iterate(func(s string) bool {
		seen = append(seen, s)
		return true
	})
	assert.ElementsMatch(t, []string{"99"}, seen)
}

func TestNumberListAtAndSentinel(t *testing.T) {
	l := emptyResult()
	_, ok := l.At(0)
	assert.False(t, ok)

	l2 := &NumberList{items: []string{"45"}}
	v, ok := l2.At(0)
	assert.True(t, ok)
	assert.Equal(t, "45", v)

	_, ok = l2.At(1)
	assert.False(t, ok)
}
