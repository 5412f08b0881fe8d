package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgranger/seqtrie/pkg/editdist"
)

func insertWord(t *testing.T, tree *RadixTree[rune, struct{}], word string) *Branch[rune, struct{}] {
	t.Helper()
	root := tree.Root()
	cur := root
	runes := []rune(word)
	idx := 0
	for {
		next, ok := cur.Child(runes[idx])
		if !ok {
			leaf := NewLeaf[rune, struct{}](runes, idx, len(runes)-idx, 0, struct{}{})
			cur.AddChild(leaf)
			leaf.MarkTerminal()
			return leaf
		}
		label := next.Label()
		m := 0
		for m < len(label) && idx+m < len(runes) && label[m] == runes[idx+m] {
			m++
		}
		if m < len(label) {
			upper := next.Split(m, nil)
			idx += m
			if idx == len(runes) {
				upper.MarkTerminal()
				return upper
			}
			leaf := NewLeaf[rune, struct{}](runes, idx, len(runes)-idx, 0, struct{}{})
			upper.AddChild(leaf)
			leaf.MarkTerminal()
			return leaf
		}
		idx += m
		if idx == len(runes) {
			next.MarkTerminal()
			return next
		}
		cur = next
	}
}

func buildTree(t *testing.T, words ...string) *RadixTree[rune, struct{}] {
	t.Helper()
	tree := New[rune, struct{}](nil)
	for _, w := range words {
		insertWord(t, tree, w)
	}
	return tree
}

func TestExactSearch(t *testing.T) {
	tree := buildTree(t, "test", "testing", "tester")

	res, ok := tree.ExactSearch([]rune("test"))
	require.True(t, ok)
	assert.Equal(t, "test", string(res.Word()))

	_, ok = tree.ExactSearch([]rune("tes"))
	assert.False(t, ok)

	_, ok = tree.ExactSearch([]rune("testosterone"))
	assert.False(t, ok)
}

func TestExactPrefixSearch(t *testing.T) {
	tree := buildTree(t, "test", "testing", "tester", "team")

	results := tree.ExactPrefixSearch([]rune("test"))
	words := make(map[string]bool)
	for _, r := range results {
		words[string(r.Word())] = true
	}
	assert.Equal(t, map[string]bool{"test": true, "testing": true, "tester": true}, words)

	assert.Empty(t, tree.ExactPrefixSearch([]rune("xyz")))
	assert.Empty(t, tree.ExactPrefixSearch([]rune("")))
}

func TestApproximateSearchKittenSitting(t *testing.T) {
	tree := buildTree(t, "sitting", "sitten", "bitten", "mitten")

	results := tree.ApproximateSearch([]rune("kitten"), 3, editdist.Standard[rune, float64]())
	byWord := make(map[string]float64)
	for _, r := range results {
		byWord[string(r.Word())] = r.EditDistance
	}
	assert.Equal(t, float64(3), byWord["sitting"])
	assert.Equal(t, float64(1), byWord["sitten"])
	assert.Equal(t, float64(1), byWord["bitten"])
	assert.Equal(t, float64(1), byWord["mitten"])
}

func TestApproximateSearchRespectsBound(t *testing.T) {
	tree := buildTree(t, "sitting")
	results := tree.ApproximateSearch([]rune("kitten"), 1, editdist.Standard[rune, float64]())
	assert.Empty(t, results)
}

func TestSplitInvariants(t *testing.T) {
	tree := buildTree(t, "test", "testing", "tester")
	res, ok := tree.ExactSearch([]rune("test"))
	require.True(t, ok)
	assert.False(t, res.Branch.IsLeaf())
	assert.Equal(t, "test", string(res.Branch.Word()))
}

func TestAddChildDuplicateKeyPanics(t *testing.T) {
	tree := New[rune, struct{}](nil)
	root := tree.Root()
	a := NewLeaf[rune, struct{}]([]rune("ab"), 0, 2, 0, struct{}{})
	b := NewLeaf[rune, struct{}]([]rune("ac"), 0, 2, 0, struct{}{})
	root.AddChild(a)
	assert.Panics(t, func() { root.AddChild(b) })
}

func TestSplitBoundaryPanics(t *testing.T) {
	leaf := NewLeaf[rune, struct{}]([]rune("abc"), 0, 3, 0, struct{}{})
	tree := New[rune, struct{}](nil)
	tree.Root().AddChild(leaf)
	assert.Panics(t, func() { leaf.Split(0, nil) })
	assert.Panics(t, func() { leaf.Split(3, nil) })
}

func TestClear(t *testing.T) {
	tree := buildTree(t, "hello")
	tree.Clear()
	_, ok := tree.ExactSearch([]rune("hello"))
	assert.False(t, ok)
	assert.True(t, tree.Root().IsLeaf())
}

func TestDFSVisitSkipsPrunedSubtree(t *testing.T) {
	tree := buildTree(t, "aaa", "aab", "b")
	var visited []string
	DFSVisit(tree.Root(), func(b *Branch[rune, struct{}]) bool {
		if b.IsRoot() {
			return true
		}
		c, _ := b.FirstChar()
		visited = append(visited, string(c))
		return c != 'a' // false under the "aa" branch prunes its children
	})
	assert.ElementsMatch(t, []string{"a", "b"}, visited)
}

func TestPostOrderProcess(t *testing.T) {
	tree := buildTree(t, "ab", "ac")
	counts := make(map[*Branch[rune, struct{}]]int)
	PostOrderProcess[rune, struct{}, int](tree.Root(), func(b *Branch[rune, struct{}], childValues []int) int {
		sum := 1
		for _, v := range childValues {
			sum += v
		}
		counts[b] = sum
		return sum
	}, nil)
	assert.Equal(t, 4, counts[tree.Root()]) // root, "a", "b", "c"
}
