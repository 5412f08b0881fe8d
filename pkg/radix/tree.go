// Package radix implements the generic compressed-trie substrate shared by
// WordTree, SuffixTree and KernelSuffixTree: branches, splitting,
// traversals, and exact/prefix/approximate search. C is the opaque
// character type (needs only equality and hashing, so any comparable
// works); N is the per-branch payload, threaded through untouched by this
// package except where a caller-supplied constructor initializes it.
package radix

import (
	"github.com/rgranger/seqtrie/pkg/editdist"
)

// RadixTree is the base tree: a root Branch plus the operations that walk,
// split, and search it. It holds no opinion about how a word is broken
// into branches; WordTree and SuffixTree each implement their own
// insertion policy directly against Branch.Split/AddChild and the walk
// helper LongestCommonPrefix exposes.
type RadixTree[C comparable, N any] struct {
	root        *Branch[C, N]
	newNodeData func() N
}

// New creates an empty tree. newNodeData, if non-nil, is invoked to
// initialize the payload of every branch the tree creates (via Split or by
// a caller constructing a leaf directly with NewNodeData).
func New[C comparable, N any](newNodeData func() N) *RadixTree[C, N] {
	t := &RadixTree[C, N]{newNodeData: newNodeData}
	t.Clear()
	return t
}

// Clear installs a fresh root whose suffix link is itself, dropping every
// other branch.
func (t *RadixTree[C, N]) Clear() {
	t.root = newRoot[C, N]()
}

// Root returns the tree's root branch.
func (t *RadixTree[C, N]) Root() *Branch[C, N] { return t.root }

// NewNodeData invokes the tree's node-data constructor, or returns the
// zero value of N if none was supplied.
func (t *RadixTree[C, N]) NewNodeData() N {
	if t.newNodeData == nil {
		var zero N
		return zero
	}
	return t.newNodeData()
}

// NewNodeDataFn exposes the constructor itself, so Branch.Split can be
// called directly by packages (SuffixTree) that manipulate branches
// without going through a RadixTree method.
func (t *RadixTree[C, N]) NewNodeDataFn() func() N { return t.newNodeData }

// walk descends from fromBranch (the root, if nil), matching word[fromIndex:]
// character by character, and reports both the deepest SearchResult and how
// many characters of word were consumed.
func walk[C comparable, N any](root *Branch[C, N], word []C, fromIndex int, fromBranch *Branch[C, N]) (SearchResult[C, N], int) {
	if fromIndex < 0 {
		invalidArg("LongestCommonPrefix", "fromIndex must be >= 0")
	}
	cur := fromBranch
	if cur == nil {
		cur = root
	}
	idx := fromIndex
	for idx < len(word) {
		next, ok := cur.Child(word[idx])
		if !ok {
			return SearchResult[C, N]{Branch: cur, MatchEndOffset: cur.length}, idx
		}
		label := next.Label()
		m := 0
		for m < len(label) && idx+m < len(word) && label[m] == word[idx+m] {
			m++
		}
		idx += m
		if m < len(label) {
			return SearchResult[C, N]{Branch: next, MatchEndOffset: m}, idx
		}
		cur = next
	}
	return SearchResult[C, N]{Branch: cur, MatchEndOffset: cur.length}, idx
}

// LongestCommonPrefix walks downward from fromBranch (root if nil),
// matching word[fromIndex:] against the tree, and returns the deepest
// match position reached.
func (t *RadixTree[C, N]) LongestCommonPrefix(word []C, fromIndex int, fromBranch *Branch[C, N]) SearchResult[C, N] {
	res, _ := walk(t.root, word, fromIndex, fromBranch)
	return res
}

// ExactSearch returns a result only if word was fully inserted as a word
// of its own: the match must consume word entirely, land exactly at a
// branch's own explicit position (not partway through a label), and that
// branch must be marked terminal. A word that is merely a prefix of a
// longer inserted word, or that stops at an internal split created to
// hold unrelated continuations, is not a hit.
func (t *RadixTree[C, N]) ExactSearch(word []C) (SearchResult[C, N], bool) {
	res, consumed := walk(t.root, word, 0, t.root)
	if consumed != len(word) || res.MatchEndOffset != res.Branch.Length() || !res.Branch.IsTerminal() {
		return SearchResult[C, N]{}, false
	}
	return res, true
}

// ExactPrefixSearch finds the branch where word ends, then returns one
// result per terminal branch in its DFS-reachable subtree (itself
// included), skipping internal branches that hold no word of their own.
// It is empty if word diverges before being fully consumed, consumes
// everything without leaving the root (an empty word matches only the
// root, which this method never reports as a result), or lands partway
// through a label with no terminal branch beneath it.
func (t *RadixTree[C, N]) ExactPrefixSearch(word []C) []SearchResult[C, N] {
	res, consumed := walk(t.root, word, 0, t.root)
	if consumed != len(word) || res.Branch.IsRoot() {
		return nil
	}
	var results []SearchResult[C, N]
	DFSVisit(res.Branch, func(b *Branch[C, N]) bool {
		if b.IsTerminal() {
			results = append(results, SearchResult[C, N]{Branch: b, MatchEndOffset: b.length})
		}
		return true
	})
	return results
}

// ApproximateSearch walks the tree depth-first, carrying a banded
// edit-distance column, and collects every indexed whole word within
// maxDistance of word under distanceFn. A match is only ever reported at a
// terminal leaf (a branch with no children) once the full label has been
// compared.
func (t *RadixTree[C, N]) ApproximateSearch(word []C, maxDistance float64, distanceFn editdist.DistanceFunc[C, float64]) []SearchResult[C, N] {
	initial := editdist.NewInitialColumn[float64](len(word), maxDistance, -1)
	if initial == nil {
		return nil
	}

	var results []SearchResult[C, N]

	var recurse func(branch *Branch[C, N], offset, columnIndex int, col *editdist.Column[float64])
	recurse = func(branch *Branch[C, N], offset, columnIndex int, col *editdist.Column[float64]) {
		if offset == branch.length {
			for _, child := range branch.children {
				recurse(child, 0, columnIndex, col)
			}
			return
		}

		ch := branch.source[branch.start+offset]
		next := editdist.CreateNext(word, maxDistance, columnIndex, -1, distanceFn, col, ch, nil)
		if next == nil {
			return // prune: no cell in the next column is within bound
		}

		if offset == branch.length-1 && branch.IsLeaf() {
			if d := next.Get(len(word) - 1); d <= maxDistance {
				results = append(results, SearchResult[C, N]{Branch: branch, MatchEndOffset: branch.length, EditDistance: d})
			}
		}

		recurse(branch, offset+1, columnIndex+1, next)
	}

	recurse(t.root, 0, -1, initial)
	return results
}

// DFSVisit walks branch and its descendants pre-order, calling visit on
// each. If visit returns false, that branch's children are skipped but
// its siblings are still visited.
func DFSVisit[C comparable, N any](branch *Branch[C, N], visit func(*Branch[C, N]) bool) {
	if !visit(branch) {
		return
	}
	for _, child := range branch.children {
		DFSVisit(child, visit)
	}
}

// PostOrderProcess computes a value per branch, children before parent.
// combine receives the branch and its children's already-computed values;
// process, if non-nil, is an observer called with each branch's computed
// value (KernelSuffixTree uses it to stash the value into node data).
func PostOrderProcess[C comparable, N any, T any](
	branch *Branch[C, N],
	combine func(b *Branch[C, N], childValues []T) T,
	process func(b *Branch[C, N], value T),
) T {
	childValues := make([]T, 0, len(branch.children))
	for _, child := range branch.children {
		childValues = append(childValues, PostOrderProcess(child, combine, process))
	}
	value := combine(branch, childValues)
	if process != nil {
		process(branch, value)
	}
	return value
}

// PreOrderProcess computes a value per branch, parent before children.
// derive receives the branch and its parent's already-computed value (the
// root receives rootValue); process, if non-nil, observes each result.
func PreOrderProcess[C comparable, N any, T any](
	branch *Branch[C, N],
	parentValue T,
	derive func(b *Branch[C, N], parentValue T) T,
	process func(b *Branch[C, N], value T),
) {
	value := derive(branch, parentValue)
	if process != nil {
		process(branch, value)
	}
	for _, child := range branch.children {
		PreOrderProcess(child, value, derive, process)
	}
}
