// Package wordtree implements WordTree: a RadixTree whose insertion policy
// indexes whole sequences for O(|w|) prefix and whole-word lookup.
package wordtree

import (
	"github.com/rgranger/seqtrie/pkg/editdist"
	"github.com/rgranger/seqtrie/pkg/radix"
)

// WordTree indexes complete words over characters of type C, attaching a
// caller-chosen item D to each inserted word via a WordItemProcessor. N is
// the per-branch payload; pass radix.NullProcessor and struct{} for N if
// no payload bookkeeping is needed.
type WordTree[C comparable, D any, N any] struct {
	tree      *radix.RadixTree[C, N]
	processor radix.WordItemProcessor[C, D, N]
}

// New creates an empty WordTree. If processor is nil, NullProcessor is
// used. newNodeData initializes the payload of every branch the tree
// creates; pass nil if N is used as-is with its zero value.
func New[C comparable, D any, N any](processor radix.WordItemProcessor[C, D, N], newNodeData func() N) *WordTree[C, D, N] {
	if processor == nil {
		processor = radix.NullProcessor[C, D, N]{}
	}
	return &WordTree[C, D, N]{
		tree:      radix.New[C, N](newNodeData),
		processor: processor,
	}
}

// Clear drops every inserted word.
func (wt *WordTree[C, D, N]) Clear() {
	wt.tree.Clear()
}

// Tree exposes the underlying RadixTree for traversal helpers.
func (wt *WordTree[C, D, N]) Tree() *radix.RadixTree[C, N] { return wt.tree }

// AddWord inserts word (O(|word|)) and hands item to the processor at the
// branch the word terminates on (a leaf, or an internal branch when word is
// a prefix of another indexed word). Inserting the same word twice is not
// an error: the processor is invoked again on the existing branch, which is how
// a StorageProcessor accumulates multiple items per word.
func (wt *WordTree[C, D, N]) AddWord(word []C, item D) {
	if len(word) == 0 {
		panic(&radix.ArgumentError{Op: "AddWord", Msg: "word must not be empty"})
	}

	root := wt.tree.Root()
	cur := root
	idx := 0
	for {
		next, ok := cur.Child(word[idx])
		if !ok {
			leaf := radix.NewLeaf(word, idx, len(word)-idx, 0, wt.tree.NewNodeData())
			cur.AddChild(leaf)
			leaf.MarkTerminal()
			wt.processor.OnWordAdd(word, item, leaf)
			return
		}

		label := next.Label()
		m := 0
		for m < len(label) && idx+m < len(word) && label[m] == word[idx+m] {
			m++
		}

		if m < len(label) {
			upper := next.Split(m, wt.tree.NewNodeDataFn())
			idx += m
			if idx == len(word) {
				upper.MarkTerminal()
				wt.processor.OnWordAdd(word, item, upper)
				return
			}
			leaf := radix.NewLeaf(word, idx, len(word)-idx, 0, wt.tree.NewNodeData())
			upper.AddChild(leaf)
			leaf.MarkTerminal()
			wt.processor.OnWordAdd(word, item, leaf)
			return
		}

		idx += m
		if idx == len(word) {
			next.MarkTerminal()
			wt.processor.OnWordAdd(word, item, next)
			return
		}
		cur = next
	}
}

// ExactSearch returns a result only if word was indexed in full.
func (wt *WordTree[C, D, N]) ExactSearch(word []C) (radix.SearchResult[C, N], bool) {
	return wt.tree.ExactSearch(word)
}

// ExactPrefixSearch returns one result per indexed word beginning with
// prefix.
func (wt *WordTree[C, D, N]) ExactPrefixSearch(prefix []C) []radix.SearchResult[C, N] {
	return wt.tree.ExactPrefixSearch(prefix)
}

// ApproximateSearch returns every indexed word within maxDistance of word
// under distanceFn that ends at a leaf; a word that is a prefix of another
// indexed word ends at an internal branch and is not reported.
func (wt *WordTree[C, D, N]) ApproximateSearch(word []C, maxDistance float64, distanceFn editdist.DistanceFunc[C, float64]) []radix.SearchResult[C, N] {
	return wt.tree.ApproximateSearch(word, maxDistance, distanceFn)
}
