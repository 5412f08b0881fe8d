// Package suffixtree implements SuffixTree: a RadixTree whose insertion
// policy is Ukkonen's online, linear-time suffix construction, plus the
// matching-statistics query it makes possible.
package suffixtree

import (
	"github.com/rgranger/seqtrie/pkg/radix"
)

// SuffixTree indexes every suffix of every inserted word over characters of
// type C, attaching a caller-chosen item D to each branch a word's suffixes
// touch via a WordItemProcessor. N is the per-branch payload.
//
// Callers must append a sentinel character unique to each inserted word
// (see pkg/charset.SentinelFor) so every suffix terminates at its own
// explicit leaf; without one, a suffix that is a prefix of another would
// never become explicit and the matching-statistics invariants break down.
type SuffixTree[C comparable, D any, N any] struct {
	tree      *radix.RadixTree[C, N]
	processor radix.WordItemProcessor[C, D, N]
}

// New creates an empty SuffixTree. If processor is nil, NullProcessor is
// used.
func New[C comparable, D any, N any](processor radix.WordItemProcessor[C, D, N], newNodeData func() N) *SuffixTree[C, D, N] {
	if processor == nil {
		processor = radix.NullProcessor[C, D, N]{}
	}
	return &SuffixTree[C, D, N]{
		tree:      radix.New[C, N](newNodeData),
		processor: processor,
	}
}

// Clear drops every inserted word.
func (st *SuffixTree[C, D, N]) Clear() {
	st.tree.Clear()
}

// Tree exposes the underlying RadixTree for traversal helpers.
func (st *SuffixTree[C, D, N]) Tree() *radix.RadixTree[C, N] { return st.tree }

// AddWord inserts every suffix of word in O(|word|) total, using Ukkonen's
// algorithm: an active position and a height counter (characters matched
// so far along the active path) are carried across the whole word, reset
// to the root only when a suffix link cannot yet resolve. item is handed
// to the processor on every branch a suffix of word newly terminates at,
// or, when word (or a suffix of it) is already fully present from an
// earlier insertion, on every branch along the suffix-link chain from the
// deepest match up to the root, so repeated or overlapping insertions are
// still recorded everywhere they apply.
func (st *SuffixTree[C, D, N]) AddWord(word []C, item D) {
	if len(word) == 0 {
		panic(&radix.ArgumentError{Op: "AddWord", Msg: "word must not be empty"})
	}

	active := Root(st.tree)
	height := 0
	var previousNewLeaf *radix.Branch[C, N]

	for i := 0; i < len(word); i++ {
		c := word[i]
		isLast := i == len(word)-1
		var previousSplit *radix.Branch[C, N]

		for {
			if next, ok := active.TryAdvance(c); ok {
				if previousSplit != nil {
					previousSplit.SetSuffixLink(active.Branch)
				}
				active = next
				height++
				if isLast {
					st.registerAlongSuffixLinks(active, word, item, &previousNewLeaf)
				}
				break
			}

			leaf := radix.NewLeaf[C, N](word, i, len(word)-i, i-height, st.tree.NewNodeData())
			linked, linkOK := active.FollowLink()
			didSplit, internal := active.AddBranch(leaf, st.tree.NewNodeDataFn())
			if didSplit && linked.Branch == active.Branch {
				linked.Branch = internal
			}
			leaf.MarkTerminal()
			st.processor.OnWordAdd(word, item, leaf)

			leaf.SetSuffixLink(st.tree.Root())
			if previousNewLeaf != nil {
				previousNewLeaf.SetSuffixLink(leaf)
			}
			previousNewLeaf = leaf

			if didSplit {
				internal.SetSuffixLink(st.tree.Root())
				if previousSplit != nil {
					previousSplit.SetSuffixLink(internal)
				}
				previousSplit = internal
			} else if previousSplit != nil {
				previousSplit.SetSuffixLink(active.Branch)
				previousSplit = nil
			}

			if height == 0 {
				break
			}
			height--
			if !linkOK {
				active = Root(st.tree)
				height = 0
				break
			}
			active = linked
		}
	}
}

// registerAlongSuffixLinks walks from start toward the root following
// suffix links, invoking the processor on every branch visited before the
// root, and resolving the pending leaf from an earlier extension of this
// same word (if any) to the first branch reached.
func (st *SuffixTree[C, D, N]) registerAlongSuffixLinks(start Node[C, N], word []C, item D, previousNewLeaf **radix.Branch[C, N]) {
	node := start
	for {
		if node.Branch.IsRoot() {
			return
		}
		st.processor.OnWordAdd(word, item, node.Branch)
		if *previousNewLeaf != nil {
			(*previousNewLeaf).SetSuffixLink(node.Branch)
			*previousNewLeaf = nil
		}
		next, ok := node.FollowLink()
		if !ok {
			return
		}
		node = next
	}
}

// MSEntry is one entry of a GetMatchingStatistics result: the longest
// prefix of q[Index:] present anywhere in the tree, reported as its
// MatchLength plus the Node reached and that node's nearest explicit
// ancestor (Floor) and descendant-or-self (Ceil).
type MSEntry[C comparable, N any] struct {
	Index       int
	MatchLength int
	Node        Node[C, N]
	Floor       Node[C, N]
	Ceil        Node[C, N]
}

// GetMatchingStatistics computes, for every suffix q[i:] of q, the length
// of its longest prefix that occurs somewhere in the tree, in O(|q|) total
// using suffix links to avoid re-walking from the root at each i. A tree
// containing no branches yields all-zero entries; a query longer than any
// indexed suffix simply records shorter matches without error.
func (st *SuffixTree[C, D, N]) GetMatchingStatistics(q []C) []MSEntry[C, N] {
	n := len(q)
	entries := make([]MSEntry[C, N], n)

	node := Root(st.tree)
	matchLen := 0

	for i := 0; i < n; i++ {
		for i+matchLen < n {
			next, ok := node.TryAdvance(q[i+matchLen])
			if !ok {
				break
			}
			node = next
			matchLen++
		}

		entries[i] = MSEntry[C, N]{
			Index:       i,
			MatchLength: matchLen,
			Node:        node,
			Floor:       node.Floor(),
			Ceil:        node.Ceil(),
		}

		if node.Branch.IsRoot() {
			matchLen = 0
			continue
		}

		next, ok := node.FollowLink()
		if !ok {
			node = Root(st.tree)
			matchLen = 0
			continue
		}
		node = next
		if matchLen > 0 {
			matchLen--
		}
	}

	return entries
}
