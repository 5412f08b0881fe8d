// Package kernel implements KernelSuffixTree: a SuffixTree preprocessed to
// answer all-substrings kernel queries (Vishwanathan & Smola, 2004) in
// O(|q|) after O(m) preprocessing.
package kernel

import (
	"sync"

	"github.com/rgranger/seqtrie/pkg/radix"
	"github.com/rgranger/seqtrie/pkg/suffixtree"
)

// KernelSuffixTree evaluates
//
//	K(q, T) = Σ_{s∈T} weight(s) · Σ_{u substring of q} Σ_{u occurs in s} w(|u|)
//
// over a set T of inserted sequences, using weightFn to realize w via its
// telescoped-sum contract. D must expose a per-sequence Weight().
type KernelSuffixTree[C comparable, D Weighted] struct {
	tree     *suffixtree.SuffixTree[C, D, *NodeData]
	weightFn WeightFunction

	mu           sync.Mutex
	preprocessed bool
}

// New creates an empty KernelSuffixTree scored by weightFn.
func New[C comparable, D Weighted](weightFn WeightFunction) *KernelSuffixTree[C, D] {
	if weightFn == nil {
		invalidArg("New", "weightFn must not be nil")
	}
	return &KernelSuffixTree[C, D]{
		tree:     suffixtree.New[C, D, *NodeData](Processor[C, D]{}, func() *NodeData { return &NodeData{} }),
		weightFn: weightFn,
	}
}

// Tree exposes the underlying SuffixTree for traversal helpers.
func (k *KernelSuffixTree[C, D]) Tree() *suffixtree.SuffixTree[C, D, *NodeData] { return k.tree }

// AddWord inserts word, weighted by item.Weight() at every suffix leaf it
// touches, and clears the preprocessing guard.
func (k *KernelSuffixTree[C, D]) AddWord(word []C, item D) {
	k.tree.AddWord(word, item)
	k.mu.Lock()
	k.preprocessed = false
	k.mu.Unlock()
}

// Clear drops every inserted word and clears the preprocessing guard.
func (k *KernelSuffixTree[C, D]) Clear() {
	k.tree.Clear()
	k.mu.Lock()
	k.preprocessed = false
	k.mu.Unlock()
}

// Preprocess runs the post-order descendant-leaves-sum pass followed by
// the pre-order weight-accumulation pass. Idempotent: a second call before
// any mutation is a no-op. Guarded by a mutex so two concurrent callers
// never run the passes at once; the library otherwise assumes no
// concurrent mutation during preprocessing or search.
func (k *KernelSuffixTree[C, D]) Preprocess() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.preprocessed {
		return
	}
	logger.Debug("preprocessing invalidated, recomputing")

	root := k.tree.Tree().Root()

	radix.PostOrderProcess[C, *NodeData, float64](
		root,
		func(b *radix.Branch[C, *NodeData], childValues []float64) float64 {
			if b.IsLeaf() {
				return b.NodeData().DescendantLeavesSum()
			}
			var sum float64
			for _, v := range childValues {
				sum += v
			}
			return sum
		},
		func(b *radix.Branch[C, *NodeData], sum float64) {
			startLen := b.Start() - b.WordStart() + 1
			endLen := startLen + b.Length()
			b.NodeData().SetDescendantLeavesSum(sum)
			b.NodeData().SetWeight(sum * k.weightFn.ComputeWeight(startLen, endLen))
		},
	)

	radix.PreOrderProcess[C, *NodeData, float64](
		root,
		0,
		func(b *radix.Branch[C, *NodeData], parentValue float64) float64 {
			return parentValue + b.NodeData().Weight()
		},
		func(b *radix.Branch[C, *NodeData], value float64) {
			b.NodeData().SetWeight(value)
		},
	)

	k.preprocessed = true
	logger.Debug("preprocessing complete")
}

// ComputeKernel evaluates K(q, T) in O(|q|), running Preprocess first if
// the tree has been mutated since the last call.
func (k *KernelSuffixTree[C, D]) ComputeKernel(q []C) float64 {
	k.Preprocess()

	entries := k.tree.GetMatchingStatistics(q)
	var sum float64
	for _, e := range entries {
		if e.MatchLength <= 0 {
			continue
		}
		endLen := e.MatchLength + 1
		startLen := endLen - e.Node.Offset
		sum += e.Floor.Branch.NodeData().Weight() +
			e.Ceil.Branch.NodeData().DescendantLeavesSum()*k.weightFn.ComputeWeight(startLen, endLen)
	}
	return sum
}
