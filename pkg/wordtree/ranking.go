package wordtree

import (
	"fmt"
	"sort"

	"github.com/rgranger/seqtrie/pkg/radix"
)

// ItemStore is a ready-made node payload that accumulates every item
// assigned to a branch, for use with radix.StorageProcessor. Grounded on
// the teacher's append-on-insert StorageProcessor contract: AddWordItem
// satisfies radix.WordItemAdder[D], and Items lets TopKByWeight read them
// back to rank results.
type ItemStore[D any] struct {
	items []D
}

// AddWordItem appends item, satisfying radix.WordItemAdder[D].
func (s *ItemStore[D]) AddWordItem(item D) {
	s.items = append(s.items, item)
}

// Items returns every item accumulated on this branch, in insertion order.
func (s *ItemStore[D]) Items() []D {
	return s.items
}

// NewItemStoreTree creates a WordTree backed by ItemStore, wired to a
// radix.StorageProcessor so every AddWord call appends item to the ItemStore
// of the branch the word ends on.
func NewItemStoreTree[C comparable, D any]() *WordTree[C, D, *ItemStore[D]] {
	return New[C, D, *ItemStore[D]](
		radix.StorageProcessor[C, D, *ItemStore[D]]{},
		func() *ItemStore[D] { return &ItemStore[D]{} },
	)
}

// Ranked pairs a SearchResult with the weight TopKByWeight scored it with.
type Ranked[C comparable, D any] struct {
	Result radix.SearchResult[C, *ItemStore[D]]
	Weight float64
}

// TopKByWeight ranks ExactPrefixSearch's results by the highest
// weightOf(item) among each branch's stored items, collapsing results
// whose reconstructed word is identical (a guard: WordTree maps a
// re-inserted word onto its existing branch, whose stored items all take
// part in the ranking) and returning at most k,
// highest weight first. The core spec leaves ExactPrefixSearch's result
// order unspecified; this is additive ranking on top of it, grounded on
// the teacher's frequency-sorted completion list and its duplicate
// suggestion filter.
func TopKByWeight[C comparable, D any](wt *WordTree[C, D, *ItemStore[D]], prefix []C, k int, weightOf func(D) float64) []Ranked[C, D] {
	results := wt.ExactPrefixSearch(prefix)
	if len(results) == 0 || k <= 0 {
		return nil
	}

	seen := make(map[string]bool, len(results))
	ranked := make([]Ranked[C, D], 0, len(results))
	for _, r := range results {
		key := fmt.Sprint(r.Word())
		if seen[key] {
			continue
		}
		seen[key] = true

		items := r.Branch.NodeData().Items()
		best := 0.0
		for i, item := range items {
			w := weightOf(item)
			if i == 0 || w > best {
				best = w
			}
		}
		ranked = append(ranked, Ranked[C, D]{Result: r, Weight: best})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Weight > ranked[j].Weight })
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
