package kernel

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/rgranger/seqtrie/pkg/radix"
)

// LeafWeight is one row of a Snapshot: the preprocessed weight and
// descendant-leaves sum of a single suffix leaf, keyed by its reconstructed
// word so a caller can compare a restored snapshot against a freshly
// recomputed tree.
type LeafWeight struct {
	Key                 string  `msgpack:"key"`
	Weight              float64 `msgpack:"weight"`
	DescendantLeavesSum float64 `msgpack:"dls"`
}

// Snapshot is the msgpack-serializable capture of a preprocessed tree's
// decorated leaf weights. It is not an index format: restoring one does
// not rebuild any branch, only exercises the round trip and the
// preprocessing-guard reset the non-goal in §7 calls out.
type Snapshot struct {
	Leaves []LeafWeight `msgpack:"leaves"`
}

// Snapshot preprocesses the tree if needed and marshals every suffix
// leaf's decorated weight to msgpack.
func (k *KernelSuffixTree[C, D]) Snapshot() ([]byte, error) {
	k.Preprocess()

	var leaves []LeafWeight
	radix.DFSVisit(k.tree.Tree().Root(), func(b *radix.Branch[C, *NodeData]) bool {
		if b.IsLeaf() {
			leaves = append(leaves, LeafWeight{
				Key:                 fmt.Sprint(b.Word()),
				Weight:              b.NodeData().Weight(),
				DescendantLeavesSum: b.NodeData().DescendantLeavesSum(),
			})
		}
		return true
	})

	return msgpack.Marshal(&Snapshot{Leaves: leaves})
}

// Restore decodes data into a Snapshot for inspection and clears this
// tree's preprocessing guard, since a tree built from restored data must
// never inherit stale preprocessing state; the next ComputeKernel call
// re-derives everything from the live branches.
func (k *KernelSuffixTree[C, D]) Restore(data []byte) (*Snapshot, error) {
	k.mu.Lock()
	k.preprocessed = false
	k.mu.Unlock()

	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
