package kernel

import "github.com/rgranger/seqtrie/pkg/radix"

// Processor is the radix.WordItemProcessor KernelSuffixTree installs on
// its underlying SuffixTree: at insertion time, for every suffix leaf a
// word item touches, it adds the item's weight to that leaf's
// descendant-leaves sum, which Preprocess later folds up the tree.
type Processor[C comparable, D Weighted] struct{}

func (Processor[C, D]) OnWordAdd(word []C, item D, branch *radix.Branch[C, *NodeData]) {
	branch.NodeData().AddDescendantLeavesSum(item.Weight())
}
