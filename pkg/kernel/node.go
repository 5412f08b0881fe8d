package kernel

// Weighted is the capability KernelSuffixTree requires of a word item D:
// a per-sequence weight contributed to every leaf that sequence's suffixes
// terminate on.
type Weighted interface {
	Weight() float64
}

// NodeData is the per-branch payload KernelSuffixTree preprocessing
// decorates: DescendantLeavesSum is the sum, over leaves in this branch's
// subtree, of the weights of the word items whose suffixes end there;
// Weight is the preprocessed, root-to-branch accumulated kernel weight.
// Used as *NodeData so mutations through Branch.NodeData() are visible.
type NodeData struct {
	descendantLeavesSum float64
	weight              float64
}

func (n *NodeData) DescendantLeavesSum() float64 { return n.descendantLeavesSum }

func (n *NodeData) SetDescendantLeavesSum(v float64) { n.descendantLeavesSum = v }

// AddDescendantLeavesSum accumulates v into the running sum; used by
// Processor at insertion time.
func (n *NodeData) AddDescendantLeavesSum(v float64) { n.descendantLeavesSum += v }

func (n *NodeData) Weight() float64 { return n.weight }

func (n *NodeData) SetWeight(v float64) { n.weight = v }
