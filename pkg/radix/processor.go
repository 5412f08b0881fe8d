package radix

// WordItemProcessor is the strategy the core invokes whenever it assigns a
// word item to a branch, on a freshly created leaf, or on the existing
// leaf an already-indexed word maps to. It is the sole configuration
// surface for WordTree and SuffixTree insertion: callers choose a
// processor instead of subclassing a tree.
type WordItemProcessor[C comparable, D any, N any] interface {
	OnWordAdd(word []C, item D, branch *Branch[C, N])
}

// NullProcessor does nothing. It is the default when a tree is built
// without a processor.
type NullProcessor[C comparable, D any, N any] struct{}

func (NullProcessor[C, D, N]) OnWordAdd(word []C, item D, branch *Branch[C, N]) {}

// WordItemAdder is the capability StorageProcessor requires of a tree's
// node payload: somewhere to accumulate the items assigned to a branch.
type WordItemAdder[D any] interface {
	AddWordItem(item D)
}

// StorageProcessor appends every word item assigned to a branch into the
// branch's node data, via N's AddWordItem method. Use it when N is a
// pointer type implementing WordItemAdder[D] (so the append is visible
// through the shared Branch).
type StorageProcessor[C comparable, D any, N WordItemAdder[D]] struct{}

func (StorageProcessor[C, D, N]) OnWordAdd(word []C, item D, branch *Branch[C, N]) {
	branch.NodeData().AddWordItem(item)
}
