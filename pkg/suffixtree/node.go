package suffixtree

import "github.com/rgranger/seqtrie/pkg/radix"

// Node denotes a position in a suffix tree: explicit when Offset equals
// Branch.Length() (the position is the branch's own bottom node), implicit
// when 0 < Offset < Branch.Length() (strictly inside the branch's label).
// A freshly constructed Node never carries Offset == 0 for a non-root
// branch (that position is represented as the parent branch's explicit
// bottom instead), so every (branch, offset) pair denotes a unique place
// in the tree.
type Node[C comparable, N any] struct {
	Branch *radix.Branch[C, N]
	Offset int
}

// Root returns the explicit position at the root of tree.
func Root[C comparable, N any](tree *radix.RadixTree[C, N]) Node[C, N] {
	return Node[C, N]{Branch: tree.Root(), Offset: 0}
}

// IsExplicit reports whether n denotes an existing branch node rather than
// a position strictly inside one.
func (n Node[C, N]) IsExplicit() bool {
	return n.Offset == n.Branch.Length()
}

// TryAdvance attempts to move one character deeper by matching c: at an
// explicit position, it looks up a child keyed by c; inside a branch, it
// compares c against the next character of the branch's label. It reports
// the node one character deeper on success.
func (n Node[C, N]) TryAdvance(c C) (Node[C, N], bool) {
	if n.IsExplicit() {
		child, ok := n.Branch.Child(c)
		if !ok {
			var zero Node[C, N]
			return zero, false
		}
		return Node[C, N]{Branch: child, Offset: 1}, true
	}
	label := n.Branch.Label()
	if label[n.Offset] != c {
		var zero Node[C, N]
		return zero, false
	}
	return Node[C, N]{Branch: n.Branch, Offset: n.Offset + 1}, true
}

// Floor returns the nearest explicit node strictly above n: the explicit
// node at the top of n.Branch (equivalently, the bottom of n.Branch's
// parent), whether n itself is implicit or explicit. The root is its own
// floor.
func (n Node[C, N]) Floor() Node[C, N] {
	if n.Branch.IsRoot() {
		return n
	}
	parent := n.Branch.Parent()
	return Node[C, N]{Branch: parent, Offset: parent.Length()}
}

// Ceil returns the nearest explicit node at or below n: n itself if
// already explicit, otherwise the explicit node at the bottom of
// n.Branch.
func (n Node[C, N]) Ceil() Node[C, N] {
	if n.IsExplicit() {
		return n
	}
	return Node[C, N]{Branch: n.Branch, Offset: n.Branch.Length()}
}

// FollowLink computes the position reached by the suffix link from n. For
// an explicit non-root branch, it is the branch's stored suffix link (set
// during construction); the root links to itself. For an implicit
// position, it is computed by following the nearest explicit ancestor's
// suffix link and fast-scanning back down by the number of characters
// between that ancestor and n, using whole-child-label jumps rather than
// character-by-character comparison (the repeated-substring invariant
// Ukkonen's construction maintains guarantees that path exists). FollowLink
// reports false if the bridge node's suffix link has not been resolved
// yet (construction is still mid-phase at that branch).
func (n Node[C, N]) FollowLink() (Node[C, N], bool) {
	if n.IsExplicit() {
		if n.Branch.IsRoot() {
			return n, true
		}
		target := n.Branch.SuffixLink()
		if target == nil {
			var zero Node[C, N]
			return zero, false
		}
		return Node[C, N]{Branch: target, Offset: target.Length()}, true
	}

	floor := n.Floor()
	label := n.Branch.Label()

	// floor represents the path P from the root to the top of n.Branch; n's
	// full path is P + label[:n.Offset]. Removing that path's first
	// character falls on P's first character unless P is empty (floor is
	// root), in which case it falls on label's first character instead.
	var bridge *radix.Branch[C, N]
	var distance []C
	if floor.Branch.IsRoot() {
		bridge = floor.Branch
		distance = label[1:n.Offset]
	} else {
		bridge = floor.Branch.SuffixLink()
		if bridge == nil {
			logger.Debug("suffix link not yet resolved", "offset", n.Offset)
			var zero Node[C, N]
			return zero, false
		}
		distance = label[:n.Offset]
	}

	return descend(bridge, distance), true
}

// descend fast-scans down from an explicit branch by the characters in
// chars, using whole-child-label jumps. The caller guarantees this path
// exists in the tree.
func descend[C comparable, N any](from *radix.Branch[C, N], chars []C) Node[C, N] {
	cur := from
	idx := 0
	for idx < len(chars) {
		child, ok := cur.Child(chars[idx])
		if !ok {
			panic("suffixtree: descend: suffix-link target path missing, tree invariant violated")
		}
		remaining := len(chars) - idx
		if remaining < child.Length() {
			return Node[C, N]{Branch: child, Offset: remaining}
		}
		idx += child.Length()
		cur = child
	}
	return Node[C, N]{Branch: cur, Offset: cur.Length()}
}

// AddBranch attaches newBranch as a child at n's position. If n is
// implicit, n.Branch is first split so newBranch can become a sibling of
// the branch's continuation; AddBranch then reports true and returns the
// newly materialized explicit internal node, whose suffix link still
// needs to be resolved by the caller. If n was already explicit, it
// reports false and a nil internal node.
func (n Node[C, N]) AddBranch(newBranch *radix.Branch[C, N], newNodeData func() N) (split bool, internal *radix.Branch[C, N]) {
	if n.IsExplicit() {
		n.Branch.AddChild(newBranch)
		return false, nil
	}
	upper := n.Branch.Split(n.Offset, newNodeData)
	upper.AddChild(newBranch)
	return true, upper
}
