package radix

// SearchResult pins a position inside the tree: the branch reached,
// how far into that branch the match extends (0 <= MatchEndOffset <=
// Branch.Length()), and, for approximate matches, the edit distance of
// the match. The matched characters are Branch.WordUpTo(MatchEndOffset).
type SearchResult[C comparable, N any] struct {
	Branch         *Branch[C, N]
	MatchEndOffset int
	EditDistance   float64
}

// Match reconstructs the matched characters.
func (r SearchResult[C, N]) Match() []C {
	return r.Branch.WordUpTo(r.MatchEndOffset)
}

// Word reconstructs the full word stored along this branch's path,
// regardless of where the match ended.
func (r SearchResult[C, N]) Word() []C {
	return r.Branch.Word()
}
