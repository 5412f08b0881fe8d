// Package editdist implements the band-pruned dynamic-programming column
// engine that powers both approximate radix-tree search and standalone
// edit-distance queries. A Column holds one column of a Levenshtein-style
// matrix, sparse to the rows whose value is within the caller's bound;
// every row outside the stored run carries an implicit +Inf.
package editdist

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DistanceFunc scores the cost of turning character a into character b. The
// zero-distance standard function (Standard) treats equal characters as
// free and unequal ones as cost 1.
type DistanceFunc[C comparable, W constraints.Float] func(a, b C) W

// Standard returns the 0/1 distance function used by the worked examples in
// the edit-distance literature: equal characters cost nothing, unequal
// characters cost one.
func Standard[C comparable, W constraints.Float]() DistanceFunc[C, W] {
	return func(a, b C) W {
		if a == b {
			return 0
		}
		return 1
	}
}

// Column is a run of DP cells starting at StartRow. Values[k] holds the
// cost for matrix row StartRow+k; every row outside that run is +Inf.
type Column[W constraints.Float] struct {
	StartRow int
	Values   []W
}

// Get returns the cost at row, or +Inf if row falls outside the stored
// run. A nil Column (global termination) answers +Inf everywhere.
func (c *Column[W]) Get(row int) W {
	if c == nil {
		return W(math.Inf(1))
	}
	idx := row - c.StartRow
	if idx < 0 || idx >= len(c.Values) {
		return W(math.Inf(1))
	}
	return c.Values[idx]
}

// Len reports how many rows are materialized.
func (c *Column[W]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Values)
}

// NewInitialColumn builds the column just before any character of the other
// sequence has been compared: start_row = -1, values 0, 1, ..., up to
// min(floor(maxDistance), patternLen, diagonalMargin). Pass a negative
// diagonalMargin to disable banding.
func NewInitialColumn[W constraints.Float](patternLen int, maxDistance W, diagonalMargin int) *Column[W] {
	if patternLen < 0 {
		invalidArg("NewInitialColumn", "patternLen must be >= 0")
	}
	bound := patternLen
	if float64(maxDistance) < float64(bound) {
		bound = int(math.Floor(float64(maxDistance)))
	}
	if diagonalMargin >= 0 && diagonalMargin < bound {
		bound = diagonalMargin
	}
	if bound < 0 {
		return nil
	}
	values := make([]W, bound+1)
	for i := range values {
		values[i] = W(i)
	}
	return &Column[W]{StartRow: -1, Values: values}
}

// MatchCallback is invoked once per materialized cell as CreateNext
// computes it, for callers that need to inspect every such cell without a
// second pass.
type MatchCallback[W constraints.Float] func(row int, value W)

// CreateNext computes the column that follows current once nextColChar has
// been compared against every character of rowWord. It returns nil if
// every reachable cell would exceed maxDistance, signaling that the caller
// should prune (for a tree search) or stop early (for a full matrix).
//
// columnIndex and diagonalMargin restrict the sweep to a band around the
// main diagonal; pass a negative diagonalMargin to disable banding, in
// which case columnIndex is unused.
func CreateNext[C comparable, W constraints.Float](
	rowWord []C,
	maxDistance W,
	columnIndex int,
	diagonalMargin int,
	distanceFn DistanceFunc[C, W],
	current *Column[W],
	nextColChar C,
	matchCB MatchCallback[W],
) *Column[W] {
	patternLen := len(rowWord)

	low := current.StartRow
	// One row past the current run can still come within bound, via a
	// replacement from the run's last cell or a deletion below it.
	high := current.StartRow + current.Len() + 1
	if patternLen < high {
		high = patternLen
	}
	if diagonalMargin >= 0 {
		if alt := columnIndex - diagonalMargin; alt > low {
			low = alt
		}
		if alt := columnIndex + diagonalMargin + 1; alt < high {
			high = alt
		}
	}

	var next *Column[W]
	for row := low; row < high; row++ {
		e := current.Get(row) + 1 // insertion into source
		if row >= 0 {
			if repl := current.Get(row-1) + distanceFn(rowWord[row], nextColChar); repl < e {
				e = repl
			}
		}
		if next != nil {
			if del := next.Get(row-1) + 1; del < e {
				e = del
			}
		}
		if e <= maxDistance {
			if next == nil {
				next = &Column[W]{StartRow: row, Values: []W{e}}
			} else {
				next.Values = append(next.Values, e)
			}
			if matchCB != nil {
				matchCB(row, e)
			}
		} else if next != nil {
			break
		}
	}
	if next == nil {
		logger.Debug("column pruned, every cell exceeded bound", "columnIndex", columnIndex)
	}
	return next
}
