package editdist

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Matrix is a dense (to ColumnsCount) Levenshtein-style DP matrix: a stack
// of Columns, one per position of the target sequence plus the initial
// column at index -1.
type Matrix[W constraints.Float] struct {
	source  int // len(source), kept for bounds checks in Get
	columns []*Column[W]
}

// ColumnsCount reports how many columns the matrix holds, including the
// initial column.
func (m *Matrix[W]) ColumnsCount() int {
	return len(m.columns)
}

// Get returns the DP cell for (row, columnIndex), where row is a 0-based
// index into source and columnIndex is a 0-based index into target, or -1
// for the initial column / row -1 for the empty source prefix.
func (m *Matrix[W]) Get(row, columnIndex int) W {
	idx := columnIndex + 1
	if idx < 0 || idx >= len(m.columns) {
		return W(math.Inf(1))
	}
	return m.columns[idx].Get(row)
}

// FromEditDistance builds the DP matrix for turning source into target
// column by column, pruning to cells within maxDistance (and, if
// diagonalMargin >= 0, within the diagonal band). If a column would be
// entirely empty, construction stops early and every remaining column is
// left as an empty placeholder (start_row = -1, zero length), the
// global-termination case of CreateNext.
func FromEditDistance[C comparable, W constraints.Float](
	source, target []C,
	maxDistance W,
	distanceFn DistanceFunc[C, W],
	diagonalMargin int,
) *Matrix[W] {
	if distanceFn == nil {
		invalidArg("FromEditDistance", "distanceFn must not be nil")
	}

	columns := make([]*Column[W], len(target)+1)
	columns[0] = NewInitialColumn[W](len(source), maxDistance, diagonalMargin)

	terminated := columns[0] == nil
	if terminated {
		columns[0] = &Column[W]{StartRow: -1}
	}
	for j := 0; j < len(target); j++ {
		if terminated {
			columns[j+1] = &Column[W]{StartRow: -1}
			continue
		}
		next := CreateNext(source, maxDistance, j, diagonalMargin, distanceFn, columns[j], target[j], nil)
		if next == nil {
			terminated = true
			columns[j+1] = &Column[W]{StartRow: -1}
			continue
		}
		columns[j+1] = next
	}

	return &Matrix[W]{source: len(source), columns: columns}
}

// Distance computes the full (unbanded) edit distance between source and
// target under distanceFn.
func Distance[C comparable, W constraints.Float](source, target []C, distanceFn DistanceFunc[C, W]) W {
	m := FromEditDistance(source, target, W(math.Inf(1)), distanceFn, -1)
	return m.Get(len(source)-1, len(target)-1)
}

// CommandKind identifies the kind of edit a Command performs.
type CommandKind int

const (
	// Replace swaps the source character at SourceIndex for To.
	Replace CommandKind = iota
	// Delete removes the source character at SourceIndex.
	Delete
	// Insert adds Char into the output immediately after SourceIndex.
	Insert
)

func (k CommandKind) String() string {
	switch k {
	case Replace:
		return "replace"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "unknown"
	}
}

// Command is one step of an edit script turning a source sequence into a
// target sequence. SourceIndex is the row position in source immediately
// before the action, per the trace-back convention in Commands.
type Command[C comparable, W constraints.Float] struct {
	Kind        CommandKind
	SourceIndex int
	Char        C // the character inserted or deleted
	ReplacedBy  C // for Replace, the character source[SourceIndex] becomes
	Cost        W
}

// Commands builds the full (unbanded) matrix for source -> target and
// traces it back into a left-to-right edit script. Tie-break policy when
// several paths achieve the minimum cost: replace, then delete, then
// insert, matching the order a reader would scan a classic Wagner-Fischer
// traceback table.
func Commands[C comparable, W constraints.Float](source, target []C, distanceFn DistanceFunc[C, W]) []Command[C, W] {
	m := FromEditDistance(source, target, W(math.Inf(1)), distanceFn, -1)

	d := func(i, j int) W { return m.Get(i-1, j-1) }

	var commands []Command[C, W]
	i, j := len(source), len(target)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0:
			diag, up, left, cur := d(i-1, j-1), d(i-1, j), d(i, j-1), d(i, j)
			cost := distanceFn(source[i-1], target[j-1])
			if diag <= up && diag <= left && diag <= cur {
				if cost > 0 {
					commands = append(commands, Command[C, W]{
						Kind:        Replace,
						SourceIndex: i - 1,
						Char:        source[i-1],
						ReplacedBy:  target[j-1],
						Cost:        cost,
					})
				}
				i--
				j--
				continue
			}
			if up <= left {
				commands = append(commands, Command[C, W]{Kind: Delete, SourceIndex: i - 1, Char: source[i-1], Cost: 1})
				i--
				continue
			}
			commands = append(commands, Command[C, W]{Kind: Insert, SourceIndex: i - 1, Char: target[j-1], Cost: 1})
			j--
		case i > 0:
			commands = append(commands, Command[C, W]{Kind: Delete, SourceIndex: i - 1, Char: source[i-1], Cost: 1})
			i--
		default:
			commands = append(commands, Command[C, W]{Kind: Insert, SourceIndex: i - 1, Char: target[j-1], Cost: 1})
			j--
		}
	}

	for l, r := 0, len(commands)-1; l < r; l, r = l+1, r-1 {
		commands[l], commands[r] = commands[r], commands[l]
	}
	return commands
}

// TotalCost sums the cost of every command in a script.
func TotalCost[C comparable, W constraints.Float](commands []Command[C, W]) W {
	var total W
	for _, c := range commands {
		total += c.Cost
	}
	return total
}

// Apply replays commands over source and returns the resulting sequence.
// It is the inverse of Commands: Apply(source, Commands(source, target, d))
// == target for any symmetric-or-not distanceFn whose zero-cost path is
// exact equality.
func Apply[C comparable, W constraints.Float](source []C, commands []Command[C, W]) []C {
	out := make([]C, 0, len(source)+len(commands))
	si := 0
	for _, cmd := range commands {
		for si <= cmd.SourceIndex {
			out = append(out, source[si])
			si++
		}
		switch cmd.Kind {
		case Replace:
			out[len(out)-1] = cmd.ReplacedBy
		case Delete:
			out = out[:len(out)-1]
		case Insert:
			out = append(out, cmd.Char)
		}
	}
	for ; si < len(source); si++ {
		out = append(out, source[si])
	}
	return out
}
