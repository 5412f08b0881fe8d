package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgranger/seqtrie/pkg/radix"
)

func withSentinel(word string, sentinel rune) []rune {
	runes := []rune(word)
	return append(append([]rune{}, runes...), sentinel)
}

func TestAddWordFindsAllSubstrings(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	word := withSentinel("banana", '$')
	st.AddWord(word, 0)

	for _, sub := range []string{"ban", "ana", "nan", "a", "banana", "b"} {
		res := st.Tree().LongestCommonPrefix([]rune(sub), 0, nil)
		assert.Equalf(t, sub, string(res.Match()), "expected %q to be found in full", sub)
	}

	res := st.Tree().LongestCommonPrefix([]rune("xyz"), 0, nil)
	assert.NotEqual(t, "xyz", string(res.Match()))
}

func TestAddWordMultipleSequencesShareStructure(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	st.AddWord(withSentinel("aba", '$'), 0)
	st.AddWord(withSentinel("bab", '%'), 1)

	for _, sub := range []string{"ab", "ba", "a", "b", "aba$", "bab%"} {
		res := st.Tree().LongestCommonPrefix([]rune(sub), 0, nil)
		assert.Equalf(t, sub, string(res.Match()), "expected %q to be found in full", sub)
	}
}

func TestAddWordEmptyPanics(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	assert.Panics(t, func() { st.AddWord(nil, 0) })
}

func TestMatchingStatisticsAllZeroOnEmptyTree(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	entries := st.GetMatchingStatistics([]rune("abc"))
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, 0, e.MatchLength)
	}
}

func TestMatchingStatisticsExactSubstring(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	st.AddWord(withSentinel("banana", '$'), 0)

	entries := st.GetMatchingStatistics([]rune("ana"))
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].MatchLength) // "ana" occurs whole
	assert.Equal(t, 2, entries[1].MatchLength) // "na" occurs
	assert.Equal(t, 1, entries[2].MatchLength) // "a" occurs
}

func TestMatchingStatisticsShorterThanIndexed(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	st.AddWord(withSentinel("abcde", '$'), 0)

	entries := st.GetMatchingStatistics([]rune("abz"))
	require.Len(t, entries, 3)
	assert.Equal(t, 2, entries[0].MatchLength) // "ab" matches, "z" doesn't
	assert.Equal(t, 1, entries[1].MatchLength) // "b" matches
	assert.Equal(t, 0, entries[2].MatchLength) // "z" matches nothing
}

func TestFloorCeilOnImplicitPosition(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	st.AddWord(withSentinel("abc", '$'), 0)

	root := Root(st.tree)
	node, ok := root.TryAdvance('a')
	require.True(t, ok)
	node, ok = node.TryAdvance('b')
	require.True(t, ok)
	// "ab" is strictly inside the single leaf branch labeled "abc$": implicit.
	assert.False(t, node.IsExplicit())
	assert.True(t, node.Floor().IsExplicit())
	assert.True(t, node.Ceil().IsExplicit())
	assert.Equal(t, node.Branch.Parent(), node.Floor().Branch)
	assert.Equal(t, node.Branch, node.Ceil().Branch)
}

func TestFloorIsParentCeilIsSelfAtExplicitNodes(t *testing.T) {
	st := New[rune, int, struct{}](nil, nil)
	st.AddWord(withSentinel("abcabd", '$'), 0)

	root := Root(st.tree)
	node, ok := root.TryAdvance('a')
	require.True(t, ok)
	node, ok = node.TryAdvance('b')
	require.True(t, ok)
	// "abcabd$" and "abd$" diverge after "ab", forcing an explicit node there.
	assert.True(t, node.IsExplicit())
	assert.Equal(t, root, node.Floor())
	assert.Equal(t, node, node.Ceil())
}

func TestDuplicateInsertionReusesExistingStructure(t *testing.T) {
	var calls int
	proc := recordingProcessor{calls: &calls}
	st := New[rune, int, struct{}](proc, nil)

	word := withSentinel("abc", '$')
	st.AddWord(word, 0)
	before := calls
	st.AddWord(word, 0)
	assert.Greater(t, calls, before, "re-inserting an identical word should still invoke the processor")
}

type recordingProcessor struct {
	calls *int
}

func (p recordingProcessor) OnWordAdd(word []rune, item int, branch *radix.Branch[rune, struct{}]) {
	*p.calls++
}
