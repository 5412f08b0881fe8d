package wordtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tchap/go-patricia/v2/patricia"
)

// TestExactPrefixSearchAgainstPatricia cross-checks WordTree's
// ExactPrefixSearch against an independently built go-patricia trie over
// the same word list: both are compressed-trie prefix lookups, so the set
// of matched words must agree even though seqtrie's own radix tree is the
// one actually used in production here.
func TestExactPrefixSearchAgainstPatricia(t *testing.T) {
	words := []string{
		"trie", "trigger", "trim", "triangle", "tree", "true", "track",
	}

	wt := New[byte, int, struct{}](nil, nil)
	trie := patricia.NewTrie()
	for i, w := range words {
		wt.AddWord([]byte(w), i)
		trie.Insert(patricia.Prefix(w), i)
	}

	prefixes := []string{"tri", "tr", "tre", "xyz"}
	for _, prefix := range prefixes {
		var fromPatricia []string
		_ = trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
			fromPatricia = append(fromPatricia, string(p))
			return nil
		})
		sort.Strings(fromPatricia)

		var fromWordTree []string
		for _, r := range wt.ExactPrefixSearch([]byte(prefix)) {
			fromWordTree = append(fromWordTree, string(r.Word()))
		}
		sort.Strings(fromWordTree)

		assert.Equalf(t, fromPatricia, fromWordTree, "prefix %q", prefix)
	}
}
