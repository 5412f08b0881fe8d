package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureAndApplyCapitalization(t *testing.T) {
	folded, mask := CaptureCapitalization([]rune("HeLLo"))
	assert.Equal(t, "hello", string(folded))
	assert.Equal(t, CapitalizationMask{true, false, true, true, false}, mask)
	assert.Equal(t, "HeLLo", string(mask.Apply(folded)))
}

func TestApplyShorterMaskLeavesTailUntouched(t *testing.T) {
	mask := CapitalizationMask{true}
	assert.Equal(t, "Abc", string(mask.Apply([]rune("abc"))))
}

func TestApplyEmptyMaskIsIdentity(t *testing.T) {
	var mask CapitalizationMask
	assert.Equal(t, "abc", string(mask.Apply([]rune("abc"))))
}

func TestSentinelForIsUniquePerSequence(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 100; i++ {
		s := SentinelFor(i)
		assert.False(t, seen[s], "sentinel %d collided", i)
		seen[s] = true
	}
}
