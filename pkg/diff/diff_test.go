package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("slides:\n  - index: 0\n")
	assert.Empty(t, Unified(content, content, "before", "after"))
	assert.False(t, Count(content, content).Changed())
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	before := []byte("variant: right\nsize: 18\nrole: content\n")
	after := []byte("variant: left\nsize: 18\nrole: content\n")

	result := Unified(before, after, "sunset.yaml", "ocean.yaml")
	require.NotEmpty(t, result)
	assert.True(t, strings.HasPrefix(result, "--- sunset.yaml\n+++ ocean.yaml\n"))
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
	assert.Contains(t, result, "-variant: right\n")
	assert.Contains(t, result, "+variant: left\n")
	assert.Contains(t, result, " size: 18\n")

	stats := Count(before, after)
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestUnifiedWholeLines(t *testing.T) {
	t.Parallel()

	// Similar lines must not be split into character-level hunks.
	before := []byte("text: Revenue grew\n")
	after := []byte("text: Revenue fell\n")

	result := Unified(before, after, "a", "b")
	assert.Contains(t, result, "-text: Revenue grew\n")
	assert.Contains(t, result, "+text: Revenue fell\n")
}

func TestUnifiedAdditionsOnly(t *testing.T) {
	t.Parallel()

	stats := Count([]byte("a\n"), []byte("a\nb\nc\n"))
	assert.Equal(t, Stats{Added: 2}, stats)
	assert.True(t, stats.Changed())
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := range 6000 {
		fmt.Fprintf(&before, "old %d\n", i)
		fmt.Fprintf(&after, "new %d\n", i)
	}

	result := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
	assert.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}
