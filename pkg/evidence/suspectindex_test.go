package evidence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuspectIndex_UpsertAndLookup(t *testing.T) {
	ix := NewSuspectIndex()

	_, ok := ix.Lookup("pegada molhada")
	assert.False(t, ok, "empty index should not resolve anything")

	ix.Upsert("pegada molhada", "Avelar")
	ix.Upsert("fio de cabelo", "Beatriz")

	suspect, ok := ix.Lookup("pegada molhada")
	require.True(t, ok)
	assert.Equal(t, "Avelar", suspect)

	suspect, ok = ix.Lookup("fio de cabelo")
	require.True(t, ok)
	assert.Equal(t, "Beatriz", suspect)

	assert.Equal(t, 2, ix.Len())
}

func TestSuspectIndex_UpsertOverwrites(t *testing.T) {
	ix := NewSuspectIndex()

	ix.Upsert("bilhete rasgado", "Clara")
	ix.Upsert("bilhete rasgado", "Avelar")

	suspect, ok := ix.Lookup("bilhete rasgado")
	require.True(t, ok)
	assert.Equal(t, "Avelar", suspect, "re-association must replace the previous suspect")
	assert.Equal(t, 1, ix.Len(), "overwrite must not create a second entry")
}

func TestSuspectIndex_CollisionChains(t *testing.T) {
	// A single bucket forces every entry onto one chain.
	ix := NewSuspectIndexSize(1)

	for i := 0; i < 10; i++ {
		ix.Upsert(fmt.Sprintf("clue-%d", i), fmt.Sprintf("suspect-%d", i))
	}
	require.Equal(t, 10, ix.Len())

	// All entries remain reachable despite sharing a bucket.
	for i := 0; i < 10; i++ {
		suspect, ok := ix.Lookup(fmt.Sprintf("clue-%d", i))
		require.True(t, ok, "clue-%d lost in chain", i)
		assert.Equal(t, fmt.Sprintf("suspect-%d", i), suspect)
	}

	// Overwrite in the middle of the chain.
	ix.Upsert("clue-5", "replaced")
	suspect, ok := ix.Lookup("clue-5")
	require.True(t, ok)
	assert.Equal(t, "replaced", suspect)
	assert.Equal(t, 10, ix.Len())
}

func TestSuspectIndex_ExactMatch(t *testing.T) {
	ix := NewSuspectIndex()
	ix.Upsert("Luva", "Beatriz")

	_, ok := ix.Lookup("luva")
	assert.False(t, ok, "lookup must be case-sensitive")

	_, ok = ix.Lookup("Luva de couro")
	assert.False(t, ok, "lookup must not prefix-match")
}
