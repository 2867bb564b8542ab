package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamedIndexLookupMiss(t *testing.T) {
	idx := newNamedIndex(0)

	_, ok := idx.lookup("absent")
	require.False(t, ok)
}

func TestNamedIndexInsertAndLookup(t *testing.T) {
	idx := newNamedIndex(0)

	idx.insert("alpha", 0)
	idx.insert("beta", 1)

	id, ok := idx.lookup("alpha")
	require.True(t, ok)
	require.Equal(t, int32(0), id)

	id, ok = idx.lookup("beta")
	require.True(t, ok)
	require.Equal(t, int32(1), id)

	_, ok = idx.lookup("gamma")
	require.False(t, ok)
}

// TestNamedIndexGrows inserts enough distinct keys to force several resizes and checks
// every key is still reachable afterward, exercising insertSlot's rehash path.
func TestNamedIndexGrows(t *testing.T) {
	idx := newNamedIndex(4)

	const n = 5000

	for i := 0; i < n; i++ {
		idx.insert(fmt.Sprintf("key-%d", i), int32(i))
	}

	for i := 0; i < n; i++ {
		id, ok := idx.lookup(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d missing after growth", i)
		require.Equal(t, int32(i), id)
	}

	_, ok := idx.lookup("key-missing")
	require.False(t, ok)
}
