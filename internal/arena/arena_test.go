package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b int64
}

func TestAllocCarvesAndReusesSlab(t *testing.T) {
	a := New[pair](int(unsafe.Sizeof(pair{})) * 4)

	p1 := a.Alloc()
	p1.a = 1
	p2 := a.Alloc()
	p2.a = 2

	require.NotEqual(t, p1, p2)
	require.Equal(t, int64(1), p1.a)
	require.Equal(t, int64(2), p2.a)
}

func TestFreeReusesBeforeNewSlab(t *testing.T) {
	a := New[pair](int(unsafe.Sizeof(pair{})) * 2)

	p1 := a.Alloc()
	p2 := a.Alloc()
	require.Equal(t, 1, a.NumSlabs())

	a.Free(p2)
	p3 := a.Alloc()
	require.Same(t, p2, p3)
	require.Equal(t, 1, a.NumSlabs())
	require.Equal(t, pair{}, *p3)

	_ = p1
}

func TestGrowsAcrossSlabs(t *testing.T) {
	a := New[pair](int(unsafe.Sizeof(pair{})))

	a.Alloc()
	a.Alloc()
	a.Alloc()

	require.GreaterOrEqual(t, a.NumSlabs(), 3)
}
