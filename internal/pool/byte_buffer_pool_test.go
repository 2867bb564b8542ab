package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndGrow(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(bb.Bytes()))

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, "hello world", string(bb.Bytes()))
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("data"))

	capBefore := bb.Cap()
	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_SliceAndSetLength(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.SetLength(8)
	copy(bb.B, []byte("abcdefgh"))

	assert.Equal(t, []byte("cdef"), bb.Slice(2, 6))
}

func TestByteBuffer_SetLength_PanicsOutOfRange(t *testing.T) {
	bb := NewByteBuffer(4)
	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(100) })
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	assert.True(t, bb.Extend(4))
	assert.Equal(t, 4, bb.Len())

	// exceeds remaining capacity, so Extend must fail and ExtendOrGrow must reallocate.
	assert.False(t, bb.Extend(1000))
	bb.ExtendOrGrow(1000)
	assert.Equal(t, 1004, bb.Len())
}

func TestByteBuffer_Grow_NoopWhenCapacitySufficient(t *testing.T) {
	bb := NewByteBuffer(64)
	before := bb.Cap()

	bb.Grow(32)

	assert.Equal(t, before, bb.Cap())
}

func TestByteBuffer_Grow_LargeBufferGrowsByQuarter(t *testing.T) {
	bb := NewByteBuffer(1 << 20)
	bb.SetLength(1 << 20)

	before := bb.Cap()
	bb.Grow(1)

	assert.Greater(t, bb.Cap(), before)
	assert.GreaterOrEqual(t, bb.Cap()-before, before/4)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer

	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetReset(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.MustWrite([]byte("leftover"))
	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := NewByteBuffer(1024)
	p.Put(bb) // over threshold, must not be retained

	fresh := p.Get()
	assert.NotSame(t, bb, fresh)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(16, 32)
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestInputOutputBufferHelpers(t *testing.T) {
	in := GetInputBuffer()
	require.NotNil(t, in)
	assert.GreaterOrEqual(t, in.Cap(), InputBufferSize)
	PutInputBuffer(in)

	out := GetOutputBuffer()
	require.NotNil(t, out)
	assert.GreaterOrEqual(t, out.Cap(), OutputBufferSize)
	PutOutputBuffer(out)
}

func TestLoaderBufferSet_CountMatchesParsersPlusTwo(t *testing.T) {
	set := NewLoaderBufferSet(3)
	assert.Equal(t, 5, set.Count())
	set.Close()
}

func TestLoaderBufferSet_AcquireReleaseRoundTrips(t *testing.T) {
	set := NewLoaderBufferSet(1)
	defer set.Close()

	bufs := make([]*ByteBuffer, set.Count())
	for i := range bufs {
		bufs[i] = set.Acquire()
	}

	for _, b := range bufs {
		set.Release(b)
	}

	// every buffer handed back must be acquirable again without blocking.
	again := make([]*ByteBuffer, set.Count())
	for i := range again {
		again[i] = set.Acquire()
	}

	for _, b := range again {
		set.Release(b)
	}
}

func TestLoaderBufferSet_AcquireBlocksUntilReleased(t *testing.T) {
	set := NewLoaderBufferSet(0) // 2 buffers total
	defer set.Close()

	a := set.Acquire()
	b := set.Acquire()

	released := make(chan *ByteBuffer, 1)

	go func() {
		released <- set.Acquire()
	}()

	select {
	case <-released:
		t.Fatal("Acquire returned before any buffer was released")
	default:
	}

	set.Release(a)

	got := <-released
	assert.NotNil(t, got)

	set.Release(b)
	set.Release(got)
}

func TestLoaderBufferSet_ConcurrentAcquireRelease(t *testing.T) {
	set := NewLoaderBufferSet(4)
	defer set.Close()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			buf := set.Acquire()
			buf.MustWrite([]byte("x"))
			buf.Reset()
			set.Release(buf)
		}()
	}

	wg.Wait()
}
