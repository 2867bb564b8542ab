// Package pool provides reusable byte buffers for the loader pipeline and the output
// renderer, avoiding repeated large allocations on the hot path. LoaderBufferSet
// additionally fixes the loader's total input-buffer budget at numParsers+2, so a
// Load call's memory footprint doesn't grow with the size of the input file.
package pool

import (
	"io"
	"sync"
)

// Buffer size constants for the two pools this package exposes by default.
const (
	// InputBufferSize is the default size of a loader input buffer.
	InputBufferSize = 128 << 20
	// InputBufferMaxThreshold caps how large a returned input buffer may be before it is
	// discarded instead of pooled, so one oversized read doesn't bloat the pool forever.
	InputBufferMaxThreshold = 256 << 20
	// OutputBufferSize is the default size of the renderer's scratch buffer.
	OutputBufferSize = 64 << 20
	// OutputBufferMaxThreshold is the equivalent cap for output buffers.
	OutputBufferMaxThreshold = 128 << 20
)

// ByteBuffer is a growable byte slice wrapper designed for pooled reuse: Reset keeps the
// underlying array, Grow amortizes reallocation, and WriteTo flushes straight to an io.Writer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient capacity.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For buffers with capacity up to 128KiB, grow by 32KiB (OutputBufferSize/2048) to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	const smallGrowStep = 1 << 15 // 32KiB

	growBy := smallGrowStep
	if cap(bb.B) > 4*smallGrowStep {
		// For larger buffers, grow by 25% to balance memory and reallocation cost
		growBy = cap(bb.B) / 4
	}

	// Ensure we grow enough for at least the required bytes
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	// Allocate new buffer with increased capacity
	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	inputBufferPool  = NewByteBufferPool(InputBufferSize, InputBufferMaxThreshold)
	outputBufferPool = NewByteBufferPool(OutputBufferSize, OutputBufferMaxThreshold)
)

// GetInputBuffer retrieves a loader input buffer from the shared pool.
func GetInputBuffer() *ByteBuffer {
	return inputBufferPool.Get()
}

// PutInputBuffer returns a loader input buffer to the shared pool.
func PutInputBuffer(bb *ByteBuffer) {
	inputBufferPool.Put(bb)
}

// GetOutputBuffer retrieves a renderer scratch buffer.
func GetOutputBuffer() *ByteBuffer {
	return outputBufferPool.Get()
}

// PutOutputBuffer returns a renderer scratch buffer to the pool.
func PutOutputBuffer(bb *ByteBuffer) {
	outputBufferPool.Put(bb)
}

// LoaderBufferSet owns the loader's fixed working set of input buffers: one per
// parser thread that could be mid-decode, plus one the reader goroutine is currently
// filling and one just-finished buffer still in flight back to a parser. NewLoaderBufferSet
// draws that numParsers+2 budget up front from the shared input pool, so a Load call's
// total buffer footprint is fixed regardless of how large the input file is.
type LoaderBufferSet struct {
	free chan *ByteBuffer
	n    int
}

// NewLoaderBufferSet allocates numParsers+2 input buffers and returns a set ready to
// hand them out via Acquire.
func NewLoaderBufferSet(numParsers int) *LoaderBufferSet {
	n := numParsers + 2
	s := &LoaderBufferSet{free: make(chan *ByteBuffer, n), n: n}

	for i := 0; i < n; i++ {
		s.free <- GetInputBuffer()
	}

	return s
}

// Count returns the total number of buffers the set manages.
func (s *LoaderBufferSet) Count() int { return s.n }

// Acquire blocks until a buffer is available and returns it.
func (s *LoaderBufferSet) Acquire() *ByteBuffer { return <-s.free }

// Release returns buf to the set so a later Acquire can hand it out again.
func (s *LoaderBufferSet) Release(buf *ByteBuffer) { s.free <- buf }

// Close drains every buffer in the set back to the shared input pool. Callers must
// have released every buffer they acquired before calling Close.
func (s *LoaderBufferSet) Close() {
	for i := 0; i < s.n; i++ {
		PutInputBuffer(<-s.free)
	}
}
