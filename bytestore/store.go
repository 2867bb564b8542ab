package bytestore

import "unsafe"

// DefaultChunkSize is the chunk size used when NewStore is given size <= 0 (the
// reference implementation's chunked_vector<char> for object names: "16MB chunk size").
const DefaultChunkSize = 16 << 20

// Store is an append-only byte arena split into fixed-size chunks. A chunk is
// allocated at its full capacity up front and never grows past it, so a []byte
// returned by Append is never invalidated by a later Append, unlike appending
// directly to a single growing slice.
type Store struct {
	chunkSize int
	chunks    [][]byte // each chunk's used prefix; its capacity is fixed at creation
	cur       []byte   // the active chunk's used prefix
}

// NewStore creates a Store with the given chunk size (DefaultChunkSize if size <= 0).
func NewStore(size int) *Store {
	if size <= 0 {
		size = DefaultChunkSize
	}

	return &Store{chunkSize: size}
}

// Append copies data into the arena and returns a stable slice over the copy. If data
// is larger than the chunk size, it gets a dedicated chunk sized to fit it exactly, the
// same "oversized element" escape hatch the reference chunked_vector relies on for rows
// with name fields lengthier than the typical chunk budget.
func (s *Store) Append(data []byte) []byte {
	if len(data) == 0 {
		return s.cur[len(s.cur):len(s.cur)]
	}

	if len(s.cur) == 0 || cap(s.cur)-len(s.cur) < len(data) {
		s.newChunk(len(data))
	}

	start := len(s.cur)
	s.cur = s.cur[:start+len(data)]
	copy(s.cur[start:], data)
	s.chunks[len(s.chunks)-1] = s.cur

	return s.cur[start : start+len(data)]
}

// AppendView copies data into the arena and returns a string view over the copy
// without the extra allocation a string(b) conversion would make, the Go analogue of
// the reference implementation returning a std::string_view over the chunked_vector.
// The returned string is valid for the lifetime of the Store.
func (s *Store) AppendView(data []byte) string {
	stored := s.Append(data)
	if len(stored) == 0 {
		return ""
	}

	return unsafe.String(&stored[0], len(stored))
}

// AppendString is Append for a string argument, avoiding a caller-side []byte(s) copy
// beyond the one Append already makes.
func (s *Store) AppendString(str string) []byte {
	return s.Append([]byte(str))
}

func (s *Store) newChunk(minSize int) {
	size := s.chunkSize
	if minSize > size {
		size = minSize
	}

	chunk := make([]byte, 0, size)
	s.chunks = append(s.chunks, chunk)
	s.cur = s.chunks[len(s.chunks)-1]
}

// NumChunks returns how many chunks have been allocated, for diagnostics.
func (s *Store) NumChunks() int {
	return len(s.chunks)
}

// Len returns the total number of bytes appended across all chunks.
func (s *Store) Len() int {
	total := 0
	for _, c := range s.chunks {
		total += len(c)
	}
	return total
}
