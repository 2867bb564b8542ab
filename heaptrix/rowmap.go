package heaptrix

import "github.com/clusty-go/clusty/internal/hash"

const (
	emptyKey   = ^uint64(0)     // no entry has ever occupied this slot
	removedKey = ^uint64(0) - 1 // a tombstone: probing must continue past it
)

// rowMapEntry is one open-addressed slot: key is the neighboring column id, elem is
// nil for both never-used and tombstoned slots (mirroring the reference
// implementation's ht_elem_t pair, which tests elem==nullptr rather than the key).
type rowMapEntry struct {
	key  uint64
	elem *Element
}

// rowMap is the open-addressed hash-map one matrix row uses to store its neighbors,
// keyed by the neighboring column id and probed with a MurmurHash3 finalizer mix so
// sequential ids (the common case for small dense clusters) don't collide.
type rowMap struct {
	entries       []rowMapEntry
	size          uint64
	mask          uint64
	filled        uint64
	whenRestruct  uint64
	maxFillFactor float64
}

func determineSize(reqSize uint64, maxFillFactor float64) uint64 {
	s := uint64(float64(reqSize) / maxFillFactor)
	for s&(s-1) != 0 {
		s &= s - 1
	}
	return 2 * s
}

func newRowMap() *rowMap {
	const initSize = 8
	const maxFillFactor = 0.8

	m := &rowMap{maxFillFactor: maxFillFactor}
	m.size = determineSize(initSize, maxFillFactor) / 2
	m.mask = m.size - 1
	// when_restruct == 0 forces initialization of the backing slice on first insert.
	return m
}

func (m *rowMap) restruct() {
	old := m.entries

	m.entries = nil
	m.size *= 2
	m.mask = m.size - 1
	m.whenRestruct = uint64(float64(m.size) * m.maxFillFactor)
	m.filled = 0

	m.entries = make([]rowMapEntry, m.size)
	for i := range m.entries {
		m.entries[i].key = emptyKey
	}

	for _, e := range old {
		if e.elem != nil {
			m.insert(e.key, e.elem)
		}
	}
}

// insert adds idx->ptr. The caller must ensure idx is not already present.
func (m *rowMap) insert(idx uint64, ptr *Element) {
	if m.filled == m.whenRestruct {
		m.restruct()
	}

	pos := hash.Mix64(idx) & m.mask
	for m.entries[pos].elem != nil {
		pos = (pos + 1) & m.mask
	}

	m.entries[pos].key = idx
	m.entries[pos].elem = ptr
	m.filled++
}

// find returns the element stored under idx, or nil if absent.
func (m *rowMap) find(idx uint64) *Element {
	if m.filled == 0 {
		return nil
	}

	pos := hash.Mix64(idx) & m.mask
	for {
		if m.entries[pos].key == idx && m.entries[pos].elem != nil {
			return m.entries[pos].elem
		}
		if m.entries[pos].key == emptyKey {
			return nil
		}
		pos = (pos + 1) & m.mask
	}
}

// erase removes idx if present, leaving a tombstone so later probes keep working.
func (m *rowMap) erase(idx uint64) {
	if m.filled == 0 {
		return
	}

	pos := hash.Mix64(idx) & m.mask
	for {
		if m.entries[pos].key == idx && m.entries[pos].elem != nil {
			m.entries[pos].key = removedKey
			m.entries[pos].elem = nil
			return
		}
		if m.entries[pos].key == emptyKey {
			return
		}
		pos = (pos + 1) & m.mask
	}
}

// each calls fn for every live (key, elem) pair, in table order.
func (m *rowMap) each(fn func(key uint64, elem *Element)) {
	for _, e := range m.entries {
		if e.elem != nil {
			fn(e.key, e.elem)
		}
	}
}
