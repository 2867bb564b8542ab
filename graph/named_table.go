package graph

import "github.com/clusty-go/clusty/internal/hash"

// namedIndex is an open-addressed, linear-probed hash table mapping interned
// identifier strings to local indices. It plays the role the reference
// implementation's unordered_map<string_view, int, Murmur64_full> plays in the named
// variant of graph_named.h: NamedResolver looks up and inserts a raw token exactly
// once per row, so the table is built for that single access pattern rather than for
// deletion or iteration order.
type namedIndex struct {
	slots []namedSlot
	count int
}

type namedSlot struct {
	used bool
	h    uint64
	key  string
	id   int32
}

// maxLoadNum/maxLoadDen bound the load factor at 0.5 (resize on insert once the table
// is half full), keeping expected probe chains short.
const (
	maxLoadNum = 1
	maxLoadDen = 2
)

func newNamedIndex(capacityHint int) *namedIndex {
	n := 16
	for n < capacityHint*maxLoadDen/maxLoadNum {
		n *= 2
	}

	return &namedIndex{slots: make([]namedSlot, n)}
}

// lookup returns the id stored for key, if any.
func (t *namedIndex) lookup(key string) (int32, bool) {
	mask := uint64(len(t.slots) - 1)
	h := hash.ID(key)

	for i := h & mask; ; i = (i + 1) & mask {
		s := &t.slots[i]
		if !s.used {
			return 0, false
		}

		if s.h == h && s.key == key {
			return s.id, true
		}
	}
}

// insert adds key -> id, assuming lookup has already established key is absent.
func (t *namedIndex) insert(key string, id int32) {
	if (t.count+1)*maxLoadDen >= len(t.slots)*maxLoadNum {
		t.grow()
	}

	t.insertSlot(namedSlot{used: true, h: hash.ID(key), key: key, id: id})
	t.count++
}

func (t *namedIndex) insertSlot(s namedSlot) {
	mask := uint64(len(t.slots) - 1)

	for i := s.h & mask; ; i = (i + 1) & mask {
		if !t.slots[i].used {
			t.slots[i] = s
			return
		}
	}
}

func (t *namedIndex) grow() {
	old := t.slots
	t.slots = make([]namedSlot, len(old)*2)

	for _, s := range old {
		if s.used {
			t.insertSlot(s)
		}
	}
}
