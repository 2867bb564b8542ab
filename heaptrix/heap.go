package heaptrix

// trixHeap is a binary min-heap of *Element whose elements carry their own slot index
// (HeapIndex), so Remove and Replace can patch a specific element in O(log n) without
// a linear search for it first.
type trixHeap struct {
	items []*Element
}

func (h *trixHeap) size() int   { return len(h.items) }
func (h *trixHeap) empty() bool { return len(h.items) == 0 }

func (h *trixHeap) reserve(n int) {
	if cap(h.items) < n {
		grown := make([]*Element, len(h.items), n)
		copy(grown, h.items)
		h.items = grown
	}
}

// pushBack appends p to the backing slice without sifting; callers must follow a batch
// of pushBack calls with makeHeap.
func (h *trixHeap) pushBack(p *Element) {
	h.items = append(h.items, p)
}

func (h *trixHeap) siftUp(last int) {
	child := last
	for child > 0 {
		parent := (child - 1) / 2
		if less(h.items[child], h.items[parent]) {
			h.items[child], h.items[parent] = h.items[parent], h.items[child]
			h.items[child].HeapIndex, h.items[parent].HeapIndex = h.items[parent].HeapIndex, h.items[child].HeapIndex
			child = parent
		} else {
			return
		}
	}
}

func (h *trixHeap) siftDown(first int) {
	parent := first
	last := len(h.items) - 1

	for 2*parent+1 <= last {
		child1 := 2*parent + 1
		child2 := 2*parent + 2

		smaller := child1
		if child2 <= last && less(h.items[child2], h.items[child1]) {
			smaller = child2
		}

		if less(h.items[smaller], h.items[parent]) {
			h.items[smaller], h.items[parent] = h.items[parent], h.items[smaller]
			h.items[smaller].HeapIndex, h.items[parent].HeapIndex = h.items[parent].HeapIndex, h.items[smaller].HeapIndex
			parent = smaller
		} else {
			return
		}
	}
}

// makeHeap heapifies the current contents bottom-up and stamps every element's
// HeapIndex, used once after a batch of pushBack calls.
func (h *trixHeap) makeHeap() {
	start := (len(h.items) + 1) / 2
	for {
		h.siftDown(start)
		if start == 0 {
			break
		}
		start--
	}

	for i, e := range h.items {
		e.HeapIndex = i
	}
}

func (h *trixHeap) top() *Element {
	return h.items[0]
}

// insert adds p to the heap and restores the heap property.
func (h *trixHeap) insert(p *Element) {
	h.items = append(h.items, p)
	p.HeapIndex = len(h.items) - 1
	h.siftUp(p.HeapIndex)
}

// remove deletes p from the heap using its own HeapIndex.
func (h *trixHeap) remove(p *Element) {
	if p == nil {
		return
	}

	index := p.HeapIndex

	if len(h.items) > 1 {
		moveUp := less(h.items[len(h.items)-1], p)

		h.items[index] = h.items[len(h.items)-1]
		h.items[index].HeapIndex = index
		h.items = h.items[:len(h.items)-1]

		if moveUp {
			h.siftUp(index)
		} else {
			h.siftDown(index)
		}
	} else {
		h.items = h.items[:0]
	}
}

// replace swaps old's heap slot for newElem in place, restoring the heap property.
func (h *trixHeap) replace(old, newElem *Element) {
	index := old.HeapIndex
	h.items[index] = newElem
	newElem.HeapIndex = index

	if less(newElem, old) {
		h.siftUp(index)
	} else {
		h.siftDown(index)
	}
}

// pop removes and returns the minimum element.
func (h *trixHeap) pop() *Element {
	if len(h.items) == 0 {
		return nil
	}
	if len(h.items) == 1 {
		p := h.items[0]
		h.items = h.items[:0]
		return p
	}

	p := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[0].HeapIndex = 0
	h.items = h.items[:last]
	h.siftDown(0)

	return p
}
