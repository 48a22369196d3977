package mesh

// A binary min-heap ordered by a three-way comparator. The backing slice
// keeps a zero-value sentinel at index 0 so that a live element at index i
// has its children at 2i and 2i+1 and its parent at i/2, which keeps the
// sift arithmetic free of off-by-one noise.
//
// Ties are broken arbitrarily; no secondary key is needed anywhere in the
// system.
type Heap[T any] struct {
	items []T
	cmp   func(a, b T) int
}

func NewHeap[T any](cmp func(a, b T) int) *Heap[T] {
	return &Heap[T]{items: make([]T, 1), cmp: cmp}
}

func (h *Heap[T]) Len() int {
	return len(h.items) - 1
}

func (h *Heap[T]) Empty() bool {
	return len(h.items) == 1
}

func (h *Heap[T]) Push(e T) {
	h.items = append(h.items, e)
	h.siftUp(len(h.items) - 1)
}

// Remove and return the minimum element. Popping an empty heap is a
// programming error and panics.
func (h *Heap[T]) PopMin() T {
	if h.Empty() {
		panic("PopMin on an empty heap")
	}
	min := h.items[1]
	last := len(h.items) - 1
	h.items[1] = h.items[last]
	h.items = h.items[:last]
	if !h.Empty() {
		h.siftDown(1)
	}
	return min
}

func (h *Heap[T]) siftUp(i int) {
	for i > 1 && h.cmp(h.items[i], h.items[i/2]) < 0 {
		h.items[i], h.items[i/2] = h.items[i/2], h.items[i]
		i /= 2
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := 2 * i; l < n && h.cmp(h.items[l], h.items[smallest]) < 0 {
			smallest = l
		}
		if r := 2*i + 1; r < n && h.cmp(h.items[r], h.items[smallest]) < 0 {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
