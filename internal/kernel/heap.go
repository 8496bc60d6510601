// Copyright ©2024 The grb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// heapEntry is one (row, source-list) pair in the heap algorithm
// family's min-heap, ordered by row. source indexes one of the
// source columns being merged (one per nonzero of B's column).
type heapEntry struct {
	row    int
	source int
	pos    int // current read position within that source list
}

// rowHeap is the minimal binary min-heap the Heap algorithm family needs
// (SPEC_FULL.md §1's scope note: "the minimal binary heap the Heap
// algorithm family itself needs" is kept; general-purpose heap/queue
// datastructures used only by other AxB algorithms are not). It is a fixed-capacity array
// living in per-call scratch, not allocated inside the hot loop.
type rowHeap struct {
	entries []heapEntry
}

func newRowHeap(capacity int) *rowHeap {
	return &rowHeap{entries: make([]heapEntry, 0, capacity)}
}

func (h *rowHeap) reset() { h.entries = h.entries[:0] }

func (h *rowHeap) push(e heapEntry) {
	h.entries = append(h.entries, e)
	i := len(h.entries) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].row <= h.entries[i].row {
			break
		}
		h.entries[parent], h.entries[i] = h.entries[i], h.entries[parent]
		i = parent
	}
}

func (h *rowHeap) len() int { return len(h.entries) }

func (h *rowHeap) top() heapEntry { return h.entries[0] }

func (h *rowHeap) pop() heapEntry {
	top := h.entries[0]
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	h.siftDown(0)
	return top
}

func (h *rowHeap) siftDown(i int) {
	n := len(h.entries)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && h.entries[l].row < h.entries[smallest].row {
			smallest = l
		}
		if r < n && h.entries[r].row < h.entries[smallest].row {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.entries[i], h.entries[smallest] = h.entries[smallest], h.entries[i]
		i = smallest
	}
}

// HeapScratch is the scratch the Heap algorithm family works in,
// supplied by the caller: a reusable min-heap sized to the maximum
// number of simultaneous source lists expected (bounded by B's column
// density). Context holds no scratch; MxM allocates a fresh HeapScratch
// for each output column.
type HeapScratch struct {
	heap *rowHeap
}

// NewHeapScratch allocates heap scratch with room for capacity
// simultaneous source lists.
func NewHeapScratch(capacity int) *HeapScratch {
	return &HeapScratch{heap: newRowHeap(capacity)}
}

// Reserve grows the heap scratch to at least capacity simultaneous
// source lists.
func (s *HeapScratch) Reserve(capacity int) {
	if cap(s.heap.entries) >= capacity {
		return
	}
	s.heap = newRowHeap(capacity)
}

// HeapColumn computes one output column via the heap method: B(:,j) has
// many nonzero contributors bk1, bk2, ..., each selecting a column of A
// (Ai/Ax sliced per source via aStart/aEnd), and a min-heap merges all
// those column streams by row, combining collisions with MultAdd instead
// of the Gustavson family's dense row-indexed scratch. This suits B
// columns dense enough that many sources overlap but the output row
// range itself stays sparse relative to vlen.
func HeapColumn[A, B, C any](
	k Kernel[A, B, C],
	scratch *HeapScratch,
	Ai []int, Ax []A,
	sourceStart, sourceEnd []int, // per source: [start,end) into Ai/Ax
	by []B, // the B scalar paired with each source
	outI []int, outX []C,
) int {
	h := scratch.heap
	h.reset()
	for s := range sourceStart {
		if sourceStart[s] < sourceEnd[s] {
			h.push(heapEntry{row: Ai[sourceStart[s]], source: s, pos: sourceStart[s]})
		}
	}

	n := 0
	for h.len() > 0 {
		top := h.pop()
		row := top.row
		z := k.Mult(Ax[top.pos], by[top.source])
		advance(h, top, sourceEnd, Ai)

		// Merge every other source currently sitting on the same row;
		// once z is terminal the remaining products for this row are
		// skipped, but their cursors still advance.
		for h.len() > 0 && h.top().row == row {
			e := h.pop()
			if !k.isTerminal(z) {
				z = k.MultAdd(z, Ax[e.pos], by[e.source])
			}
			advance(h, e, sourceEnd, Ai)
		}

		outI[n] = row
		outX[n] = z
		n++
	}
	return n
}

// advance moves source e.source's read cursor forward one slot and, if
// it still has entries left, re-pushes it onto the heap.
func advance(h *rowHeap, e heapEntry, sourceEnd []int, Ai []int) {
	next := e.pos + 1
	if next < sourceEnd[e.source] {
		h.push(heapEntry{row: Ai[next], source: e.source, pos: next})
	}
}
