package cdclsat

import "container/heap"

// rescaleThreshold and rescaleFactor implement spec.md §3's overflow
// safeguard: once any activity reaches 10^100, every activity and the
// bump value are multiplied by 10^-100, which preserves relative order.
const (
	rescaleThreshold = 1e100
	rescaleFactor    = 1e-100
	decayFactor      = 1.05
)

// ActivityHeap is a binary max-heap of variables ordered by a
// per-variable VSIDS activity score, with a companion index table so a
// variable's position can be found and re-sifted in O(log N) (spec.md
// §4.3, §9 "heap with external index").
//
// ActivityHeap implements container/heap.Interface directly; callers
// should use the PushVar/PopMax/Contains/Bump/Decay methods below rather
// than the package-level heap.Push/heap.Pop functions.
type ActivityHeap struct {
	items    []Var
	pos      []int // Var -> index in items, or -1 if not present
	activity []float64
	bump     float64
}

// NewActivityHeap allocates a heap over n variables, all initially
// present (every variable starts Undefined) with zero activity.
func NewActivityHeap(n int) *ActivityHeap {
	h := &ActivityHeap{
		items:    make([]Var, 0, n),
		pos:      make([]int, n),
		activity: make([]float64, n),
		bump:     1,
	}
	for i := range h.pos {
		h.pos[i] = -1
	}
	for v := 0; v < n; v++ {
		h.PushVar(Var(v))
	}
	return h
}

// Len implements heap.Interface.
func (h *ActivityHeap) Len() int { return len(h.items) }

// Less implements heap.Interface: higher activity sorts first. Ties break
// on variable identity, which is deterministic per run.
func (h *ActivityHeap) Less(i, j int) bool {
	vi, vj := h.items[i], h.items[j]
	ai, aj := h.activity[vi], h.activity[vj]
	if ai != aj {
		return ai > aj
	}
	return vi < vj
}

// Swap implements heap.Interface.
func (h *ActivityHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// Push implements heap.Interface. Callers should use PushVar instead.
func (h *ActivityHeap) Push(x interface{}) {
	v := x.(Var)
	h.pos[v] = len(h.items)
	h.items = append(h.items, v)
}

// Pop implements heap.Interface. Callers should use the Var-returning
// PopMax method below instead.
func (h *ActivityHeap) Pop() interface{} {
	n := len(h.items)
	v := h.items[n-1]
	h.items = h.items[:n-1]
	h.pos[v] = -1
	return v
}

// Contains reports whether v is currently in the heap.
func (h *ActivityHeap) Contains(v Var) bool {
	return int(v) < len(h.pos) && h.pos[v] != -1
}

// PushVar inserts v if it is not already present.
func (h *ActivityHeap) PushVar(v Var) {
	if h.Contains(v) {
		return
	}
	heap.Push(h, v)
}

// PopMax removes and returns the highest-activity variable, or ok=false
// if the heap is empty.
func (h *ActivityHeap) PopMax() (Var, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	return heap.Pop(h).(Var), true
}

// Bump adds the current bump value to v's activity, re-sifting v's heap
// position if present, and rescales on overflow.
func (h *ActivityHeap) Bump(v Var) {
	h.activity[v] += h.bump
	if h.Contains(v) {
		heap.Fix(h, h.pos[v])
	}
	if h.activity[v] >= rescaleThreshold {
		h.rescale()
	}
}

func (h *ActivityHeap) rescale() {
	for i := range h.activity {
		h.activity[i] *= rescaleFactor
	}
	h.bump *= rescaleFactor
}

// Decay multiplies the bump value by the decay factor, so future bumps
// count for relatively more than older ones.
func (h *ActivityHeap) Decay() {
	h.bump *= decayFactor
}

// Activity returns v's current activity score, for tests and debugging.
func (h *ActivityHeap) Activity(v Var) float64 { return h.activity[v] }
