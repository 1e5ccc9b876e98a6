package status

// History is a fixed-capacity ring of recent transitions.
// Not safe for concurrent use — the Tracker synchronizes access.
type History struct {
	buf      []Transition
	capacity int
	head     int // next write position
	count    int
}

// NewHistory creates a ring keeping the last capacity transitions.
func NewHistory(capacity int) *History {
	return &History{
		buf:      make([]Transition, capacity),
		capacity: capacity,
	}
}

// Push appends a transition, overwriting the oldest when full.
func (h *History) Push(tr Transition) {
	h.buf[h.head] = tr
	h.head = (h.head + 1) % h.capacity
	if h.count < h.capacity {
		h.count++
	}
}

// List returns the stored transitions, oldest first.
func (h *History) List() []Transition {
	if h.count == 0 {
		return nil
	}

	result := make([]Transition, h.count)
	// Oldest item is at (head - count) mod capacity
	start := (h.head - h.count + h.capacity) % h.capacity
	for i := 0; i < h.count; i++ {
		result[i] = h.buf[(start+i)%h.capacity]
	}
	return result
}

// Len returns the number of stored transitions.
func (h *History) Len() int {
	return h.count
}
