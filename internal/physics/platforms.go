package physics

// DefaultCapacity is the number of live platforms kept by a PlatformSet.
const DefaultCapacity = 10

// PlatformSet is a bounded FIFO of static platforms. Appending beyond
// capacity drops the oldest entry; order is otherwise preserved.
type PlatformSet struct {
	items    []Body
	capacity int
}

// NewPlatformSet creates an empty set holding at most capacity platforms.
// A non-positive capacity selects DefaultCapacity.
func NewPlatformSet(capacity int) *PlatformSet {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &PlatformSet{
		items:    make([]Body, 0, capacity+1),
		capacity: capacity,
	}
}

// Append adds a platform at the end. It returns true if the oldest
// platform was evicted to make room.
func (s *PlatformSet) Append(p Body) bool {
	s.items = append(s.items, p)
	if len(s.items) <= s.capacity {
		return false
	}
	copy(s.items, s.items[1:])
	s.items = s.items[:len(s.items)-1]
	return true
}

// Len returns the number of live platforms.
func (s *PlatformSet) Len() int {
	return len(s.items)
}

// Cap returns the capacity.
func (s *PlatformSet) Cap() int {
	return s.capacity
}

// All returns the platforms, oldest first. The slice is owned by the set
// and is only valid until the next Append or Clear.
func (s *PlatformSet) All() []Body {
	return s.items
}

// Clear removes all platforms.
func (s *PlatformSet) Clear() {
	s.items = s.items[:0]
}
