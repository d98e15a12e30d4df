package engine

// RingBuffer is a fixed-capacity circular buffer. Push overwrites the
// oldest entry once full and reports what was evicted. Iteration order is
// oldest to newest.
type RingBuffer[T any] struct {
	data  []T
	start int
	count int
}

func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{data: make([]T, capacity)}
}

// Push appends val, evicting and returning the oldest entry when full.
func (r *RingBuffer[T]) Push(val T) (evicted T, wasFull bool) {
	if r.count == len(r.data) {
		evicted = r.data[r.start]
		r.data[r.start] = val
		r.start = (r.start + 1) % len(r.data)
		return evicted, true
	}
	r.data[(r.start+r.count)%len(r.data)] = val
	r.count++
	return evicted, false
}

func (r *RingBuffer[T]) Len() int { return r.count }

func (r *RingBuffer[T]) Cap() int { return len(r.data) }

// At returns the i-th entry counted from the oldest.
func (r *RingBuffer[T]) At(i int) T {
	return r.data[(r.start+i)%len(r.data)]
}

// Last returns the newest entry, or the zero value when empty.
func (r *RingBuffer[T]) Last() T {
	var zero T
	if r.count == 0 {
		return zero
	}
	return r.At(r.count - 1)
}

// Lookback returns the entry n pushes before the newest, clamped to the
// oldest retained entry.
func (r *RingBuffer[T]) Lookback(n int) T {
	var zero T
	if r.count == 0 {
		return zero
	}
	i := r.count - 1 - n
	if i < 0 {
		i = 0
	}
	return r.At(i)
}

// Do calls fn on every entry, oldest first.
func (r *RingBuffer[T]) Do(fn func(T)) {
	for i := 0; i < r.count; i++ {
		fn(r.At(i))
	}
}

// Values copies the contents into a fresh slice, oldest first.
func (r *RingBuffer[T]) Values() []T {
	out := make([]T, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.At(i)
	}
	return out
}
