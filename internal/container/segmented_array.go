// Package container implements container data structures.
package container

import (
	"iter"
	"sync"
	"sync/atomic"
)

const (
	// segmentBits determines the size of each segment.
	// 6 bits = 64 items per segment.
	segmentBits = 6
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// SegmentedArray is an append-only array with stable indices.
//
// Items never move once appended: growth allocates a new segment instead of
// copying existing ones, so an index (or a pointer stored at an index) handed
// out earlier stays valid. Reads are lock-free and may run concurrently with
// Append; readers observe a prefix of the appended items.
type SegmentedArray[T any] struct {
	segments atomic.Pointer[[]*Segment[T]]
	length   atomic.Uint32
	mu       sync.Mutex // Serialises appends
}

// Segment is a fixed-size array of items.
type Segment[T any] struct {
	items [segmentSize]T
}

// NewSegmentedArray creates a new SegmentedArray.
func NewSegmentedArray[T any]() *SegmentedArray[T] {
	sa := &SegmentedArray[T]{}
	segments := make([]*Segment[T], 0)
	sa.segments.Store(&segments)
	return sa
}

// Len returns the number of appended items.
func (sa *SegmentedArray[T]) Len() int {
	return int(sa.length.Load())
}

// Get returns the item at the given index.
// Returns the zero value and false if index has not been appended yet.
func (sa *SegmentedArray[T]) Get(index uint32) (T, bool) {
	if index >= sa.length.Load() {
		var zero T
		return zero, false
	}
	segments := sa.segments.Load()
	return (*segments)[index>>segmentBits].items[index&segmentMask], true
}

// Append stores value at the end of the array and returns its index.
func (sa *SegmentedArray[T]) Append(value T) uint32 {
	sa.mu.Lock()
	defer sa.mu.Unlock()

	index := sa.length.Load()
	segIdx := int(index >> segmentBits)

	segments := sa.segments.Load()
	current := *segments

	if segIdx >= len(current) {
		// Publish a grown header; existing segments are shared, not copied.
		grown := make([]*Segment[T], segIdx+1)
		copy(grown, current)
		grown[segIdx] = &Segment[T]{}
		current = grown
		sa.segments.Store(&grown)
	}

	current[segIdx].items[index&segmentMask] = value

	// Publish length last so readers never see an unwritten slot.
	sa.length.Store(index + 1)
	return index
}

// All iterates over the items present when iteration starts.
func (sa *SegmentedArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := sa.length.Load()
		segments := sa.segments.Load()
		for i := uint32(0); i < n; i++ {
			if !yield(int(i), (*segments)[i>>segmentBits].items[i&segmentMask]) {
				return
			}
		}
	}
}

// Slice copies the items present when the call starts into a new slice.
func (sa *SegmentedArray[T]) Slice() []T {
	out := make([]T, 0, sa.Len())
	for _, v := range sa.All() {
		out = append(out, v)
	}
	return out
}
