package mockdata

// IDAllocator hands out densely increasing positive ids starting just
// past a configurable offset, so datasets produced by separate runs can
// be concatenated without colliding. Generators take the allocator from
// the caller instead of keeping hidden counters, which makes allocation
// order part of each generator's contract.
type IDAllocator struct {
	next int
}

func NewIDAllocator(start int) *IDAllocator {
	return &IDAllocator{next: start}
}

// Next returns the following id in the sequence.
func (a *IDAllocator) Next() int {
	a.next++
	return a.next
}

// Pos returns the last id handed out (or the start offset before any
// allocation).
func (a *IDAllocator) Pos() int {
	return a.next
}
