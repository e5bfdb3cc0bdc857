package linkedhash

// Iterator walks a Set's or MultiSet's elements in insertion order. It
// is a fail-fast iterator: any mutation of the underlying container
// other than the iterator's own Remove invalidates it, and the next
// Next or Remove call panics with a *ContractViolation instead of
// returning a stale or inconsistent result.
type Iterator struct {
	t          *table
	generation uint64
	cur        int32 // slot of the element last returned by Next, or headSentinel
	next       int32 // slot to return from the next Next call, or headSentinel
	removed    bool  // true once Remove has consumed the current element
}

func (it *Iterator) checkGeneration(op string) {
	if it.generation != it.t.generation {
		violate(op, "iterator used after a mutation other than its own Remove")
	}
}

// Next advances the iterator and returns the next element in insertion
// order, or (nil, false) once the list is exhausted.
func (it *Iterator) Next() (Element, bool) {
	it.checkGeneration("Iterator.Next")
	if it.next == headSentinel {
		return nil, false
	}
	idx := it.next
	e := it.t.slots[idx]
	it.cur = idx
	it.next = e.Link().next
	it.removed = false
	return e, true
}

// Remove unlinks the element most recently returned by Next and
// releases its table slot. It panics with a *ContractViolation if Next
// has not been called, or if Remove has already been called since the
// last Next.
func (it *Iterator) Remove() {
	it.checkGeneration("Iterator.Remove")
	if it.removed || it.cur == headSentinel {
		violate("Iterator.Remove", "no element to remove: call Next first, at most once per Next")
	}

	idx := it.cur
	e := it.t.slots[idx]
	it.t.unlink(e)
	it.t.slots[idx] = nil
	it.t.size--
	// it.next may currently point at the slot backwardShift relocates;
	// pass it as the watch so it follows the move.
	it.t.backwardShift(int(idx), &it.next)
	// Invalidate every other live iterator, but keep this one valid.
	it.t.generation++
	it.generation = it.t.generation
	it.t.touch()
	it.removed = true
}
