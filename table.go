package linkedhash

import "math"

// table is the shared engine behind Set and MultiSet: an open-addressed
// slot array with linear probing and backward-shift deletion (the
// OrderedSlotTable of the design), plus a circular doubly-linked order
// list threaded through the slot indices stored in each element's Link
// (the IntrusiveOrderList). allowDuplicates turns the shared engine into
// the multi-set policy overlay: true skips past occupied-but-equal slots
// on insert instead of rejecting them.
//
// table itself never allocates a list node: a slot index doubles as the
// list token, exactly as spec's glossary describes.
type table struct {
	slots           []Element
	size            int
	headNext        int32 // slot of the first element in insertion order, or headSentinel
	headPrev        int32 // slot of the last element in insertion order, or headSentinel
	generation      uint64
	allowDuplicates bool
	fixedCapacity   bool // test-only: disables the overloaded()-triggered enlarge to exercise the capacity-exceeded path
	lastMutation    int64
}

// enlargeLoadFactor is the occupancy ratio that triggers a rehash before
// the next insert attempt, keeping probe runs short.
const enlargeLoadFactor = 0.75

// minCapacity is the floor on the slot array length, regardless of the
// requested expected size.
const minCapacity = 5

// newCapacity implements the "capacity >= ceil(expectedSize*2) + 1,
// floored at 5" rule from the slot table invariants. It panics with a
// *ContractViolation if the result would exceed math.MaxInt32, the
// largest value a slot index (stored as int32 in Link) can address.
func newCapacity(expectedSize int) int {
	if expectedSize < 0 {
		expectedSize = 0
	}
	c := 2*expectedSize + 1
	if c < minCapacity {
		c = minCapacity
	}
	if c > math.MaxInt32 {
		violate("table.capacity", "requested capacity %d exceeds the platform limit of %d slots addressable by a 32-bit slot index", c, math.MaxInt32)
	}
	return c
}

func newTable(expectedSize int, allowDuplicates bool) table {
	return table{
		slots:           make([]Element, newCapacity(expectedSize)),
		headNext:        headSentinel,
		headPrev:        headSentinel,
		allowDuplicates: allowDuplicates,
	}
}

// homeSlot computes hash mod capacity. hash is unsigned, so there is no
// Integer.MIN_VALUE-style overflow hazard from taking an absolute value;
// a caller's Hash() implementation may still derive an all-bits-set
// value (the uint64 analogue of MIN_VALUE), and that case is exercised
// explicitly in tests.
func (t *table) homeSlot(hash uint64) int {
	return int(hash % uint64(len(t.slots)))
}

func (t *table) overloaded() bool {
	return float64(t.size+1) >= enlargeLoadFactor*float64(len(t.slots))
}

// insert is add() for Set (allowDuplicates == false) and add() for
// MultiSet (allowDuplicates == true). It returns false for the two
// benign-rejection cases spec names: a nil element, and an element
// that is already linked into some table.
func (t *table) insert(e Element) bool {
	if e == nil {
		return false
	}
	link := e.Link()
	if !link.isUnlinked() {
		return false
	}

	if !t.fixedCapacity && t.overloaded() {
		t.enlarge()
	}

	capn := len(t.slots)
	home := t.homeSlot(e.Hash())
	i := home
	for {
		cur := t.slots[i]
		if cur == nil {
			break
		}
		if !t.allowDuplicates && cur.Equal(e) {
			return false
		}
		i = (i + 1) % capn
		if i == home {
			// Probed the entire table without finding a free slot.
			// Unreachable with the default enlarge policy; only
			// possible when fixedCapacity pins growth off.
			return false
		}
	}

	t.slots[i] = e
	t.size++
	t.appendTail(e, int32(i))
	t.generation++
	t.touch()
	return true
}

// containsEqual walks the probe run from e's home slot. Identity is
// checked before Equal as a fast path, per spec's contains() note.
func (t *table) containsEqual(e Element) bool {
	_, ok := t.findEqual(e)
	return ok
}

func (t *table) findEqual(e Element) (Element, bool) {
	if e == nil {
		return nil, false
	}
	capn := len(t.slots)
	home := t.homeSlot(e.Hash())
	i := home
	for {
		cur := t.slots[i]
		if cur == nil {
			return nil, false
		}
		if cur == e || cur.Equal(e) {
			return cur, true
		}
		i = (i + 1) % capn
		if i == home {
			return nil, false
		}
	}
}

// removeIdentity locates e by identity (never Equal) in its probe run,
// unlinks it from the order list, clears its slot, and backward-shifts
// any slots that can now be reached more directly from their own home.
func (t *table) removeIdentity(e Element) bool {
	if e == nil {
		return false
	}
	link := e.Link()
	if link.isUnlinked() {
		return false
	}

	capn := len(t.slots)
	home := t.homeSlot(e.Hash())
	i := home
	for {
		cur := t.slots[i]
		if cur == nil {
			return false
		}
		if cur == e {
			break
		}
		i = (i + 1) % capn
		if i == home {
			return false
		}
	}

	t.unlink(e)
	t.slots[i] = nil
	t.size--
	t.backwardShift(i, nil)
	t.generation++
	t.touch()
	return true
}

// backwardShift is the standard open-addressing backward-shift deletion:
// walk forward from the hole, and for every occupied slot whose home
// slot lies between the hole and its current position (accounting for
// wrap-around), move it into the hole and continue from its old slot.
// Stop at the first empty slot.
//
// watch, if non-nil, is a slot index some caller is holding onto
// outside the order list (an Iterator's cached next pointer); if the
// element currently at *watch gets physically relocated, *watch is
// updated to follow it. This is necessary because the order list is
// threaded by slot index: relinkIndex keeps every element's own
// neighbours consistent when it moves, but it has no way to reach an
// external copy of its old index.
func (t *table) backwardShift(hole int, watch *int32) {
	capn := len(t.slots)
	i := hole
	j := hole
	for {
		j = (j + 1) % capn
		cur := t.slots[j]
		if cur == nil {
			return
		}
		home := t.homeSlot(cur.Hash())
		if probeInRange(home, i, j, capn) {
			t.slots[i] = cur
			t.slots[j] = nil
			t.relinkIndex(int32(j), int32(i))
			if watch != nil && *watch == int32(j) {
				*watch = int32(i)
			}
			i = j
		}
	}
}

// probeInRange reports whether hole lies on the cyclic path the probe
// sequence takes from home to cur (inclusive), i.e. whether moving the
// element currently probed-to at cur back into hole still leaves it
// reachable by linear probing from home.
func probeInRange(home, hole, cur, capn int) bool {
	if home <= cur {
		return home <= hole && hole <= cur
	}
	// The probe run wrapped past the end of the array.
	return hole >= home || hole <= cur
}

// enlarge rehashes every element into a fresh, larger slot array,
// preserving order by walking the old order list head-to-tail and
// re-inserting in that order, exactly as spec's resize policy requires.
//
// It bumps generation itself, unconditionally, rather than leaving that
// to the caller's own success path: enlarge physically relocates every
// element to a new slots slice with new indices, so any Iterator
// already holding cached indices into the old array must be invalidated
// even if the insert that triggered this enlarge goes on to be rejected
// (e.g. a duplicate in the Set variant).
func (t *table) enlarge() {
	ordered := make([]Element, 0, t.size)
	for i := t.headNext; i != headSentinel; {
		e := t.slots[i]
		ordered = append(ordered, e)
		i = e.Link().next
	}

	t.slots = make([]Element, newCapacity(t.size))
	t.headNext = headSentinel
	t.headPrev = headSentinel

	for _, e := range ordered {
		e.Link().reset()
		idx := t.placeForRehash(e)
		t.appendTail(e, int32(idx))
	}

	t.generation++
}

// placeForRehash finds the first empty slot reachable by linear probing
// from e's home in the (already resized) table. It skips the
// duplicate/load-factor bookkeeping insert performs, since every element
// being replayed was already validly admitted once.
func (t *table) placeForRehash(e Element) int {
	capn := len(t.slots)
	i := t.homeSlot(e.Hash())
	for t.slots[i] != nil {
		i = (i + 1) % capn
	}
	t.slots[i] = e
	return i
}

// appendTail splices e, freshly stored at slot idx, onto the tail of
// the order list.
func (t *table) appendTail(e Element, idx int32) {
	link := e.Link()
	link.prev = t.headPrev
	link.next = headSentinel
	if t.headPrev == headSentinel {
		t.headNext = idx
	} else {
		t.slots[t.headPrev].Link().next = idx
	}
	t.headPrev = idx
}

// unlink removes e from the order list, patching its neighbours (or the
// head, if e was first/last) to skip it, and resets e's own link fields
// to the unlinked sentinel.
func (t *table) unlink(e Element) {
	link := e.Link()
	p := link.prev
	n := link.next
	if p == headSentinel {
		t.headNext = n
	} else {
		t.slots[p].Link().next = n
	}
	if n == headSentinel {
		t.headPrev = p
	} else {
		t.slots[n].Link().prev = p
	}
	link.reset()
}

// relinkIndex fixes up the order list after the element now stored at
// newIdx was physically moved there from oldIdx by backwardShift. The
// element's own prev/next are unchanged (its list neighbours are the
// same); what must change is its neighbours' pointers *to* it, since
// the list is threaded by slot index rather than by pointer.
func (t *table) relinkIndex(oldIdx, newIdx int32) {
	_ = oldIdx
	e := t.slots[newIdx]
	link := e.Link()
	if link.prev == headSentinel {
		t.headNext = newIdx
	} else {
		t.slots[link.prev].Link().next = newIdx
	}
	if link.next == headSentinel {
		t.headPrev = newIdx
	} else {
		t.slots[link.next].Link().prev = newIdx
	}
}

func (t *table) iterator() *Iterator {
	return &Iterator{
		t:          t,
		generation: t.generation,
		cur:        headSentinel,
		next:       t.headNext,
		removed:    true,
	}
}
