package linkedhash

// unlinked marks a Link that is not currently a member of any table.
// headSentinel marks a Link end that is adjacent to the table's head,
// which is not a real slot and so can never collide with a slot index.
const (
	unlinked     int32 = -1
	headSentinel int32 = -2
)

// Link is the pair of intrusive index fields a container threads its
// order list through. Embed Link (by value) in an element type to get
// a promoted Link() method for free, satisfying Element's link half:
//
//	type Job struct {
//		linkedhash.Link
//		ID int64
//	}
//
// A zero-value Link reports as unlinked, so a freshly constructed
// element is immediately eligible for Add.
type Link struct {
	prev int32
	next int32
}

// Link returns l itself. Embedding Link promotes this method, which is
// how an embedding type satisfies the Link() *Link half of Element
// without writing any boilerplate.
func (l *Link) Link() *Link { return l }

// isUnlinked reports whether l is not a member of any table: either the
// unlinked sentinel pair written by reset, or the zero value. A member
// never has prev == next except when both are headSentinel, so (0, 0)
// cannot describe a linked element.
func (l *Link) isUnlinked() bool {
	return (l.prev == unlinked && l.next == unlinked) || (l.prev == 0 && l.next == 0)
}

func (l *Link) reset() {
	l.prev = unlinked
	l.next = unlinked
}

// Element is the capability set a caller's type must provide to be
// stored in a Set or MultiSet. Hash and Equal follow normal Go hashing
// conventions (equal elements must hash equal); Link exposes the two
// intrusive index fields the container reads and writes while the
// element is a member.
type Element interface {
	// Hash returns the element's hash code. It must be stable for as
	// long as the element is linked into a container.
	Hash() uint64

	// Equal reports whether the receiver and other represent the same
	// logical value. It is used by Set.Add/Contains/Find and by
	// MultiSet.FindAll; Remove always uses identity instead, so two
	// distinct elements that are Equal can still be removed
	// independently.
	Equal(other Element) bool

	// Link returns the element's intrusive link fields. Implementations
	// normally get this for free by embedding Link.
	Link() *Link
}
