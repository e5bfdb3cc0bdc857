// Package linkedhash implements an intrusive, open-addressed hash set
// that preserves insertion order, and a multi-set variant that admits
// several equal elements while keeping their relative insertion order.
//
// The container combines three things that are usually separate: a hash
// table with linear probing and backward-shift deletion, a doubly-linked
// order list threaded through index fields embedded in the elements
// themselves (so the container never allocates a node per element), and
// an optional multi-set policy layered on top of both.
//
// Elements are supplied by the caller and must implement Element. They
// may belong to at most one Set or MultiSet at a time; Add rejects an
// element that is already linked elsewhere.
//
// The container is not safe for concurrent use. Callers must serialize
// mutating calls and must not mutate while an Iterator from a prior
// call is still in use, except through that Iterator's own Remove.
package linkedhash
