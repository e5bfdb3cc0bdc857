package linkedhash

import (
	"github.com/templexxx/cpu"
	"github.com/templexxx/tsc"
)

// hasAVX2 is detected once at init, mirroring the teacher's atomic256.go
// CPU-feature gate. Nothing in this package branches on it for
// correctness; it only annotates Stats so a benchmark result can be read
// alongside the hardware it ran on.
var hasAVX2 = cpu.X86.HasAVX2

// Stats is a read-only diagnostic snapshot of a Set or MultiSet. It is
// purely observational: nothing in the container's behavior depends on
// any field here.
type Stats struct {
	// Size is the number of elements currently stored.
	Size int
	// NumSlots is the length of the backing slot array.
	NumSlots int
	// LoadFactor is Size / NumSlots.
	LoadFactor float64
	// LongestProbeRun is the length of the longest contiguous run of
	// occupied slots in the table, the practical upper bound on how far
	// Contains/Find/Remove must walk to resolve a miss.
	LongestProbeRun int
	// HasAVX2 reports whether the host CPU advertises AVX2 support.
	HasAVX2 bool
	// LastMutationNanos is the tsc.UnixNano() timestamp of the most
	// recent successful Add/Remove/Iterator.Remove, or zero if the
	// container has never been mutated.
	LastMutationNanos int64
}

func (t *table) touch() {
	t.lastMutation = tsc.UnixNano()
}

func (t *table) stats() Stats {
	capn := len(t.slots)
	// Scan starting just after an empty slot, so a run that wraps past
	// the end of the array is counted as one run.
	start := 0
	for start < capn && t.slots[start] != nil {
		start++
	}
	longest, run := 0, 0
	if start == capn {
		longest = capn
	}
	for k := 1; start < capn && k <= capn; k++ {
		if t.slots[(start+k)%capn] != nil {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	lf := 0.0
	if capn > 0 {
		lf = float64(t.size) / float64(capn)
	}

	return Stats{
		Size:              t.size,
		NumSlots:          capn,
		LoadFactor:        lf,
		LongestProbeRun:   longest,
		HasAVX2:           hasAVX2,
		LastMutationNanos: t.lastMutation,
	}
}
