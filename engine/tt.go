package engine

import (
	"unsafe"

	gm "github.com/oliverans/goosesearch/goosemg"
)

// TT bound flags. EXACT is the bitwise union of LOWER and UPPER so that
// ttFlag&flagForTT(cond) is non-zero precisely when the stored bound cuts
// off the search given cond.
const (
	NoFlag uint8 = 0
	Lower  uint8 = 1
	Upper  uint8 = 2
	Exact  uint8 = Lower | Upper
)

// flagForTT returns the bound an entry needs to carry to be usable when
// failsHigh holds at the probing window.
func flagForTT(failsHigh bool) uint8 {
	if failsHigh {
		return Lower
	}
	return Upper
}

// Entry is one transposition table slot. Mate-score normalization by ply is
// deliberately not performed here (see DESIGN.md) — Value/StaticEval are
// stored and returned exactly as they were computed at the searching ply.
type Entry struct {
	Key        uint64
	Move       gm.Move
	Value      int16
	StaticEval int16
	Depth      int8
	Flag       uint8
}

// TransTable is an always-replace, single-slot-per-index transposition
// table: every probe resolves to exactly one slot (key % len(entries)), and
// every store overwrites whatever was there. No bucketing, no age field —
// a caller may upgrade to N-way buckets behind Probe/Store without changing
// call sites.
type TransTable struct {
	entries []Entry
}

// Resize reallocates the table to fit within mb megabytes and clears it.
// Allocation failure (out-of-memory) is fatal for the core: the search may
// not operate without a table, matching the original's unconditional
// allocation in resize().
func (tt *TransTable) Resize(mb int) {
	entrySize := int(unsafe.Sizeof(Entry{}))
	count := (mb * 1024 * 1024) / entrySize
	if count < 1 {
		count = 1
	}
	tt.entries = make([]Entry, count)
}

// Clear zeros every slot, making every subsequent probe a miss.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Entry{}
	}
}

// Len reports the number of slots currently allocated.
func (tt *TransTable) Len() int { return len(tt.entries) }

func (tt *TransTable) index(key uint64) int {
	return int(key % uint64(len(tt.entries)))
}

// Probe returns the slot key maps to and whether its stored key matches.
// The returned pointer is always valid and may be freely overwritten.
func (tt *TransTable) Probe(key uint64) (*Entry, bool) {
	e := &tt.entries[tt.index(key)]
	return e, e.Flag != NoFlag && e.Key == key
}

// Store writes (unconditionally) the slot for key.
func (tt *TransTable) Store(key uint64, flag uint8, depth int8, move gm.Move, value, staticEval int16) {
	e := &tt.entries[tt.index(key)]
	e.Key = key
	e.Flag = flag
	e.Depth = depth
	e.Move = move
	e.Value = value
	e.StaticEval = staticEval
}
