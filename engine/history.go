package engine

import gm "github.com/oliverans/goosesearch/goosemg"

const historyBound = 12000

// HistoryTable is mainHistory[color][from*64+to], persisted across searches
// and decayed (not cleared) at the start of each new search.
type HistoryTable struct {
	table [2][64 * 64]int
}

func (h *HistoryTable) Get(c gm.Color, from, to gm.Square) int {
	return h.table[c][int(from)*64+int(to)]
}

// Decay shrinks every entry toward zero by 1/5 at the start of startSearch,
// so history from several searches ago stops dominating move ordering
// without being thrown away outright.
func (h *HistoryTable) Decay() {
	for c := 0; c < 2; c++ {
		for i := range h.table[c] {
			h.table[c][i] -= h.table[c][i] / 5
		}
	}
}

func (h *HistoryTable) Clear() {
	h.table = [2][64 * 64]int{}
}

// statBonus is the history credit awarded for a beta-cutoff at depth d.
func statBonus(d int) int {
	b := 2*d*d + 16*d
	if b > 1000 {
		return 1000
	}
	return b
}

// Update nudges the from/to entry toward the bonus, with the standard
// gravity term so repeated updates saturate at +/-historyBound rather than
// overflowing past it.
func (h *HistoryTable) Update(c gm.Color, from, to gm.Square, bonus int) {
	idx := int(from)*64 + int(to)
	v := h.table[c][idx]
	v += bonus - v*absInt(bonus)/historyBound
	if v > historyBound {
		v = historyBound
	} else if v < -historyBound {
		v = -historyBound
	}
	h.table[c][idx] = v
}

