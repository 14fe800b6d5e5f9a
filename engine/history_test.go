package engine_test

import (
	"testing"

	"github.com/oliverans/goosesearch/engine"
	gm "github.com/oliverans/goosesearch/goosemg"
)

func TestHistoryBoundedAfterRepeatedUpdates(t *testing.T) {
	var h engine.HistoryTable
	from, to := gm.Square(12), gm.Square(28)

	for i := 0; i < 10000; i++ {
		h.Update(gm.White, from, to, 1000)
	}
	if v := h.Get(gm.White, from, to); v > 12000 || v < -12000 {
		t.Errorf("history value %d exceeds the +/-12000 bound", v)
	}

	for i := 0; i < 10000; i++ {
		h.Update(gm.White, from, to, -1000)
	}
	if v := h.Get(gm.White, from, to); v > 12000 || v < -12000 {
		t.Errorf("history value %d exceeds the +/-12000 bound", v)
	}
}

func TestHistoryDecayShrinksTowardZero(t *testing.T) {
	var h engine.HistoryTable
	from, to := gm.Square(1), gm.Square(2)
	h.Update(gm.Black, from, to, 1000)
	before := h.Get(gm.Black, from, to)

	h.Decay()
	after := h.Get(gm.Black, from, to)

	if after >= before {
		t.Errorf("Decay did not shrink history entry: before=%d after=%d", before, after)
	}
}

func TestHistoryClearZeroesTable(t *testing.T) {
	var h engine.HistoryTable
	h.Update(gm.White, 0, 1, 500)
	h.Clear()
	if v := h.Get(gm.White, 0, 1); v != 0 {
		t.Errorf("expected 0 after Clear, got %d", v)
	}
}
