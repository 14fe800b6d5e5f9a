package engine_test

import (
	"testing"

	"github.com/oliverans/goosesearch/engine"
	gm "github.com/oliverans/goosesearch/goosemg"
)

func TestTransTableStoreProbeRoundTrip(t *testing.T) {
	var tt engine.TransTable
	tt.Resize(1)

	const key = uint64(0xABCD1234)
	tt.Store(key, engine.Exact, 5, gm.Move(0), 123, 45)

	entry, hit := tt.Probe(key)
	if !hit {
		t.Fatal("expected hit after store")
	}
	if entry.Value != 123 || entry.StaticEval != 45 || entry.Depth != 5 || entry.Flag != engine.Exact {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestTransTableMissOnDifferentKey(t *testing.T) {
	var tt engine.TransTable
	tt.Resize(1)
	tt.Store(1, engine.Exact, 1, gm.Move(0), 0, 0)

	// A key landing on the same slot but with a different key value misses.
	slotCount := uint64(tt.Len())
	otherKey := 1 + slotCount
	if _, hit := tt.Probe(otherKey); hit {
		t.Errorf("expected miss for a key that never collided into this slot")
	}
}

func TestTransTableClear(t *testing.T) {
	var tt engine.TransTable
	tt.Resize(1)
	tt.Store(7, engine.Exact, 3, gm.Move(0), 10, 10)
	tt.Clear()
	if _, hit := tt.Probe(7); hit {
		t.Error("expected miss after Clear")
	}
}
