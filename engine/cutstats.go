package engine

import "fmt"

// CutStatistics collects counts for each pruning/cutoff mechanism, one set
// per Engine so that concurrent Engine values never share counters.
type CutStatistics struct {
	TTCutoffs         uint64
	NullMoveCutoffs   uint64
	StaticNullCutoffs uint64
	RazoringCutoffs   uint64
	FutilityPrunes    uint64
	LateMovePrunes    uint64
	BetaCutoffs       uint64
	QStandPatCutoffs  uint64
	QBetaCutoffs      uint64
}

// dumpCutStats prints the current search's cut statistics as a block of
// "info string" lines, in the teacher's straight-to-stdout UCI style. Gated
// by PrintCutStats so it stays silent unless a debug command turns it on.
func (e *Engine) dumpCutStats() {
	if !e.PrintCutStats {
		return
	}
	fmt.Println("info string Cut statistics:")
	fmt.Printf("info string   TT cutoffs: %d\n", e.cutStats.TTCutoffs)
	fmt.Printf("info string   Null-move cutoffs: %d\n", e.cutStats.NullMoveCutoffs)
	fmt.Printf("info string   Static null cutoffs: %d\n", e.cutStats.StaticNullCutoffs)
	fmt.Printf("info string   Razoring cutoffs: %d\n", e.cutStats.RazoringCutoffs)
	fmt.Printf("info string   Futility prunes: %d\n", e.cutStats.FutilityPrunes)
	fmt.Printf("info string   Late move prunes: %d\n", e.cutStats.LateMovePrunes)
	fmt.Printf("info string   Beta cutoffs: %d\n", e.cutStats.BetaCutoffs)
	fmt.Printf("info string   QStandPat cutoffs: %d\n", e.cutStats.QStandPatCutoffs)
	fmt.Printf("info string   QBeta cutoffs: %d\n", e.cutStats.QBetaCutoffs)
}
