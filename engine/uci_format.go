package engine

import (
	"fmt"
	"strings"
)

// formatScore renders a Value as a UCI "cp <n>" or "mate <k>" token.
func formatScore(score Value) string {
	if score >= ValueMateInMaxPly {
		plies := int(ValueMate - score)
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if score <= -ValueMateInMaxPly {
		plies := int(ValueMate + score)
		return fmt.Sprintf("mate %d", -(plies+1)/2)
	}
	return fmt.Sprintf("cp %d", int(score))
}

// InfoLine formats one "info ..." line for a completed iteration, in the
// same fmt.Printf-straight-to-stdout spirit the teacher writes UCI output
// in — returned as a string; StartSearch prints it with fmt.Println after
// each completed iteration.
func (e *Engine) InfoLine(depth, selDepth int, score Value) string {
	elapsedMs := e.elapsed().Milliseconds()
	if elapsedMs < 1 {
		elapsedMs = 1
	}
	nps := e.nodesSearched * 1000 / uint64(elapsedMs)

	root := e.ss4(0)
	var pv strings.Builder
	for i := 0; i < root.PVLength; i++ {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(root.PV[i].String())
	}

	return fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		depth, selDepth, formatScore(score), e.nodesSearched, nps, elapsedMs, pv.String())
}
