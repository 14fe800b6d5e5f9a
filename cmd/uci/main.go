// Command uci runs the search core as a UCI engine talking to a GUI or
// scripted opponent over stdin/stdout, in the teacher's bufio-loop style.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/oliverans/goosesearch/engine"
	gm "github.com/oliverans/goosesearch/goosemg"
)

func atoi(s string) int { v, _ := strconv.Atoi(s); return v }

// findMove resolves a UCI move string against the position's legal moves,
// since building a Move value from scratch would leave its captured-piece
// and flag bits unpopulated and unequal to the generator's own value.
func findMove(pos *engine.Position, uciMove string) (gm.Move, bool) {
	for _, m := range pos.Moves() {
		if strings.EqualFold(m.String(), uciMove) {
			return m, true
		}
	}
	return gm.Move(0), false
}

func main() {
	reader := bufio.NewReader(os.Stdin)
	e := engine.NewEngine()
	var history []uint64

	setPosition := func(fen string, moves []string) {
		board, err := gm.ParseFEN(fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid fen: %v\n", err)
			return
		}
		pos := engine.NewPosition(*board)
		history = history[:0]
		for _, uciMove := range moves {
			m, ok := findMove(&pos, uciMove)
			if !ok {
				fmt.Fprintf(os.Stderr, "info string illegal move in position command: %s\n", uciMove)
				break
			}
			history = append(history, pos.Key())
			pos.DoMove(m)
		}
		e.SetPosition(pos, history)
	}
	setPosition(gm.FENStartPos, nil)

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if err != nil {
				return
			}
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "uci":
			fmt.Println("id name goosesearch")
			fmt.Println("id author oliverans")
			fmt.Println("option name Hash type spin default 16 min 1 max 4096")
			fmt.Println("uciok")

		case "isready":
			fmt.Println("readyok")

		case "ucinewgame":
			e.NewGame()
			setPosition(gm.FENStartPos, nil)

		case "setoption":
			applySetOption(e, fields)

		case "position":
			if len(fields) < 2 {
				continue
			}
			var fen string
			var moves []string
			if fields[1] == "startpos" {
				fen = gm.FENStartPos
				if idx := indexOf(fields, "moves"); idx != -1 {
					moves = fields[idx+1:]
				}
			} else if fields[1] == "fen" {
				rest := fields[2:]
				if idx := indexOf(rest, "moves"); idx != -1 {
					fen = strings.Join(rest[:idx], " ")
					moves = rest[idx+1:]
				} else {
					fen = strings.Join(rest, " ")
				}
			}
			setPosition(fen, moves)

		case "go":
			limits := parseGoLimits(fields)
			// StartSearch runs on its own goroutine so "stop" (read on this
			// same stdin loop) can reach RequestStop while the search is
			// still in flight.
			go func() {
				best := e.StartSearch(limits)
				fmt.Printf("bestmove %s\n", best.String())
			}()

		case "stop":
			e.RequestStop()

		case "debug":
			e.PrintCutStats = len(fields) > 1 && fields[1] == "on"

		case "quit":
			return
		}
	}
}

func indexOf(fields []string, target string) int {
	for i, f := range fields {
		if f == target {
			return i
		}
	}
	return -1
}

func applySetOption(e *engine.Engine, fields []string) {
	nameIdx := indexOf(fields, "name")
	valueIdx := indexOf(fields, "value")
	if nameIdx == -1 || valueIdx == -1 || valueIdx <= nameIdx {
		return
	}
	name := strings.Join(fields[nameIdx+1:valueIdx], " ")
	value := strings.Join(fields[valueIdx+1:], " ")
	if strings.EqualFold(name, "Hash") {
		e.TT.Resize(atoi(value))
	}
}

func parseGoLimits(fields []string) engine.SearchLimits {
	var limits engine.SearchLimits
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				limits.Depth = atoi(fields[i+1])
				limits.HasAny = true
			}
		case "nodes":
			if i+1 < len(fields) {
				limits.Nodes = uint64(atoi(fields[i+1]))
				limits.HasAny = true
			}
		case "wtime":
			if i+1 < len(fields) {
				limits.WTime = atoi(fields[i+1])
				limits.HasAny = true
			}
		case "btime":
			if i+1 < len(fields) {
				limits.BTime = atoi(fields[i+1])
				limits.HasAny = true
			}
		case "winc":
			if i+1 < len(fields) {
				limits.WInc = atoi(fields[i+1])
			}
		case "binc":
			if i+1 < len(fields) {
				limits.BInc = atoi(fields[i+1])
			}
		case "movetime":
			if i+1 < len(fields) {
				limits.MoveTime = atoi(fields[i+1])
				limits.HasAny = true
			}
		case "infinite":
			limits.Infinite = true
			limits.HasAny = true
		}
	}
	return limits
}
