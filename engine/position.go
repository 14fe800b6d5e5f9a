package engine

import gm "github.com/oliverans/goosesearch/goosemg"

// Position wraps the move generator's board with the read-only accessors and
// mutators the search core needs. goosemg.Board is a plain value type (no
// pointers or slices), so a Position is byte-copyable by value — this is
// exactly the snapshot restoring C3 (the search stack) relies on instead of
// a symmetric undo call.
type Position struct {
	board gm.Board
}

// NewPosition wraps an already-parsed board.
func NewPosition(b gm.Board) Position { return Position{board: b} }

func (p *Position) SideToMove() gm.Color { return p.board.SideToMove() }

func (p *Position) PieceAt(sq gm.Square) gm.Piece { return p.board.PieceAt(sq) }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.board.InCheck(p.board.SideToMove()) }

func (p *Position) Key() uint64 { return p.board.Hash() }

func (p *Position) HalfMoveClock() int { return p.board.HalfmoveClock() }

// HasNonPawns reports whether color has any piece besides pawns and king —
// used to gate null-move pruning (zugzwang risk in pawn-only endgames).
func (p *Position) HasNonPawns(c gm.Color) bool {
	bb := p.board.Bitboards(c)
	return bb.Knights|bb.Bishops|bb.Rooks|bb.Queens != 0
}

// IsQuiet reports whether a move is neither a capture, an en-passant
// capture, nor a promotion.
func (p *Position) IsQuiet(m gm.Move) bool {
	return m.CapturedPiece() == gm.NoPiece && m.PromotionPiece() == gm.NoPiece
}

// Moves returns the fully legal moves at this position. goosemg resolves
// pins and check evasion internally during generation (computeCheckAndPins),
// collapsing the external collaborator's assumed pseudo-legal-then-isLegal
// split into a single legal list; IsLegal below degenerates to membership
// in that list.
func (p *Position) Moves() []gm.Move { return p.board.GenerateMoves() }

// AggressiveMoves returns captures and promotions, the noisy-move set
// quiescence searches. Quiet check-giving moves are not included — goosemg's
// GenerateChecksInto would re-run full legal generation and make/unmake each
// candidate to test for check, which is too costly to pay on every
// quiescence node for a set this engine's qsearch does not strictly require.
func (p *Position) AggressiveMoves() []gm.Move {
	moves := p.board.GenerateCapturesInto(make([]gm.Move, 0, 64))
	for _, m := range p.board.GenerateQuietsInto(make([]gm.Move, 0, 64)) {
		if m.PromotionPiece() != gm.NoPiece {
			moves = append(moves, m)
		}
	}
	return moves
}

// IsLegal reports whether m is present in the current legal move list. Used
// to guard a stale TT move or killer that no longer applies to this
// position, not as a standalone legality solver.
func (p *Position) IsLegal(m gm.Move) bool {
	for _, cand := range p.Moves() {
		if cand == m {
			return true
		}
	}
	return false
}

// SeeGE reports whether the static-exchange estimate of m's outcome is at
// least threshold centipawns. See see.go.
func (p *Position) SeeGE(m gm.Move, threshold int) bool {
	return see(&p.board, m) >= threshold
}

// DoMove plays m, mutating the position in place. The bool result mirrors
// goosemg.Board.MakeMove: false means m left the mover's own king in check
// and the board was left unchanged (should not happen for moves drawn from
// Moves(), which are already filtered legal).
func (p *Position) DoMove(m gm.Move) (bool, gm.MoveState) {
	return p.board.MakeMove(m)
}

func (p *Position) UndoMove(m gm.Move, st gm.MoveState) { p.board.UnmakeMove(m, st) }

func (p *Position) DoNullMove() gm.NullState { return p.board.MakeNullMove() }

func (p *Position) UndoNullMove(st gm.NullState) { p.board.UnmakeNullMove(st) }

// Snapshot returns a value copy of the underlying board, suitable for
// posStack[ply] storage.
func (p *Position) Snapshot() Position { return Position{board: p.board} }

// Restore overwrites the position with a previously taken snapshot.
func (p *Position) Restore(snap Position) { p.board = snap.board }

func (p *Position) Board() *gm.Board { return &p.board }
