// Package movement enumerates per-type candidate moves (§4.2): a finite
// sequence of target squares that the caller (pkg/check for attacks, pkg/move
// for legality) filters further. Movement never mutates a board and never
// itself rejects a move for leaving the mover's own king in check — that is
// pkg/check's job.
package movement

import (
	"github.com/Wealth1000/chess-5d/pkg/board"
)

// CheckQuery answers whether (x,y) on b is attacked by the opponent of side,
// considering both single-board and cross-timeline threats. It is the one
// piece of outside knowledge King/castling needs; it is expressed as an
// interface here (rather than importing pkg/check) so pkg/check, which
// itself calls into movement.Attacks, does not form an import cycle with
// this package. pkg/check.Detector implements it.
type CheckQuery interface {
	IsAttacked(b *board.Board, x, y int, side board.Side) bool
}

// Moves returns the candidate target squares for p moving on its own board
// b, at turn b.T+1, on p's own timeline. This is the "ordinary legal move"
// query: it includes castling for a king meeting all of §4.2's conditions.
// q may be nil, in which case castling is never emitted (no way to test the
// check conditions) — callers that care about castling must supply one.
func Moves(b *board.Board, p *board.Piece, q CheckQuery) []board.Vec4 {
	switch p.Type {
	case board.Pawn:
		return pawnMoves(b, p)
	case board.Knight:
		return knightTargets(b, p.X, p.Y, p.Side, b.L, b.T+1)
	case board.Bishop:
		return rayTargets(b, p.X, p.Y, p.Side, b.L, b.T+1, bishopDirs)
	case board.Rook:
		return rayTargets(b, p.X, p.Y, p.Side, b.L, b.T+1, rookDirs)
	case board.Queen:
		return rayTargets(b, p.X, p.Y, p.Side, b.L, b.T+1, queenDirs)
	case board.King:
		return kingMoves(b, p, q)
	default:
		return nil
	}
}

// Attacks returns the squares p attacks, re-rooted onto targetL (pass p's
// own board's L for a same-timeline query). Attacks never include castling
// and never consult check state: attacking a square is a pure geometric
// fact, even if making the underlying move would be illegal (§4.3).
func Attacks(b *board.Board, p *board.Piece, targetL int) []board.Vec4 {
	switch p.Type {
	case board.Pawn:
		return pawnAttacks(b, p, targetL)
	case board.Knight:
		return knightTargets(b, p.X, p.Y, p.Side, targetL, b.T+1)
	case board.Bishop:
		return rayTargets(b, p.X, p.Y, p.Side, targetL, b.T+1, bishopDirs)
	case board.Rook:
		return rayTargets(b, p.X, p.Y, p.Side, targetL, b.T+1, rookDirs)
	case board.Queen:
		return rayTargets(b, p.X, p.Y, p.Side, targetL, b.T+1, queenDirs)
	case board.King:
		return kingSteps(p.X, p.Y, targetL, b.T+1)
	default:
		return nil
	}
}
