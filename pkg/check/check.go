// Package check implements cross-timeline attack, check and legal-move
// detection (§4.3 CheckDetector, §4.9 CheckmateDetector). It depends on
// pkg/movement for candidate generation and pkg/timeline for the active
// range, but not on pkg/game: a Detector is handed a GameView, a minimal
// read-only projection of the active timelines, to avoid an import cycle
// (pkg/game needs a Detector; a Detector must not need pkg/game).
package check

import (
	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/movement"
	"github.com/Wealth1000/chess-5d/pkg/timeline"
)

// GameView is the read-only projection of Game state the Detector needs:
// the timelines currently counted as active (§3 "active range").
type GameView interface {
	ActiveTimelines() []*timeline.Timeline
}

// Detector answers attack and check queries against a GameView. It
// implements movement.CheckQuery, so it can be threaded into
// movement.Moves for castling's check conditions.
type Detector struct {
	Game GameView
}

// NewDetector returns a Detector bound to the given game view.
func NewDetector(g GameView) *Detector {
	return &Detector{Game: g}
}

// IsSquareAttackedSingle reports whether (x,y) on b is attacked by any
// attackingSide piece already on b, ignoring every other timeline and
// ignoring self-check (§4.3: "no legality filter — attacks ignore
// self-check").
func IsSquareAttackedSingle(b *board.Board, x, y int, attackingSide board.Side) bool {
	for _, p := range b.PiecesOf(attackingSide) {
		for _, v := range movement.Attacks(b, p, b.L) {
			if v.X == x && v.Y == y {
				return true
			}
		}
	}
	return false
}

// boardEquals compares by (l,t), not pointer identity, so a cloned
// stand-in for "the board being tested" still matches the timeline's
// current board when they denote the same (l,t) (§4.3).
func boardEquals(a, b *board.Board) bool {
	return a != nil && b != nil && a.L == b.L && a.T == b.T
}

// IsSquareAttackedCrossTimeline reports whether targetPos is attacked by
// attackingSide from any active timeline's current board, honoring the
// turn-asymmetry rule (§4.3): a timeline's current board only projects an
// attack into targetBoard if its player just moved (current.Turn differs
// from targetBoard.Turn) or it *is* targetBoard itself.
func (d *Detector) IsSquareAttackedCrossTimeline(targetPos board.Vec4, attackingSide board.Side, targetBoard *board.Board) bool {
	for _, tl := range d.Game.ActiveTimelines() {
		cur := tl.Current()
		if cur == nil {
			continue
		}
		if cur.Turn == targetBoard.Turn && !boardEquals(cur, targetBoard) {
			continue
		}
		for _, p := range cur.PiecesOf(attackingSide) {
			for _, v := range movement.Attacks(cur, p, targetPos.L) {
				if v == targetPos {
					return true
				}
			}
		}
	}
	return false
}

// IsKingInCheckCrossTimeline reports whether side's king on b is attacked,
// either by a piece already on b or by any active timeline's current board
// projecting an attack onto it (§4.3).
func (d *Detector) IsKingInCheckCrossTimeline(b *board.Board, side board.Side) bool {
	king := b.King(side)
	if king == nil {
		return false
	}
	attacker := side.Opponent()
	if IsSquareAttackedSingle(b, king.X, king.Y, attacker) {
		return true
	}
	pos := board.NewVec4(king.X, king.Y, b.L, b.T)
	return d.IsSquareAttackedCrossTimeline(pos, attacker, b)
}

// IsAttacked implements movement.CheckQuery: (x,y) on b is attacked by the
// opponent of side, considering both single-board and cross-timeline
// threats.
func (d *Detector) IsAttacked(b *board.Board, x, y int, side board.Side) bool {
	attacker := side.Opponent()
	if IsSquareAttackedSingle(b, x, y, attacker) {
		return true
	}
	pos := board.NewVec4(x, y, b.L, b.T)
	return d.IsSquareAttackedCrossTimeline(pos, attacker, b)
}

// WouldMoveLeaveKingInCheck simulates the bare geometric effect of moving
// piece from its current square to target on a clone of b — ignoring
// promotion, castling and en passant, per §4.3, since only the resulting
// geometric position determines check on b itself — then asks whether the
// mover's own king is in check on that clone. Other timelines' current
// boards are unaffected by a move not yet submitted on this timeline, so
// using them unmodified is exact (§4.3).
func (d *Detector) WouldMoveLeaveKingInCheck(b *board.Board, piece *board.Piece, target board.Vec4) bool {
	clone := b.Clone()
	mover := clone.PieceAt(piece.X, piece.Y)
	if mover == nil {
		panic("check: piece not found on its own board")
	}
	clone.Remove(target.X, target.Y)
	clone.Place(mover, target.X, target.Y)
	return d.IsKingInCheckCrossTimeline(clone, piece.Side)
}
