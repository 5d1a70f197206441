package check

import (
	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/movement"
)

// LegalMovesFor returns p's candidate moves on b, filtered to those that do
// not leave p's own king in check (§6 legal_moves_for, §8 P4).
func (d *Detector) LegalMovesFor(b *board.Board, p *board.Piece) []board.Vec4 {
	var ret []board.Vec4
	for _, v := range movement.Moves(b, p, d) {
		if !d.WouldMoveLeaveKingInCheck(b, p, v) {
			ret = append(ret, v)
		}
	}
	return ret
}

// DisplayedChecks returns the board coordinates of every king, across every
// active timeline's current board, currently in cross-timeline check (§6
// observed field displayed_checks).
func (d *Detector) DisplayedChecks() []board.Vec4 {
	var ret []board.Vec4
	for _, tl := range d.Game.ActiveTimelines() {
		cur := tl.Current()
		if cur == nil {
			continue
		}
		for _, side := range []board.Side{board.White, board.Black} {
			king := cur.King(side)
			if king == nil {
				continue
			}
			if d.IsKingInCheckCrossTimeline(cur, side) {
				ret = append(ret, board.NewVec4(king.X, king.Y, cur.L, cur.T))
			}
		}
	}
	return ret
}
