package movement

import "github.com/Wealth1000/chess-5d/pkg/board"

var kingOffsets = []dir{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// kingSteps returns the (up to) eight in-bounds one-step neighbors, whatever
// occupies them: this is the king's attack set. kingMoves drops the squares
// held by the king's own side.
func kingSteps(x, y, targetL, targetT int) []board.Vec4 {
	var ret []board.Vec4
	for _, o := range kingOffsets {
		cx, cy := x+o.dx, y+o.dy
		if cx < 0 || cx >= 8 || cy < 0 || cy >= 8 {
			continue
		}
		ret = append(ret, board.NewVec4(cx, cy, targetL, targetT))
	}
	return ret
}

// kingMoves returns the king's one-step neighbors, capture-or-empty, plus, if
// all of §4.2's conditions hold, castling targets on the g-file (kingside,
// x=6) and/or c-file (queenside, x=2).
func kingMoves(b *board.Board, p *board.Piece, q CheckQuery) []board.Vec4 {
	var ret []board.Vec4
	for _, v := range kingSteps(p.X, p.Y, b.L, b.T+1) {
		if !b.IsFriendly(v.X, v.Y, p.Side) {
			ret = append(ret, v)
		}
	}
	if q == nil || p.Side != b.Turn {
		return ret
	}

	home := board.HomeRank(p.Side)
	if p.X != 4 || p.Y != home || p.HasMoved {
		return ret
	}
	if q.IsAttacked(b, p.X, p.Y, p.Side) {
		return ret // currently in check: no castling
	}

	if right := castlingTarget(b, p, q, home, 7, 6, []int{5, 6}); right != nil {
		ret = append(ret, *right)
	}
	if left := castlingTarget(b, p, q, home, 0, 2, []int{1, 2, 3}); left != nil {
		ret = append(ret, *left)
	}
	return ret
}

// castlingTarget checks the rook on (rookX, home), the emptiness of
// between (all x in betweenX at rank home), and that the king does not
// pass through check on any square from (4,home) through (kingTargetX,home)
// inclusive. Returns the castling target Vec4 if legal, else nil.
func castlingTarget(b *board.Board, p *board.Piece, q CheckQuery, home, rookX, kingTargetX int, betweenX []int) *board.Vec4 {
	rook := b.PieceAt(rookX, home)
	if rook == nil || rook.Type != board.Rook || rook.Side != p.Side || rook.HasMoved {
		return nil
	}
	for _, x := range betweenX {
		if !b.IsEmpty(x, home) {
			return nil
		}
	}

	step := 1
	if kingTargetX < 4 {
		step = -1
	}
	for x := 4; ; x += step {
		if x != 4 && passesThroughCheck(b, p, x, home, q) {
			return nil
		}
		if x == kingTargetX {
			break
		}
	}

	target := board.NewVec4(kingTargetX, home, b.L, b.T+1)
	return &target
}

// passesThroughCheck simulates the king standing on (x, home) by cloning b
// and placing the king there, then asks q whether that square is attacked
// (§4.2: "simulated on a cloned board").
func passesThroughCheck(b *board.Board, king *board.Piece, x, home int, q CheckQuery) bool {
	clone := b.Clone()
	clone.Remove(king.X, king.Y)
	kc := king.Clone()
	clone.Place(kc, x, home)
	return q.IsAttacked(clone, x, home, king.Side)
}
