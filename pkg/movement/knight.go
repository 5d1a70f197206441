package movement

import "github.com/Wealth1000/chess-5d/pkg/board"

var knightOffsets = []dir{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// knightTargets returns the (up to) eight L-shaped targets from (x,y):
// capture-or-empty, no ray casting (§4.2, §8 P6).
func knightTargets(b *board.Board, x, y int, side board.Side, targetL, targetT int) []board.Vec4 {
	var ret []board.Vec4
	for _, o := range knightOffsets {
		cx, cy := x+o.dx, y+o.dy
		if cx < 0 || cx >= 8 || cy < 0 || cy >= 8 {
			continue
		}
		if b.IsFriendly(cx, cy, side) {
			continue
		}
		ret = append(ret, board.NewVec4(cx, cy, targetL, targetT))
	}
	return ret
}
