package movement

import "github.com/Wealth1000/chess-5d/pkg/board"

type dir struct{ dx, dy int }

var (
	rookDirs   = []dir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []dir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([]dir{}, rookDirs...), bishopDirs...)
)

// rayTargets casts from (x,y) along each direction in dirs, stopping at the
// first blocker: it emits every empty square along the way plus, if the ray
// ends on an enemy piece, that square too (§4.2, rook/bishop/queen). Blockers
// are always read off the source board b; only the emitted Vec4 is re-rooted
// onto targetL.
func rayTargets(b *board.Board, x, y int, side board.Side, targetL, targetT int, dirs []dir) []board.Vec4 {
	var ret []board.Vec4
	for _, d := range dirs {
		cx, cy := x+d.dx, y+d.dy
		for 0 <= cx && cx < 8 && 0 <= cy && cy < 8 {
			if b.IsFriendly(cx, cy, side) {
				break
			}
			ret = append(ret, board.NewVec4(cx, cy, targetL, targetT))
			if b.IsEnemy(cx, cy, side) {
				break
			}
			cx, cy = cx+d.dx, cy+d.dy
		}
	}
	return ret
}
