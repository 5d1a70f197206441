package movement

import "github.com/Wealth1000/chess-5d/pkg/board"

// pawnDir returns the pawn's forward y-step: black advances +y, white -y (§4.2).
func pawnDir(side board.Side) int {
	if side == board.White {
		return -1
	}
	return 1
}

func pawnHomeY(side board.Side) int {
	if side == board.White {
		return 6
	}
	return 1
}

// pawnMoves returns the pawn's forward push(es), diagonal captures, and
// en-passant capture, as candidates on the pawn's own timeline at T+1.
// Promotion is signalled implicitly (landing on the far rank); the caller
// distinguishes by rank, not by a separate move type (§4.2).
func pawnMoves(b *board.Board, p *board.Piece) []board.Vec4 {
	var ret []board.Vec4
	dy := pawnDir(p.Side)
	targetL, targetT := b.L, b.T+1

	fy := p.Y + dy
	if 0 <= fy && fy < 8 && b.IsEmpty(p.X, fy) {
		ret = append(ret, board.NewVec4(p.X, fy, targetL, targetT))

		fy2 := p.Y + 2*dy
		if !p.HasMoved && p.Y == pawnHomeY(p.Side) && 0 <= fy2 && fy2 < 8 && b.IsEmpty(p.X, fy2) {
			ret = append(ret, board.NewVec4(p.X, fy2, targetL, targetT))
		}
	}

	for _, dx := range []int{-1, 1} {
		cx, cy := p.X+dx, p.Y+dy
		if cx < 0 || cx >= 8 || cy < 0 || cy >= 8 {
			continue
		}
		if b.IsEnemy(cx, cy, p.Side) {
			ret = append(ret, board.NewVec4(cx, cy, targetL, targetT))
			continue
		}
		if ep := b.EnPassant; ep != nil && ep.X == cx && ep.Y == cy && ep.L == b.L && ep.T == b.T {
			ret = append(ret, board.NewVec4(cx, cy, targetL, targetT))
		}
	}
	return ret
}

// pawnAttacks returns the pawn's two diagonal attack squares, re-rooted onto
// targetL, regardless of occupancy: attacking a square is a geometric fact
// used by check detection, independent of what (if anything) sits there.
func pawnAttacks(b *board.Board, p *board.Piece, targetL int) []board.Vec4 {
	var ret []board.Vec4
	dy := pawnDir(p.Side)
	for _, dx := range []int{-1, 1} {
		cx, cy := p.X+dx, p.Y+dy
		if cx < 0 || cx >= 8 || cy < 0 || cy >= 8 {
			continue
		}
		ret = append(ret, board.NewVec4(cx, cy, targetL, b.T+1))
	}
	return ret
}
