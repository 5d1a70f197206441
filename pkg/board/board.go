// Package board contains the 8x8 snapshot representation shared by every
// timeline: coordinates, piece types, castling rights and the square grid
// itself. A Board is immutable by convention once a successor has been
// derived from it (§3); callers clone-on-write instead of mutating in place.
package board

import (
	"fmt"
	"strings"
)

// Board is one immutable-by-convention 8x8 snapshot belonging to exactly one
// (L, T) slot of one Timeline. Boards are never mutated once a successor
// board exists that was derived from them; pkg/move clones on write.
type Board struct {
	L, T int
	Turn Side // side to move on this board

	squares [8][8]*Piece

	Active  bool
	Deleted bool

	Castling      Castling
	EnPassant     *Vec4 // target square a pawn may capture en passant onto, if any
	ImminentCheck bool
}

// NewBoard returns an empty board at the given (l, t) with the side to move
// computed from the 5D parity rule (§3 invariant 5): turn = (t + side_of(l)) mod 2.
func NewBoard(l, t int) *Board {
	return &Board{
		L:        l,
		T:        t,
		Turn:     turnFor(l, t),
		Active:   true,
		Castling: FullCastlingRights,
	}
}

func turnFor(l, t int) Side {
	side := SideOfTimeline(l)
	parity := (t%2 + 2) % 2
	if parity == 0 {
		return side
	}
	return side.Opponent()
}

// PieceAt returns the piece on (x, y), or nil if empty or out of bounds.
// Out-of-bounds access never faults; it answers "empty" (§4.1).
func (b *Board) PieceAt(x, y int) *Piece {
	if !inBounds(x, y) {
		return nil
	}
	return b.squares[x][y]
}

// IsEmpty reports whether (x, y) has no piece. Out-of-bounds squares are
// considered empty.
func (b *Board) IsEmpty(x, y int) bool {
	return b.PieceAt(x, y) == nil
}

// IsEnemy reports whether (x, y) holds a piece of the opposing side. Out-of-
// bounds squares are never enemy.
func (b *Board) IsEnemy(x, y int, side Side) bool {
	p := b.PieceAt(x, y)
	return p != nil && p.Side != side
}

// IsFriendly reports whether (x, y) holds a piece of the given side.
func (b *Board) IsFriendly(x, y int, side Side) bool {
	p := b.PieceAt(x, y)
	return p != nil && p.Side == side
}

func inBounds(x, y int) bool {
	return 0 <= x && x < 8 && 0 <= y && y < 8
}

// Place sets the square (x,y) to p (which is updated in place to record its
// new position), replacing and removing whatever piece was previously there.
func (b *Board) Place(p *Piece, x, y int) {
	if cur := b.squares[x][y]; cur != nil {
		cur.Removed = true
	}
	p.X, p.Y = x, y
	b.squares[x][y] = p
}

// Remove clears the square (x, y), marking any occupant Removed.
func (b *Board) Remove(x, y int) {
	if !inBounds(x, y) {
		return
	}
	if p := b.squares[x][y]; p != nil {
		p.Removed = true
		b.squares[x][y] = nil
	}
}

// King returns the king belonging to side, if present on this board.
func (b *Board) King(side Side) *Piece {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if p := b.squares[x][y]; p != nil && p.Side == side && p.Type == King {
				return p
			}
		}
	}
	return nil
}

// Pieces returns every non-nil piece currently on the board, in row-major
// order. The returned slice is a fresh copy; mutating it does not affect
// the board.
func (b *Board) Pieces() []*Piece {
	var ret []*Piece
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if p := b.squares[x][y]; p != nil {
				ret = append(ret, p)
			}
		}
	}
	return ret
}

// PiecesOf returns every piece belonging to side, in row-major order.
func (b *Board) PiecesOf(side Side) []*Piece {
	var ret []*Piece
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if p := b.squares[x][y]; p != nil && p.Side == side {
				ret = append(ret, p)
			}
		}
	}
	return ret
}

// Clone returns a deep copy of the board at the same (L, T): every piece is
// deep-copied (preserving HasMoved, per §3 Piece lifecycle), so the clone
// shares no mutable state with the original. Active/Deleted/ImminentCheck
// are copied verbatim; the caller is expected to adjust them (§4.4).
func (b *Board) Clone() *Board {
	cp := &Board{
		L:             b.L,
		T:             b.T,
		Turn:          b.Turn,
		Active:        b.Active,
		Deleted:       b.Deleted,
		Castling:      b.Castling,
		ImminentCheck: b.ImminentCheck,
	}
	if b.EnPassant != nil {
		ep := *b.EnPassant
		cp.EnPassant = &ep
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if p := b.squares[x][y]; p != nil {
				cp.squares[x][y] = p.Clone()
			}
		}
	}
	return cp
}

// CloneAt returns a deep copy of the board re-rooted at (l, t), with the
// side to move recomputed for the new slot. Used when a move advances a
// board forward in turn or branches it into a new timeline (§4.4).
func (b *Board) CloneAt(l, t int) *Board {
	cp := b.Clone()
	cp.L, cp.T = l, t
	cp.Turn = turnFor(l, t)
	return cp
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "board{l=%d,t=%d,turn=%v,active=%v}\n", b.L, b.T, b.Turn, b.Active)
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			fmt.Fprint(&sb, b.squares[x][y].String())
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
