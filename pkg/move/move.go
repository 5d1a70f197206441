// Package move implements the Move engine (§4.4): classification of a
// proposed (piece, target) pair into same-board/inter-dimensional/branch,
// the board cloning and mutation each case requires, undo bookkeeping, and
// the JSON wire format (§6).
package move

import (
	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Kind distinguishes a regular move from a synthesized null move (§4.4
// "Null move", §9: represented as a distinct variant of the move sum type,
// never a fake piece).
type Kind uint8

const (
	Regular Kind = iota
	Null
)

// SourcePieceRef identifies a piece by its pre-move location, for
// serialization and for re-resolving "the current piece" at command time
// (§9: pieces carry no stable identity across snapshots).
type SourcePieceRef struct {
	Type board.Type
	Side board.Side
	X, Y int
}

// Move is the record of one applied move (§3 "Move record"). UsedBoards are
// snapshots whose Active flag flipped to false as a result of this move;
// CreatedBoards are new snapshots appended. Both are required for Undo.
type Move struct {
	Kind Kind

	From, To board.Vec4 // zero value for Null

	SourcePiece SourcePieceRef
	SourceBoard board.Vec4 // (l,t) of the board the piece moved from; x,y unused
	TargetBoard board.Vec4 // (l,t) of the board the piece landed on; x,y unused

	Promote lang.Optional[board.Type]

	IsInterDim bool
	Remote     bool

	// LForNull identifies the timeline padded, for Kind==Null.
	LForNull lang.Optional[int]

	UsedBoards    []*board.Board
	CreatedBoards []*board.Board
}

func (m *Move) String() string {
	if m.Kind == Null {
		l, _ := m.LForNull.V()
		return "null@L" + itoa(l)
	}
	return m.From.String() + "->" + m.To.String()
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
