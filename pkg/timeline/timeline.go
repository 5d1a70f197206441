// Package timeline holds the ordered sequence of boards that make up one
// timeline index l (§3 Timeline, §4.4 case 3 "branch into the past"). A
// Timeline owns its boards; boards are appended, never mutated once a
// successor has been derived.
package timeline

import "github.com/Wealth1000/chess-5d/pkg/board"

// Timeline is the append-only sequence of boards sharing one timeline
// index L, from turn Start to turn End inclusive. Boards[t-Start] is nil
// only transiently, mid-undo.
type Timeline struct {
	L          int
	Start, End int
	Boards     []*board.Board
	Active     bool
}

// New returns a new timeline starting at (and currently ending at) the
// given board, which must already have L and T set appropriately.
func New(b *board.Board) *Timeline {
	return &Timeline{
		L:      b.L,
		Start:  b.T,
		End:    b.T,
		Boards: []*board.Board{b},
		Active: true,
	}
}

// Current returns the timeline's latest board (§3 invariant: Boards[end-start]
// is non-null and is the current board).
func (tl *Timeline) Current() *board.Board {
	return tl.At(tl.End)
}

// At returns the board at turn t, or nil if t is out of [Start, End] or the
// slot was popped mid-undo.
func (tl *Timeline) At(t int) *board.Board {
	i := t - tl.Start
	if i < 0 || i >= len(tl.Boards) {
		return nil
	}
	return tl.Boards[i]
}

// Append adds b (whose T must be End+1) as the new current board. It does
// not touch the previous current board's Active flag; callers mark that
// board inactive themselves.
func (tl *Timeline) Append(b *board.Board) {
	if b.T != tl.End+1 {
		panic("timeline: append must be contiguous")
	}
	tl.Boards = append(tl.Boards, b)
	tl.End = b.T
}

// PopCurrent removes and returns the current (last) board, used by undo of a
// created board. Panics if there is nothing to pop below Start, an invariant
// violation (§7 kind 2): undo is only ever called for a board this move
// itself created.
func (tl *Timeline) PopCurrent() *board.Board {
	if len(tl.Boards) == 0 {
		panic("timeline: pop on empty timeline")
	}
	b := tl.Boards[len(tl.Boards)-1]
	tl.Boards = tl.Boards[:len(tl.Boards)-1]
	tl.End--
	return b
}

// IsEmpty reports whether the timeline has no boards left (all popped by
// undo) — such a timeline must be removed from the game (§4.4 Undo).
func (tl *Timeline) IsEmpty() bool {
	return len(tl.Boards) == 0
}

// ReadyToSubmit reports whether the timeline is active and has caught up to
// present, i.e. has nothing more required of it before a submit (§3).
func (tl *Timeline) ReadyToSubmit(present int) bool {
	return tl.Active && tl.End >= present
}
