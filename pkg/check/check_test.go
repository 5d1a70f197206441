package check_test

import (
	"testing"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/check"
	"github.com/Wealth1000/chess-5d/pkg/timeline"
	"github.com/stretchr/testify/assert"
)

type fakeView struct {
	timelines []*timeline.Timeline
}

func (f *fakeView) ActiveTimelines() []*timeline.Timeline { return f.timelines }

func TestIsSquareAttackedSingle(t *testing.T) {
	b := board.NewBoard(0, 0)
	rook := board.NewPiece(board.White, board.Rook, 0, 0)
	b.Place(rook, 0, 0)

	assert.True(t, check.IsSquareAttackedSingle(b, 0, 5, board.White))
	assert.False(t, check.IsSquareAttackedSingle(b, 5, 5, board.White))
}

func TestIsKingInCheckSingleBoard(t *testing.T) {
	b := board.NewBoard(0, 0)
	king := board.NewPiece(board.White, board.King, 4, 7)
	b.Place(king, 4, 7)
	rook := board.NewPiece(board.Black, board.Rook, 4, 0)
	b.Place(rook, 4, 0)

	d := check.NewDetector(&fakeView{timelines: []*timeline.Timeline{timeline.New(b)}})
	assert.True(t, d.IsKingInCheckCrossTimeline(b, board.White))
}

func TestWouldMoveLeaveKingInCheckBlocksPinnedPiece(t *testing.T) {
	b := board.NewBoard(0, 0)
	king := board.NewPiece(board.White, board.King, 4, 7)
	b.Place(king, 4, 7)
	pinned := board.NewPiece(board.White, board.Bishop, 4, 6)
	b.Place(pinned, 4, 6)
	rook := board.NewPiece(board.Black, board.Rook, 4, 0)
	b.Place(rook, 4, 0)

	d := check.NewDetector(&fakeView{timelines: []*timeline.Timeline{timeline.New(b)}})

	// Moving the pinned bishop off the file exposes the king (P4).
	assert.True(t, d.WouldMoveLeaveKingInCheck(b, pinned, board.NewVec4(5, 5, 0, 1)))
}

func TestLegalMovesForExcludesSelfCheck(t *testing.T) {
	b := board.NewBoard(0, 0)
	king := board.NewPiece(board.White, board.King, 4, 7)
	b.Place(king, 4, 7)
	pinned := board.NewPiece(board.White, board.Bishop, 4, 6)
	b.Place(pinned, 4, 6)
	rook := board.NewPiece(board.Black, board.Rook, 4, 0)
	b.Place(rook, 4, 0)

	d := check.NewDetector(&fakeView{timelines: []*timeline.Timeline{timeline.New(b)}})

	got := d.LegalMovesFor(b, pinned)
	assert.Empty(t, got, "a pinned bishop has no legal diagonal moves off the file")
}

func TestLegalMovesForCheckmate(t *testing.T) {
	// Simple mate shape: white king cornered, black queen (guarded by the
	// black king) delivers mate with no escape or block available.
	b := board.NewBoard(0, 0)
	b.Turn = board.White
	wk := board.NewPiece(board.White, board.King, 0, 7)
	b.Place(wk, 0, 7)
	bq := board.NewPiece(board.Black, board.Queen, 1, 6)
	b.Place(bq, 1, 6)
	bk := board.NewPiece(board.Black, board.King, 2, 5)
	b.Place(bk, 2, 5)

	d := check.NewDetector(&fakeView{timelines: []*timeline.Timeline{timeline.New(b)}})
	assert.True(t, d.IsKingInCheckCrossTimeline(b, board.White))
	for _, p := range b.PiecesOf(board.White) {
		assert.Empty(t, d.LegalMovesFor(b, p), "no white piece has a legal move in this mate")
	}
}
