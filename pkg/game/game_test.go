package game_test

import (
	"context"
	"testing"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/game"
	"github.com/Wealth1000/chess-5d/pkg/timeline"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandardGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(context.Background(), game.GameOptions{Variant: "standard"})
	require.NoError(t, err)
	return g
}

func TestNewGameStandardSetup(t *testing.T) {
	g := newStandardGame(t)

	assert.Equal(t, board.White, g.Turn())
	assert.Equal(t, 0, g.Present())
	assert.False(t, g.Finished())

	tl := g.GetTimeline(0)
	require.NotNil(t, tl)
	assert.Equal(t, 0, tl.End)
}

func TestScenario1PawnPushAndUndo(t *testing.T) {
	g := newStandardGame(t)

	from := board.NewVec4(4, 6, 0, 0)
	to := board.NewVec4(4, 5, 0, 1)

	ok := g.MakeMove(context.Background(), from, to, lang.Optional[board.Type]{})
	require.True(t, ok)

	tl := g.GetTimeline(0)
	assert.Equal(t, 1, tl.End)
	cur := tl.Current()
	assert.NotNil(t, cur.PieceAt(4, 5))
	assert.Nil(t, cur.PieceAt(4, 6))
	assert.False(t, tl.At(0).Active)

	require.True(t, g.Undo(context.Background()))
	assert.Equal(t, 0, tl.End)
	assert.True(t, tl.At(0).Active)
}

func TestMakeMoveRejectsWrongSide(t *testing.T) {
	g := newStandardGame(t)

	// Black pawn, but it's white's turn.
	from := board.NewVec4(4, 1, 0, 0)
	to := board.NewVec4(4, 2, 0, 1)
	assert.False(t, g.MakeMove(context.Background(), from, to, lang.Optional[board.Type]{}))
}

func TestMakeMoveRejectsSecondMoveOnSameTimelineThisCycle(t *testing.T) {
	g := newStandardGame(t)
	ctx := context.Background()

	from := board.NewVec4(4, 6, 0, 0)
	to := board.NewVec4(4, 5, 0, 1)
	require.True(t, g.MakeMove(ctx, from, to, lang.Optional[board.Type]{}))

	from2 := board.NewVec4(3, 6, 0, 0)
	to2 := board.NewVec4(3, 5, 0, 1)
	assert.False(t, g.MakeMove(ctx, from2, to2, lang.Optional[board.Type]{}))
}

func TestSubmitFlipsTurnAndClearsBuffer(t *testing.T) {
	g := newStandardGame(t)
	ctx := context.Background()

	from := board.NewVec4(4, 6, 0, 0)
	to := board.NewVec4(4, 5, 0, 1)
	require.True(t, g.MakeMove(ctx, from, to, lang.Optional[board.Type]{}))

	res := g.Submit(ctx)
	assert.True(t, res.Submitted)
	assert.Equal(t, board.Black, g.Turn())
	assert.Empty(t, g.CurrentTurnMoves())
}

func TestScenario2CaptureCreatesNextTurnBoard(t *testing.T) {
	g := newStandardGame(t)
	ctx := context.Background()

	move := func(fx, fy, tx, ty int) {
		tl := g.GetTimeline(0)
		from := board.NewVec4(fx, fy, 0, tl.End)
		to := board.NewVec4(tx, ty, 0, tl.End+1)
		require.True(t, g.MakeMove(ctx, from, to, lang.Optional[board.Type]{}), "move (%d,%d)->(%d,%d)", fx, fy, tx, ty)
	}
	submit := func() { require.True(t, g.Submit(ctx).Submitted) }

	move(4, 6, 4, 4) // 1. e4
	submit()
	move(4, 1, 4, 3) // e5
	submit()
	move(6, 7, 5, 5) // 2. Nf3
	submit()
	move(1, 0, 2, 2) // Nc6
	submit()
	move(5, 7, 2, 4) // 3. Bc4
	submit()
	move(6, 0, 5, 2) // Nf6
	submit()
	move(5, 5, 4, 3) // 4. Nxe5 (knight captures the e5 pawn)
	submit()

	tl := g.GetTimeline(0)
	assert.Equal(t, 4, tl.End)
	final := tl.Current()
	knight := final.PieceAt(4, 3)
	require.NotNil(t, knight)
	assert.Equal(t, board.Knight, knight.Type)
	assert.Equal(t, board.White, knight.Side)
}

func TestScenario3TimeTravelBranch(t *testing.T) {
	g := newStandardGame(t)
	ctx := context.Background()

	move := func(fx, fy, tx, ty, fromT, toT int) bool {
		from := board.NewVec4(fx, fy, 0, fromT)
		to := board.NewVec4(tx, ty, 0, toT)
		return g.MakeMove(ctx, from, to, lang.Optional[board.Type]{})
	}
	submit := func() { require.True(t, g.Submit(ctx).Submitted) }

	require.True(t, move(4, 6, 4, 4, 0, 1)) // 1. e4
	submit()
	require.True(t, move(4, 1, 4, 3, 1, 2)) // e5
	submit()

	// White branches by moving the g1 knight from the now-inactive t=0 board
	// (every square next to the king on that board holds a white piece).
	require.True(t, move(6, 7, 5, 5, 0, 0))

	tl := g.GetTimeline(1)
	require.NotNil(t, tl, "branching must allocate timeline l=1")
	assert.Equal(t, 1, tl.Start)
	assert.Equal(t, 1, g.Counts()[board.White])

	root := g.GetTimeline(0).At(0)
	assert.False(t, root.Active)
}

func TestScenario5CrossTimelineCheck(t *testing.T) {
	g := newStandardGame(t)
	ctx := context.Background()

	from := board.NewVec4(4, 6, 0, 0)
	to := board.NewVec4(4, 5, 0, 1)
	require.True(t, g.MakeMove(ctx, from, to, lang.Optional[board.Type]{}))

	// A black rook on a second, independent timeline's current board
	// (t=0, turn=white, so the turn-asymmetry rule lets it project an
	// attack forward) lines up on the open e-file and checks white's king
	// on timeline 0's just-advanced board (t=1) from across the multiverse.
	attackerBoard := board.NewBoard(1, 0)
	rook := board.NewPiece(board.Black, board.Rook, 4, 0)
	attackerBoard.Place(rook, 4, 0)
	g.PutTimeline(timeline.New(attackerBoard))

	checks := g.DisplayedChecks()
	assert.Contains(t, checks, board.NewVec4(4, 7, 0, 1), "white king must be flagged in check from the other timeline")
}

func TestScenario6CheckmateViaSubmit(t *testing.T) {
	g := newStandardGame(t)
	ctx := context.Background()

	move := func(fx, fy, tx, ty int) {
		tl := g.GetTimeline(0)
		from := board.NewVec4(fx, fy, 0, tl.End)
		to := board.NewVec4(tx, ty, 0, tl.End+1)
		require.True(t, g.MakeMove(ctx, from, to, lang.Optional[board.Type]{}), "move (%d,%d)->(%d,%d)", fx, fy, tx, ty)
	}
	submit := func() { require.True(t, g.Submit(ctx).Submitted) }

	move(5, 6, 5, 5) // 1. f3
	submit()
	move(4, 1, 4, 3) // e5
	submit()
	move(6, 6, 6, 4) // 2. g4
	submit()
	move(3, 0, 7, 4) // Qh4#
	submit()

	assert.True(t, g.Finished())
	winner, ok := g.Winner().V()
	require.True(t, ok)
	assert.Equal(t, int(board.Black), winner)
	assert.Equal(t, game.WinReasonCheckmate, g.WinReason())
}
