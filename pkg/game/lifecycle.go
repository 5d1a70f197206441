package game

import (
	"context"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/move"
	"github.com/Wealth1000/chess-5d/pkg/timeline"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// MakeMove implements §4.5 make_move: reject if finished, if this piece's
// timeline already has a move this cycle, if side != turn, if the target
// fails Movement's candidate filter, or if it would leave the mover's own
// king in check. Otherwise applies the move via the Move engine, buffers
// it, and recomputes present/check display.
func (g *Game) MakeMove(ctx context.Context, pos, target board.Vec4, promote lang.Optional[board.Type]) bool {
	if g.finished {
		return false
	}

	tl := g.timelines[pos.L]
	if tl == nil {
		return false
	}
	sourceBoard := tl.At(pos.T)
	if sourceBoard == nil {
		return false
	}
	piece := sourceBoard.PieceAt(pos.X, pos.Y)
	if piece == nil || piece.Side != g.turn {
		return false
	}
	if g.hasMoveThisCycle(pos.L) {
		return false
	}

	legal := false
	for _, v := range g.legalMovesFor(sourceBoard, piece) {
		if v == target {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}

	m, err := g.engine.Apply(g, sourceBoard, piece, target, promote)
	if err != nil {
		logw.Infof(ctx, "make_move rejected: %v", err)
		return false
	}

	g.currentTurnMoves = append(g.currentTurnMoves, m)
	g.recomputePresent()
	logw.Infof(ctx, "make_move %v", m)
	g.notify()
	return true
}

// hasMoveThisCycle reports whether a move already exists for l's timeline
// in the current submit cycle (§4.5: "a move already exists for this
// piece's timeline in the current cycle").
func (g *Game) hasMoveThisCycle(l int) bool {
	for _, m := range g.currentTurnMoves {
		if m.Kind == move.Null {
			if ml, ok := m.LForNull.V(); ok && ml == l {
				return true
			}
			continue
		}
		if m.From.L == l {
			return true
		}
	}
	return false
}

// Undo implements §4.5 undo(): pop the last move, undo it, recompute
// present and check display.
func (g *Game) Undo(ctx context.Context) bool {
	if len(g.currentTurnMoves) == 0 {
		return false
	}
	n := len(g.currentTurnMoves) - 1
	m := g.currentTurnMoves[n]
	g.currentTurnMoves = g.currentTurnMoves[:n]

	g.engine.Undo(g, m)
	g.recomputePresent()
	logw.Infof(ctx, "undo %v", m)
	g.notify()
	return true
}

// SubmitResult mirrors §6 submit()'s result shape.
type SubmitResult struct {
	Submitted       bool
	ElapsedTimeMs   lang.Optional[int64]
	TimeGainedCapMs lang.Optional[int64]
}

// Submit implements §4.5 submit(): fails if any active same-side timeline
// isn't ready. Pads every active, not-yet-moved, same-turn timeline with a
// null move, clears the move buffer, recomputes present, flips turn, and
// checks for termination.
func (g *Game) Submit(ctx context.Context) SubmitResult {
	if g.finished {
		return SubmitResult{Submitted: false}
	}

	for _, tl := range g.ActiveTimelines() {
		if !tl.ReadyToSubmit(g.present) {
			return SubmitResult{Submitted: false}
		}
	}

	elapsed := g.clock.StopTime()

	for _, tl := range g.ActiveTimelines() {
		cur := tl.Current()
		if cur == nil || cur.Turn != g.turn {
			continue
		}
		if g.hasMoveThisCycle(tl.L) {
			continue
		}
		g.currentTurnMoves = append(g.currentTurnMoves, g.padWithNullMove(tl))
	}

	g.currentTurnMoves = nil
	g.recomputePresent()
	g.turn = g.turn.Opponent()
	g.clock.StartTime(false, false)

	g.checkForTermination(ctx)

	logw.Infof(ctx, "submit: turn=%v present=%v finished=%v", g.turn, g.present, g.finished)
	g.notify()
	return SubmitResult{Submitted: true, ElapsedTimeMs: lang.Some(elapsed)}
}

// padWithNullMove synthesizes a null move for tl (§4.4 "Null move"): a
// successor board derived from the current one, turn flipped (via the
// (t+side) parity formula CloneAt already applies), current marked used. No
// piece moves, so any en-passant square left over from cur is stale the
// instant this successor exists and must be cleared explicitly rather than
// carried over by Clone's verbatim copy (§8 P8; mirrors every branch of
// move.Engine.Apply, which calls updateEnPassant on its own successors).
func (g *Game) padWithNullMove(tl *timeline.Timeline) *move.Move {
	cur := tl.Current()
	next := cur.CloneAt(cur.L, cur.T+1)
	next.EnPassant = nil
	cur.Active = false
	tl.Append(next)
	g.timelines[tl.L] = tl

	return &move.Move{
		Kind:          move.Null,
		LForNull:      lang.Some(tl.L),
		UsedBoards:    []*board.Board{cur},
		CreatedBoards: []*board.Board{next},
	}
}

// checkForTermination implements the tail of §4.5 submit(): recompute
// checks; if the side to move has no legal move, end the game as checkmate
// (if in check) or stalemate (otherwise).
func (g *Game) checkForTermination(ctx context.Context) {
	if g.hasAnyLegalMove(g.turn) {
		return
	}
	g.finished = true
	g.opts.Finished = true
	if g.isInCheck(g.turn) {
		g.winReason = WinReasonCheckmate
		g.winner = lang.Some(int(g.turn.Opponent()))
		logw.Infof(ctx, "checkmate: %v wins", g.turn.Opponent())
		return
	}
	g.winReason = WinReasonStalemate
	logw.Infof(ctx, "stalemate")
}

// IsCheckmate reports whether the game ended by checkmate.
func (g *Game) IsCheckmate() bool {
	return g.finished && g.winReason == WinReasonCheckmate
}

// IsStalemate reports whether the game ended by stalemate.
func (g *Game) IsStalemate() bool {
	return g.finished && g.winReason == WinReasonStalemate
}

// HasLegalMoves reports whether side to move has at least one legal move
// anywhere in the active multiverse (§6 has_legal_moves).
func (g *Game) HasLegalMoves() bool {
	return g.hasAnyLegalMove(g.turn)
}

func (g *Game) hasAnyLegalMove(side board.Side) bool {
	for _, tl := range g.ActiveTimelines() {
		cur := tl.Current()
		if cur == nil || cur.Turn != side {
			continue
		}
		for _, p := range cur.PiecesOf(side) {
			if len(g.legalMovesFor(cur, p)) > 0 {
				return true
			}
		}
	}
	return false
}

func (g *Game) isInCheck(side board.Side) bool {
	for _, tl := range g.ActiveTimelines() {
		cur := tl.Current()
		if cur == nil || cur.Turn != side {
			continue
		}
		if g.detector.IsKingInCheckCrossTimeline(cur, side) {
			return true
		}
	}
	return false
}

// DisplayedChecks implements §6 observed field displayed_checks.
func (g *Game) DisplayedChecks() []board.Vec4 {
	return g.detector.DisplayedChecks()
}
