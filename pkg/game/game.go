// Package game implements the Game aggregate (§4.5): timeline ownership,
// turn/present bookkeeping, the per-cycle move buffer, submit/undo, and
// termination detection. It is the single owner of every Board, Timeline
// and Piece in a match (§5).
package game

import (
	"context"
	"fmt"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/check"
	"github.com/Wealth1000/chess-5d/pkg/move"
	"github.com/Wealth1000/chess-5d/pkg/timeline"
	"github.com/Wealth1000/chess-5d/pkg/variant"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

var version = build.NewVersion(0, 1, 0)

// Game is the mutable aggregate root: every Board, Timeline and Piece in a
// match is reachable from exactly one Game (§5 Shared resources).
type Game struct {
	opts GameOptions

	timelines map[int]*timeline.Timeline // keyed by l
	counts    [2]int                     // index by board.Side: spawned timeline count per side

	turn    board.Side
	present int

	currentTurnMoves []*move.Move

	finished  bool
	winner    lang.Optional[int]
	winCause  lang.Optional[int]
	winReason string

	detector *check.Detector
	engine   *move.Engine
	clock    Clock

	listeners []Listener
	notifying bool
}

// Option configures a Game at construction time.
type Option func(*Game)

// WithClock attaches an external clock the engine calls around Submit (§6
// Collaborator boundaries: Clocks).
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithListener registers a state-change observer at construction time.
func WithListener(l Listener) Option {
	return func(g *Game) { g.listeners = append(g.listeners, l) }
}

// NewGame builds timeline l=0 from opts.Variant's initial setup and returns
// a ready-to-play Game (§4.5 Construction).
func NewGame(ctx context.Context, opts GameOptions, fns ...Option) (*Game, error) {
	reg := variant.NewRegistry()
	v, ok := reg.Get(opts.Variant)
	if !ok {
		return nil, fmt.Errorf("game: unknown variant %q", opts.Variant)
	}

	g := &Game{
		opts:      opts,
		timelines: make(map[int]*timeline.Timeline),
		turn:      board.White,
		clock:     NoopClock{},
	}
	for _, fn := range fns {
		fn(g)
	}
	g.detector = check.NewDetector(g)
	g.engine = move.NewEngine()

	root := v.CreateInitialBoard(0, 0)
	root.Turn = board.White
	g.timelines[0] = timeline.New(root)
	g.present = 0

	logw.Infof(ctx, "New game %v: variant=%v", version, opts.Variant)
	return g, nil
}

// Turn returns the side to move this cycle.
func (g *Game) Turn() board.Side { return g.turn }

// Present returns the current present turn number (§4.5 "present recomputation").
func (g *Game) Present() int { return g.present }

// Finished reports whether the game has reached a terminal state.
func (g *Game) Finished() bool { return g.finished }

// Winner returns the winning side, if the game is finished and decisive.
func (g *Game) Winner() lang.Optional[int] { return g.winner }

// WinReason returns the §6 win-reason string, if finished.
func (g *Game) WinReason() string { return g.winReason }

// CurrentTurnMoves returns the moves made so far this submit cycle.
func (g *Game) CurrentTurnMoves() []*move.Move {
	cp := make([]*move.Move, len(g.currentTurnMoves))
	copy(cp, g.currentTurnMoves)
	return cp
}

// GetTimeline returns the timeline at index l, or nil.
func (g *Game) GetTimeline(l int) *timeline.Timeline {
	return g.timelines[l]
}

// GetPiece resolves the piece at pos, re-looking it up fresh every call
// since pieces carry no identity across snapshots (§3 Piece lifecycle).
func (g *Game) GetPiece(pos board.Vec4) *board.Piece {
	tl := g.timelines[pos.L]
	if tl == nil {
		return nil
	}
	b := tl.At(pos.T)
	if b == nil {
		return nil
	}
	return b.PieceAt(pos.X, pos.Y)
}

// ActiveTimelines implements check.GameView: every timeline whose |l| falls
// within the symmetric active range min(neg,pos)+1 (§3 "active range").
func (g *Game) ActiveTimelines() []*timeline.Timeline {
	bound := mathx.Min(g.counts[board.Black], g.counts[board.White]) + 1
	var ret []*timeline.Timeline
	for l, tl := range g.timelines {
		if abs(l) <= bound {
			ret = append(ret, tl)
		}
	}
	return ret
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// move.TimelineStore implementation, so pkg/move never imports pkg/game.

func (g *Game) Timeline(l int) *timeline.Timeline { return g.timelines[l] }

func (g *Game) PutTimeline(tl *timeline.Timeline) { g.timelines[tl.L] = tl }

func (g *Game) RemoveTimeline(l int) { delete(g.timelines, l) }

func (g *Game) Counts() [2]int { return g.counts }

func (g *Game) SetCounts(c [2]int) { g.counts = c }

// recomputePresent implements §4.5 "present = min(end) over active
// timelines; fallback 0", clamped to be at least 0.
func (g *Game) recomputePresent() {
	active := g.ActiveTimelines()
	if len(active) == 0 {
		g.present = 0
		return
	}
	min := active[0].End
	for _, tl := range active[1:] {
		min = mathx.Min(min, tl.End)
	}
	if min < 0 {
		min = 0
	}
	g.present = min
}

// legalMovesFor re-derives candidates for piece on whichever board it
// currently sits on within the active multiverse, re-rooting each
// same-board candidate shape onto every other existing timeline's
// corresponding slot (§4.2 "target_l ... may be overridden", §4.4's three
// cases): same-timeline advance, inter-dimensional onto an active foreign
// timeline, or branch into an inactive one.
func (g *Game) legalMovesFor(sourceBoard *board.Board, p *board.Piece) []board.Vec4 {
	shapes := g.detector.LegalMovesFor(sourceBoard, p)

	sourceTL := g.timelines[sourceBoard.L]
	isCurrent := sourceTL != nil && sourceBoard.T == sourceTL.End

	var ret []board.Vec4
	seen := make(map[board.Vec4]bool)
	for _, shape := range shapes {
		// Movement always hands back shape.T = sourceBoard.T+1 (§4.2), which
		// is the right target turn for a same-timeline advance off the
		// current board, but not for a same-timeline branch off a historical
		// one: classify requires target.T == sourceBoard.T there (§4.4 case
		// 3). Re-root onto the source's own timeline accordingly.
		own := shape
		if !isCurrent {
			own = board.NewVec4(shape.X, shape.Y, sourceBoard.L, sourceBoard.T)
		}
		if !seen[own] {
			seen[own] = true
			ret = append(ret, own)
		}
		for l, tl := range g.timelines {
			if l == sourceBoard.L {
				continue
			}
			for _, cand := range g.reRoot(p.Side, shape, tl) {
				if !seen[cand] {
					seen[cand] = true
					ret = append(ret, cand)
				}
			}
		}
	}
	return ret
}

// reRoot offers shape's (x,y) onto tl: as the inter-dimensional target on
// tl's current board if tl is active, and as a branch target against every
// inactive (historical) board tl carries. A destination board
// whose (x,y) already holds a piece of side is dropped — re-rooting only
// ever reuses a same-board candidate shape, which never carries Movement's
// own IsFriendly check for the board it actually lands on (§4.2), so that
// check has to be redone here against each destination board in turn.
func (g *Game) reRoot(side board.Side, shape board.Vec4, tl *timeline.Timeline) []board.Vec4 {
	var ret []board.Vec4
	if tl.Active {
		if cur := tl.Current(); cur != nil && !cur.IsFriendly(shape.X, shape.Y, side) {
			ret = append(ret, board.NewVec4(shape.X, shape.Y, tl.L, cur.T))
		}
	}
	for t := tl.Start; t <= tl.End; t++ {
		b := tl.At(t)
		if b == nil || b.Active {
			continue
		}
		if b.IsFriendly(shape.X, shape.Y, side) {
			continue
		}
		ret = append(ret, board.NewVec4(shape.X, shape.Y, tl.L, t))
	}
	return ret
}

// LegalMovesFor implements §6 "legal_moves_for(piece) -> list<Vec4>". pos
// identifies the piece's current (l,t,x,y); the returned Vec4s are targets,
// each already filtered by Movement and by self-check.
func (g *Game) LegalMovesFor(pos board.Vec4) []board.Vec4 {
	tl := g.timelines[pos.L]
	if tl == nil {
		return nil
	}
	b := tl.At(pos.T)
	if b == nil {
		return nil
	}
	p := b.PieceAt(pos.X, pos.Y)
	if p == nil {
		return nil
	}
	return g.legalMovesFor(b, p)
}
