package move

import (
	"fmt"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/timeline"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimelineStore is the minimal mutable view of Game's timeline collection
// the engine needs: lookup, insertion, removal, and the spawn counters used
// to allocate new timeline indices (§4.4 case 3, §9 timeline_counts).
type TimelineStore interface {
	Timeline(l int) *timeline.Timeline
	PutTimeline(tl *timeline.Timeline)
	RemoveTimeline(l int)
	Counts() [2]int
	SetCounts(c [2]int)
}

// Case is the outcome of classify (§4.4).
type Case uint8

const (
	SameBoardAdvance Case = iota
	InterDimensional
	Branch
)

// Engine applies and undoes moves against a TimelineStore. It carries no
// state of its own; everything mutable lives in the store and the boards it
// owns, so a single Engine value is safe to reuse across a Game's lifetime.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// classify determines which of the three §4.4 cases a (sourceBoard, target)
// pair falls into, and returns the timeline the engine will append to (or
// branch from).
func classify(store TimelineStore, sourceBoard *board.Board, target board.Vec4) (Case, *timeline.Timeline, *board.Board, error) {
	sourceTL := store.Timeline(sourceBoard.L)
	if sourceTL == nil {
		return 0, nil, nil, fmt.Errorf("move: source timeline L=%d not found", sourceBoard.L)
	}

	if target.L == sourceBoard.L {
		isCurrent := sourceBoard.T == sourceTL.End
		if isCurrent {
			if target.T != sourceBoard.T+1 || sourceTL.At(target.T) != nil {
				return 0, nil, nil, fmt.Errorf("move: invalid same-timeline target %v from current board at t=%d", target, sourceBoard.T)
			}
			return SameBoardAdvance, sourceTL, sourceBoard, nil
		}
		if target.T != sourceBoard.T {
			return 0, nil, nil, fmt.Errorf("move: branch target %v must name the source's own (l,t)", target)
		}
		return Branch, sourceTL, sourceBoard, nil
	}

	targetTL := store.Timeline(target.L)
	if targetTL == nil {
		return 0, nil, nil, fmt.Errorf("move: target timeline L=%d not found", target.L)
	}
	targetCur := targetTL.Current()
	if targetTL.Active && targetCur != nil && target.T == targetCur.T {
		return InterDimensional, targetTL, targetCur, nil
	}
	base := targetTL.At(target.T)
	if base == nil {
		return 0, nil, nil, fmt.Errorf("move: no board at L=%d T=%d to branch from", target.L, target.T)
	}
	if base.Active {
		return 0, nil, nil, fmt.Errorf("move: cannot branch onto the live frontier of L=%d", target.L)
	}
	return Branch, targetTL, base, nil
}

// Apply classifies and executes a move of piece (resident on sourceBoard)
// toward target, returning the Move record needed for Undo and
// serialization. piece and the squares of sourceBoard are left untouched:
// apart from clearing the Active flag of each board the move supersedes,
// every mutation lands on fresh clones (§3: boards are immutable by
// convention once superseded).
func (e *Engine) Apply(store TimelineStore, sourceBoard *board.Board, piece *board.Piece, target board.Vec4, promote lang.Optional[board.Type]) (*Move, error) {
	kind, _, base, err := classify(store, sourceBoard, target)
	if err != nil {
		return nil, err
	}

	m := &Move{
		Kind:        Regular,
		From:        board.NewVec4(piece.X, piece.Y, sourceBoard.L, sourceBoard.T),
		To:          target,
		SourcePiece: SourcePieceRef{Type: piece.Type, Side: piece.Side, X: piece.X, Y: piece.Y},
		SourceBoard: board.NewVec4(0, 0, sourceBoard.L, sourceBoard.T),
		Promote:     promote,
	}

	switch kind {
	case SameBoardAdvance:
		sourceTL := store.Timeline(sourceBoard.L)
		next := sourceBoard.CloneAt(sourceBoard.L, target.T)
		mover := next.PieceAt(piece.X, piece.Y)
		next.Remove(piece.X, piece.Y)
		placed := applyPieceMutation(next, mover, target.X, target.Y, promote)
		updateCastling(next, mover, placed, target.X, target.Y)
		updateEnPassant(next, mover, piece.X, piece.Y, target.X, target.Y)

		sourceBoard.Active = false
		sourceTL.Append(next)
		store.PutTimeline(sourceTL)

		m.UsedBoards = []*board.Board{sourceBoard}
		m.CreatedBoards = []*board.Board{next}
		m.TargetBoard = board.NewVec4(0, 0, next.L, next.T)

	case InterDimensional:
		sourceTL := store.Timeline(sourceBoard.L)
		nextSource := sourceBoard.CloneAt(sourceBoard.L, sourceBoard.T+1)
		nextSource.Remove(piece.X, piece.Y)
		sourceBoard.Active = false
		sourceTL.Append(nextSource)
		store.PutTimeline(sourceTL)

		targetTL := store.Timeline(target.L)
		nextTarget := base.CloneAt(target.L, base.T+1)
		mover := piece.Clone()
		placed := applyPieceMutation(nextTarget, mover, target.X, target.Y, promote)
		updateCastling(nextTarget, mover, placed, target.X, target.Y)
		updateEnPassant(nextTarget, mover, piece.X, piece.Y, target.X, target.Y)

		base.Active = false
		targetTL.Append(nextTarget)
		store.PutTimeline(targetTL)

		m.IsInterDim = true
		m.UsedBoards = []*board.Board{sourceBoard, base}
		m.CreatedBoards = []*board.Board{nextSource, nextTarget}
		m.TargetBoard = board.NewVec4(0, 0, nextTarget.L, nextTarget.T)

	case Branch:
		newL := e.nextTimelineIndex(store, piece.Side)
		branch := base.CloneAt(newL, target.T+1)
		var mover *board.Piece
		if base == sourceBoard {
			mover = branch.PieceAt(piece.X, piece.Y)
			branch.Remove(piece.X, piece.Y)
		} else {
			// branching from a foreign timeline's history: the piece is not
			// native to that board, so transplant a clone of the mover onto it.
			mover = piece.Clone()
		}
		placed := applyPieceMutation(branch, mover, target.X, target.Y, promote)
		updateCastling(branch, mover, placed, target.X, target.Y)
		updateEnPassant(branch, mover, piece.X, piece.Y, target.X, target.Y)

		if base != sourceBoard {
			sourceTL := store.Timeline(sourceBoard.L)
			nextSource := sourceBoard.CloneAt(sourceBoard.L, sourceBoard.T+1)
			nextSource.Remove(piece.X, piece.Y)
			sourceBoard.Active = false
			sourceTL.Append(nextSource)
			store.PutTimeline(sourceTL)
			m.CreatedBoards = append(m.CreatedBoards, nextSource)
			m.UsedBoards = append(m.UsedBoards, sourceBoard)
		}

		base.Active = false
		store.PutTimeline(timeline.New(branch))

		m.IsInterDim = true
		m.UsedBoards = append(m.UsedBoards, base)
		m.CreatedBoards = append(m.CreatedBoards, branch)
		m.TargetBoard = board.NewVec4(0, 0, branch.L, branch.T)
	}

	return m, nil
}

// applyPieceMutation places mover (a detached piece value — not necessarily
// resident on clone) onto clone at (x,y), handling capture-by-overwrite and
// promotion (explicit code, else auto-queen on the last rank), per §4.4 "All
// cases then: (a) remove any enemy piece on the target square... (b) if
// promotion applies...". Returns the piece actually placed.
func applyPieceMutation(clone *board.Board, mover *board.Piece, x, y int, promote lang.Optional[board.Type]) *board.Piece {
	finalType := mover.Type
	if mover.Type == board.Pawn && y == board.HomeRank(mover.Side.Opponent()) {
		finalType = board.Queen
		if pt, ok := promote.V(); ok && pt.IsPromotable() {
			finalType = pt
		}
	}
	placed := board.NewPiece(mover.Side, finalType, x, y)
	placed.HasMoved = true
	clone.Place(placed, x, y)
	return placed
}

// updateCastling applies §4.4(c): a moving king clears both of its side's
// rights; a moving or captured rook off its home corner clears the matching
// right. ClearCorner is a no-op for any square that isn't actually a rook
// corner, so both calls below are safe regardless of mover/captured type.
func updateCastling(clone *board.Board, mover, placed *board.Piece, toX, toY int) {
	if mover.Type == board.King {
		clone.Castling = clone.Castling.Clear(mover.Side)
		return
	}
	if mover.Type == board.Rook {
		clone.Castling = clone.Castling.ClearCorner(mover.Side, mover.X, mover.Y)
	}
	clone.Castling = clone.Castling.ClearCorner(placed.Side.Opponent(), toX, toY)
}

// updateEnPassant sets clone.EnPassant to the skipped square behind a
// two-square pawn push, else clears it (§4.4(d), §8 P8).
func updateEnPassant(clone *board.Board, mover *board.Piece, fromX, fromY, toX, toY int) {
	if mover.Type == board.Pawn && fromX == toX && abs(toY-fromY) == 2 {
		ep := board.NewVec4(toX, (fromY+toY)/2, clone.L, clone.T)
		clone.EnPassant = &ep
		return
	}
	clone.EnPassant = nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// nextTimelineIndex allocates a new timeline index for a branch spawned by
// side, per §4.4 case 3 / §9: new_l = ±(timeline_counts[side]+1). The
// black-side counter update is intentionally literal to the (likely buggy,
// undocumented) formula in the source material: it re-derives the
// pre-increment count rather than the new one, so repeated black branches
// keep allocating the same new_l. This is a recorded, deliberate decision,
// not an oversight here.
func (e *Engine) nextTimelineIndex(store TimelineStore, side board.Side) int {
	counts := store.Counts()
	if side == board.White {
		newL := counts[board.White] + 1
		counts[board.White] = newL
		store.SetCounts(counts)
		return newL
	}
	newL := -(counts[board.Black] + 1)
	counts[board.Black] = -newL - 1
	store.SetCounts(counts)
	return newL
}

// Undo reverses m: every created board is popped from its timeline (and the
// timeline removed if left empty, with the spawning side's counter walked
// back for the white formula — the black formula never advanced it, so
// there is nothing to walk back there, per nextTimelineIndex), and every
// used board is reactivated (§4.4 Undo).
func (e *Engine) Undo(store TimelineStore, m *Move) {
	for _, cb := range m.CreatedBoards {
		tl := store.Timeline(cb.L)
		if tl == nil {
			continue
		}
		tl.PopCurrent()
		if tl.IsEmpty() {
			store.RemoveTimeline(cb.L)
			if cb.L > 0 {
				counts := store.Counts()
				if counts[board.White] == cb.L {
					counts[board.White]--
					store.SetCounts(counts)
				}
			}
		} else {
			store.PutTimeline(tl)
		}
	}
	for _, ub := range m.UsedBoards {
		ub.Active = true
	}
}
