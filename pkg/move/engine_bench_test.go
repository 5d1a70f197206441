package move_test

import (
	"testing"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/move"
	"github.com/Wealth1000/chess-5d/pkg/movement"
	"github.com/seekerror/stdlib/pkg/lang"
)

// alwaysSafe answers every IsAttacked query with false, so the benchmark
// exercises move generation and application without wiring up pkg/check.
type alwaysSafe struct{}

func (alwaysSafe) IsAttacked(*board.Board, int, int, board.Side) bool { return false }

// BenchmarkApplySameBoardAdvance times a single-timeline apply/undo cycle
// from the standard opening position, the engine's cheapest and most common
// case (§4.4 SameBoardAdvance). Stands in for the teacher's cmd/perft
// harness, which counted leaf nodes at fixed search depths; this module has
// no search tree to walk, so the benchmark measures the primitive perft
// itself bottoms out on: one Apply plus its Undo.
func BenchmarkApplySameBoardAdvance(b *testing.B) {
	e := move.NewEngine()
	target := board.NewVec4(4, 4, 0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root := board.NewBoard(0, 0)
		pawn := board.NewPiece(board.White, board.Pawn, 4, 6)
		root.Place(pawn, 4, 6)
		store := newFakeStore(root)

		m, err := e.Apply(store, root, pawn, target, lang.Optional[board.Type]{})
		if err != nil {
			b.Fatalf("apply: %v", err)
		}
		e.Undo(store, m)
	}
}

// BenchmarkMovesKnightCenter times candidate generation for a single piece,
// the inner loop every legal-move enumeration pays once per piece per ply.
func BenchmarkMovesKnightCenter(b *testing.B) {
	root := board.NewBoard(0, 0)
	n := board.NewPiece(board.White, board.Knight, 4, 4)
	root.Place(n, 4, 4)
	q := alwaysSafe{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = movement.Moves(root, n, q)
	}
}

