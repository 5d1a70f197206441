package variant_test

import (
	"testing"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/Wealth1000/chess-5d/pkg/variant"
	"github.com/stretchr/testify/assert"
)

func TestStandardSetup(t *testing.T) {
	b := variant.Standard{}.CreateInitialBoard(0, 0)

	assert.Equal(t, board.King, b.PieceAt(4, 7).Type)
	assert.Equal(t, board.White, b.PieceAt(4, 7).Side)
	assert.Equal(t, board.King, b.PieceAt(4, 0).Type)
	assert.Equal(t, board.Black, b.PieceAt(4, 0).Side)
	assert.Equal(t, board.Pawn, b.PieceAt(0, 6).Type)
	assert.Equal(t, board.Pawn, b.PieceAt(0, 1).Type)
	assert.Len(t, b.Pieces(), 32)
}

func TestNoBishopsReplacesWithPawn(t *testing.T) {
	b := variant.NoBishops{}.CreateInitialBoard(0, 0)

	assert.Equal(t, board.Pawn, b.PieceAt(2, 7).Type)
	assert.Equal(t, board.Pawn, b.PieceAt(5, 7).Type)
	assert.Len(t, b.Pieces(), 32)
}

func TestSimpleSetDropsMinorAndRookPieces(t *testing.T) {
	b := variant.SimpleSet{}.CreateInitialBoard(0, 0)

	assert.Nil(t, b.PieceAt(0, 7))
	assert.Nil(t, b.PieceAt(1, 7))
	assert.Equal(t, board.Queen, b.PieceAt(3, 7).Type)
	assert.Equal(t, board.King, b.PieceAt(4, 7).Type)
}

func TestRandomIsDeterministicForSameSeed(t *testing.T) {
	a := variant.NewRandom(42).CreateInitialBoard(0, 0)
	b := variant.NewRandom(42).CreateInitialBoard(0, 0)

	for x := 0; x < 8; x++ {
		assert.Equal(t, a.PieceAt(x, 7).Type, b.PieceAt(x, 7).Type)
		assert.Equal(t, a.PieceAt(x, 0).Type, b.PieceAt(x, 0).Type)
	}
}

func TestRandomKeepsKingBetweenRooks(t *testing.T) {
	b := variant.NewRandom(7).CreateInitialBoard(0, 0)

	var kingX int
	var rookXs []int
	for x := 0; x < 8; x++ {
		switch b.PieceAt(x, 7).Type {
		case board.King:
			kingX = x
		case board.Rook:
			rookXs = append(rookXs, x)
		}
	}
	assert.Len(t, rookXs, 2)
	assert.True(t, rookXs[0] < kingX && kingX < rookXs[1])
}

func TestRegistryLookup(t *testing.T) {
	reg := variant.NewRegistry()

	v, ok := reg.Get("standard")
	assert.True(t, ok)
	assert.Equal(t, "standard", v.Name())

	_, ok = reg.Get("does-not-exist")
	assert.False(t, ok)
}
