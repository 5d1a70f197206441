package variant

import (
	"math/rand"

	"github.com/Wealth1000/chess-5d/pkg/board"
)

// Random shuffles each side's back-rank pieces (the king included), seeded
// deterministically so the same seed always reproduces the same setup (§5
// Determinism: "no randomness except variant setup, which is seeded by
// variant options").
type Random struct {
	Seed int64
}

// NewRandom returns a Random variant seeded with seed.
func NewRandom(seed int64) Random {
	return Random{Seed: seed}
}

func (Random) Name() string { return "random" }

func (r Random) CreateInitialBoard(l, t int) *board.Board {
	rng := rand.New(rand.NewSource(r.Seed))
	return newBoard(l, t, r.shuffledRank(rng), r.shuffledRank(rng))
}

// shuffledRank produces a legal-ish random back rank: bishops kept on
// opposite-colored squares and the king kept between the rooks, which is
// the minimal constraint a "random" chess variant is expected to honor.
func (r Random) shuffledRank(rng *rand.Rand) [8]board.Type {
	for {
		var rank [8]board.Type
		perm := rng.Perm(8)
		pieces := []board.Type{board.Rook, board.Knight, board.Bishop, board.Queen, board.King, board.Bishop, board.Knight, board.Rook}
		for i, p := range perm {
			rank[p] = pieces[i]
		}
		if isLegalBackRank(rank) {
			return rank
		}
	}
}

func isLegalBackRank(rank [8]board.Type) bool {
	var bishopSquares, kingX, rookCount int
	var rookXs [2]int
	for x, t := range rank {
		if t == board.Bishop {
			bishopSquares += x % 2
		}
		if t == board.King {
			kingX = x
		}
		if t == board.Rook {
			if rookCount < 2 {
				rookXs[rookCount] = x
			}
			rookCount++
		}
	}
	if bishopSquares != 1 {
		return false // one bishop per square color
	}
	return rookXs[0] < kingX && kingX < rookXs[1]
}
