package board

// Type represents a chess piece type, with no side. 3 bits.
type Type uint8

const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func ParseType(r rune) (Type, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoType, false
	}
}

func (t Type) IsValid() bool {
	return Pawn <= t && t <= King
}

// IsPromotable reports whether t is a legal promotion choice: queen,
// knight, rook or bishop, but never a pawn or king (§4.4(b): "promote must
// be one of the four non-pawn, non-king types").
func (t Type) IsPromotable() bool {
	switch t {
	case Queen, Knight, Rook, Bishop:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case NoType:
		return " "
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}
