package move

import (
	"encoding/json"
	"fmt"

	"github.com/Wealth1000/chess-5d/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// wirePos mirrors the {x,y,l,t} shape used for from/to coordinates (§6).
type wirePos struct {
	X int `json:"x"`
	Y int `json:"y"`
	L int `json:"l"`
	T int `json:"t"`
}

// wireBoardRef mirrors the {l,t} shape used for sourceBoard/targetBoard (§6).
type wireBoardRef struct {
	L int `json:"l"`
	T int `json:"t"`
}

type wireSourcePiece struct {
	Type string    `json:"type"`
	Side board.Side `json:"side"`
	X    int        `json:"x"`
	Y    int        `json:"y"`
}

// wireMove is the exact JSON shape of §6's "Move serialization".
type wireMove struct {
	NullMove               bool             `json:"nullMove"`
	L                      *int             `json:"l,omitempty"`
	From                   *wirePos         `json:"from,omitempty"`
	To                     *wirePos         `json:"to,omitempty"`
	Promote                *int             `json:"promote,omitempty"`
	RemoteMove             bool             `json:"remoteMove"`
	SourcePiece            *wireSourcePiece `json:"sourcePiece,omitempty"`
	SourceBoard            *wireBoardRef    `json:"sourceBoard,omitempty"`
	TargetBoard            *wireBoardRef    `json:"targetBoard,omitempty"`
	IsInterDimensionalMove bool             `json:"isInterDimensionalMove"`
}

// promoteCode maps a promotion Type to its wire code: 1=queen, 2=knight,
// 3=rook, 4=bishop (§6).
func promoteCode(t board.Type) (int, error) {
	switch t {
	case board.Queen:
		return 1, nil
	case board.Knight:
		return 2, nil
	case board.Rook:
		return 3, nil
	case board.Bishop:
		return 4, nil
	default:
		return 0, fmt.Errorf("move: %v is not a promotable type", t)
	}
}

func codeToPromote(code int) (board.Type, error) {
	switch code {
	case 1:
		return board.Queen, nil
	case 2:
		return board.Knight, nil
	case 3:
		return board.Rook, nil
	case 4:
		return board.Bishop, nil
	default:
		return board.NoType, fmt.Errorf("move: invalid promotion code %d", code)
	}
}

// MarshalJSON encodes m in the exact wire shape of §6.
func (m *Move) MarshalJSON() ([]byte, error) {
	w := wireMove{
		NullMove:               m.Kind == Null,
		RemoteMove:             m.Remote,
		IsInterDimensionalMove: m.IsInterDim,
	}

	if m.Kind == Null {
		l, ok := m.LForNull.V()
		if !ok {
			return nil, fmt.Errorf("move: null move missing its timeline (§7 kind 3)")
		}
		w.L = &l
		return json.Marshal(w)
	}

	from := wirePos{X: m.From.X, Y: m.From.Y, L: m.From.L, T: m.From.T}
	to := wirePos{X: m.To.X, Y: m.To.Y, L: m.To.L, T: m.To.T}
	w.From, w.To = &from, &to

	if pt, ok := m.Promote.V(); ok {
		code, err := promoteCode(pt)
		if err != nil {
			return nil, err
		}
		w.Promote = &code
	}

	sp := wireSourcePiece{Type: m.SourcePiece.Type.String(), Side: m.SourcePiece.Side, X: m.SourcePiece.X, Y: m.SourcePiece.Y}
	w.SourcePiece = &sp
	sb := wireBoardRef{L: m.SourceBoard.L, T: m.SourceBoard.T}
	tb := wireBoardRef{L: m.TargetBoard.L, T: m.TargetBoard.T}
	w.SourceBoard, w.TargetBoard = &sb, &tb

	return json.Marshal(w)
}

// UnmarshalJSON decodes the §6 wire shape, raising a typed bad-input error
// (§7 kind 3) for the field combinations it requires: a null move must carry
// "l"; a regular move must carry "from" and "to".
func (m *Move) UnmarshalJSON(data []byte) error {
	var w wireMove
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("move: malformed wire move: %w", err)
	}

	m.Remote = w.RemoteMove
	m.IsInterDim = w.IsInterDimensionalMove

	if w.NullMove {
		if w.L == nil {
			return fmt.Errorf("move: null move missing required field \"l\"")
		}
		m.Kind = Null
		m.LForNull = lang.Some(*w.L)
		return nil
	}

	m.Kind = Regular
	if w.From == nil || w.To == nil {
		return fmt.Errorf("move: regular move missing required field \"from\" or \"to\"")
	}
	m.From = board.NewVec4(w.From.X, w.From.Y, w.From.L, w.From.T)
	m.To = board.NewVec4(w.To.X, w.To.Y, w.To.L, w.To.T)

	if w.Promote != nil {
		pt, err := codeToPromote(*w.Promote)
		if err != nil {
			return err
		}
		m.Promote = lang.Some(pt)
	}
	if w.SourcePiece != nil {
		if w.SourcePiece.Type == "" {
			return fmt.Errorf("move: bad sourcePiece.type: empty")
		}
		typ, ok := board.ParseType(rune(w.SourcePiece.Type[0]))
		if !ok {
			return fmt.Errorf("move: bad sourcePiece.type %q", w.SourcePiece.Type)
		}
		m.SourcePiece = SourcePieceRef{Type: typ, Side: w.SourcePiece.Side, X: w.SourcePiece.X, Y: w.SourcePiece.Y}
	}
	if w.SourceBoard != nil {
		m.SourceBoard = board.NewVec4(0, 0, w.SourceBoard.L, w.SourceBoard.T)
	}
	if w.TargetBoard != nil {
		m.TargetBoard = board.NewVec4(0, 0, w.TargetBoard.L, w.TargetBoard.T)
	}
	return nil
}
