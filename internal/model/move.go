package model

import "fmt"

// MoveKind tags which shape a parsed move has
type MoveKind int

const (
	MoveInvalid   MoveKind = iota // matched neither grammar
	MovePlacement                 // "<glyph> <row>,<col>"
	MoveMovement                  // "<row>,<col> <row>,<col>"
)

func (k MoveKind) String() string {
	switch k {
	case MovePlacement:
		return "placement"
	case MoveMovement:
		return "movement"
	default:
		return "invalid"
	}
}

// Move is a move string classified exactly once.
//
// Placement moves carry Piece and At. Movement moves carry From and To.
// Raw always holds the original text so games with their own textual
// protocol can still inspect an Invalid move.
type Move struct {
	Kind  MoveKind
	Raw   string
	Piece Glyph
	At    Position
	From  Position
	To    Position
}

// IsPlacement returns true for placement moves
func (m Move) IsPlacement() bool {
	return m.Kind == MovePlacement
}

// IsMovement returns true for movement moves
func (m Move) IsMovement() bool {
	return m.Kind == MoveMovement
}

// Positions returns every coordinate referenced by the move
func (m Move) Positions() []Position {
	switch m.Kind {
	case MovePlacement:
		return []Position{m.At}
	case MoveMovement:
		return []Position{m.From, m.To}
	default:
		return nil
	}
}

func (m Move) String() string {
	switch m.Kind {
	case MovePlacement:
		return fmt.Sprintf("%s %d,%d", m.Piece, m.At.Row, m.At.Col)
	case MoveMovement:
		return fmt.Sprintf("%d,%d %d,%d", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	default:
		return m.Raw
	}
}
