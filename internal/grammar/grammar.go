// Package grammar classifies textual move strings.
//
// Two shapes are recognised:
//
//	placement  "<glyph> <row>,<col>"       e.g. "X 0,2"
//	movement   "<row>,<col> <row>,<col>"   e.g. "0,0 1,1"
//
// Whitespace around the commas is tolerated. A placement always starts with
// a single non-space rune followed by whitespace, and a movement always starts
// with a coordinate pair, so no string can match both.
package grammar

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/mcoot/boardwalk/internal/model"
)

var (
	placementPattern = regexp.MustCompile(`^(\S)\s+(\d+)\s*,\s*(\d+)$`)
	movementPattern  = regexp.MustCompile(`^(\d+)\s*,\s*(\d+)\s+(\d+)\s*,\s*(\d+)$`)
)

// IsPlacement returns true if the move matches the placement grammar
func IsPlacement(move string) bool {
	return placementPattern.MatchString(move)
}

// IsMovement returns true if the move matches the movement grammar
func IsMovement(move string) bool {
	return movementPattern.MatchString(move)
}

// Parse classifies the move and extracts its elements.
// Strings matching neither grammar, or with coordinates too large to
// represent, come back as model.MoveInvalid.
func Parse(move string) model.Move {
	invalid := model.Move{Kind: model.MoveInvalid, Raw: move}

	if m := placementPattern.FindStringSubmatch(move); m != nil {
		piece, _ := utf8.DecodeRuneInString(m[1])
		at, ok := position(m[2], m[3])
		if !ok {
			return invalid
		}
		return model.Move{
			Kind:  model.MovePlacement,
			Raw:   move,
			Piece: model.Glyph(piece),
			At:    at,
		}
	}

	if m := movementPattern.FindStringSubmatch(move); m != nil {
		from, ok := position(m[1], m[2])
		if !ok {
			return invalid
		}
		to, ok := position(m[3], m[4])
		if !ok {
			return invalid
		}
		return model.Move{
			Kind: model.MoveMovement,
			Raw:  move,
			From: from,
			To:   to,
		}
	}

	return invalid
}

// Placement formats a placement move string
func Placement(piece model.Glyph, pos model.Position) string {
	return model.Move{Kind: model.MovePlacement, Piece: piece, At: pos}.String()
}

// Movement formats a movement move string
func Movement(from, to model.Position) string {
	return model.Move{Kind: model.MoveMovement, From: from, To: to}.String()
}

func position(row, col string) (model.Position, bool) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return model.Position{}, false
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return model.Position{}, false
	}
	return model.Position{Row: r, Col: c}, true
}
