package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boardwalk/internal/model"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// glyphAt reads a glyph back out of a rendered board
func glyphAt(rendered string, height, width, row, col int) rune {
	lines := strings.Split(rendered, "\n")
	rowWidth, colWidth := digits(height-1), digits(width-1)
	line := []rune(lines[row+1])
	return line[rowWidth+1+col*(colWidth+1)+colWidth-1]
}

// New tests

func (s *BoardSuite) TestNewIsBlank() {
	b, err := New(3, 4, "")
	s.Require().NoError(err)

	s.Equal(3, b.Height())
	s.Equal(4, b.Width())
	s.Equal(12, b.Count(model.Blank))
}

func (s *BoardSuite) TestNewAppliesLayout() {
	b, err := New(2, 2, "AB\nCD")
	s.Require().NoError(err)

	expected := map[model.Position]model.Glyph{
		pos(0, 0): 'A', pos(0, 1): 'B', pos(1, 0): 'C', pos(1, 1): 'D',
	}
	for p, g := range expected {
		got, err := b.At(p)
		s.Require().NoError(err)
		s.Equal(g, got)
	}
}

func (s *BoardSuite) TestNewToleratesTrailingNewline() {
	_, err := New(2, 2, "AB\nCD\n")
	s.NoError(err)
}

func (s *BoardSuite) TestNewKeepsSeparatorGlyphs() {
	b, err := New(1, 9, "____ ____")
	s.Require().NoError(err)

	g, _ := b.At(pos(0, 4))
	s.Equal(model.Null, g)
}

func (s *BoardSuite) TestNewTooFewRows() {
	_, err := New(3, 3, "___\n___")
	s.ErrorIs(err, model.ErrLayoutMismatch)
}

func (s *BoardSuite) TestNewTooManyRows() {
	_, err := New(1, 3, "___\n___")
	s.ErrorIs(err, model.ErrLayoutMismatch)
}

func (s *BoardSuite) TestNewRowLengthMismatch() {
	_, err := New(2, 3, "___\n__")
	s.ErrorIs(err, model.ErrLayoutMismatch)

	_, err = New(2, 3, "___\n____")
	s.ErrorIs(err, model.ErrLayoutMismatch)
}

func (s *BoardSuite) TestNewCountsRunesNotBytes() {
	b, err := New(1, 2, "éü")
	s.Require().NoError(err)

	g, _ := b.At(pos(0, 1))
	s.Equal(model.Glyph('ü'), g)
}

func (s *BoardSuite) TestNewInvalidShape() {
	_, err := New(0, 3, "")
	s.ErrorIs(err, model.ErrInvalidShape)

	_, err = New(3, -1, "")
	s.ErrorIs(err, model.ErrInvalidShape)
}

func (s *BoardSuite) TestMustNewPanicsOnMismatch() {
	s.Panics(func() { MustNew(3, 3, "__") })
}

// At tests

func (s *BoardSuite) TestAtOutOfBounds() {
	b := MustNew(3, 3, "")

	for _, p := range []model.Position{pos(-1, 0), pos(0, -1), pos(3, 0), pos(0, 3)} {
		_, err := b.At(p)
		s.ErrorIs(err, model.ErrOutOfBounds)
		s.False(b.InBounds(p))
		s.False(b.IsBlank(p))
	}
}

// PlacePiece tests

func (s *BoardSuite) TestPlacePieceChangesExactlyOneCell() {
	b := MustNew(3, 3, "ABC\nDEF\nGHI")
	before := b.Layout()

	s.Require().NoError(b.PlacePiece("X 1,2"))

	after := b.Layout()
	for row := range after {
		for col := range after[row] {
			if row == 1 && col == 2 {
				s.Equal(model.Glyph('X'), after[row][col])
				continue
			}
			s.Equal(before[row][col], after[row][col])
		}
	}
}

func (s *BoardSuite) TestPlacePieceOutOfBoundsDoesNotMutate() {
	b := MustNew(3, 3, "")
	before := b.String()

	err := b.PlacePiece("A 5,5")
	s.ErrorIs(err, model.ErrOutOfBounds)
	s.Equal(before, b.String())
}

func (s *BoardSuite) TestPlacePieceRejectsMovement() {
	b := MustNew(3, 3, "")

	err := b.PlacePiece("0,0 1,1")
	s.ErrorIs(err, model.ErrMalformedMove)
}

// MovePiece tests

func (s *BoardSuite) TestMovePiece() {
	b := MustNew(3, 3, "X__\n___\nO__")
	before := b.Layout()

	s.Require().NoError(b.MovePiece("0,0 1,1"))

	after := b.Layout()
	s.Equal(model.Blank, after[0][0])
	s.Equal(model.Glyph('X'), after[1][1])
	for row := range after {
		for col := range after[row] {
			if (row == 0 && col == 0) || (row == 1 && col == 1) {
				continue
			}
			s.Equal(before[row][col], after[row][col])
		}
	}
}

func (s *BoardSuite) TestMovePieceOntoOccupiedCellOverwrites() {
	b := MustNew(1, 2, "XO")

	s.Require().NoError(b.MovePiece("0,0 0,1"))
	s.Equal("_X", string(glyphs(b.Row(0))))
}

func (s *BoardSuite) TestMovePieceOutOfBoundsDoesNotMutate() {
	b := MustNew(2, 2, "X_\n__")
	before := b.String()

	s.ErrorIs(b.MovePiece("0,0 2,2"), model.ErrOutOfBounds)
	s.ErrorIs(b.MovePiece("3,0 0,1"), model.ErrOutOfBounds)
	s.Equal(before, b.String())
}

func (s *BoardSuite) TestMovePieceFromBlankFails() {
	b := MustNew(2, 2, "X_\n__")
	before := b.String()

	s.ErrorIs(b.MovePiece("1,1 0,0"), model.ErrEmptySource)
	s.Equal(before, b.String())
}

func (s *BoardSuite) TestMovePieceRejectsPlacement() {
	b := MustNew(2, 2, "")
	s.ErrorIs(b.MovePiece("X 0,0"), model.ErrMalformedMove)
}

// Read helper tests

func (s *BoardSuite) TestRowAndCol() {
	b := MustNew(2, 3, "ABC\nDEF")

	s.Equal("DEF", string(glyphs(b.Row(1))))
	s.Equal("CF", string(glyphs(b.Col(2))))
	s.Nil(b.Row(2))
	s.Nil(b.Col(-1))
}

func (s *BoardSuite) TestLayoutIsACopy() {
	b := MustNew(1, 1, "A")

	layout := b.Layout()
	layout[0][0] = 'Z'

	g, _ := b.At(pos(0, 0))
	s.Equal(model.Glyph('A'), g)
}

// String tests

func (s *BoardSuite) TestStringSmallBoard() {
	b := MustNew(2, 2, "AB\nCD")

	s.Equal("  0 1\n0 A B\n1 C D\n", b.String())
}

func (s *BoardSuite) TestStringPadsWideBoards() {
	b := MustNew(11, 12, "")
	lines := strings.Split(b.String(), "\n")

	s.True(strings.HasPrefix(lines[0], "    0  1  2"))
	s.True(strings.HasSuffix(lines[0], " 9 10 11"))
	s.True(strings.HasPrefix(lines[1], " 0  _  _"))
	s.True(strings.HasPrefix(lines[11], "10  _"))
}

func (s *BoardSuite) TestStringReproducesEveryGlyph() {
	layouts := []struct {
		height, width int
		layout        string
	}{
		{2, 2, "AB\nCD"},
		{3, 3, "X_O\n_X_\nO_X"},
		{6, 9, strings.TrimSuffix(strings.Repeat("ABCD EFGH\n", 6), "\n")},
		{10, 11, strings.TrimSuffix(strings.Repeat("abcdefghijk\n", 10), "\n")},
	}

	for _, tc := range layouts {
		b := MustNew(tc.height, tc.width, tc.layout)
		rendered := b.String()
		rows := strings.Split(tc.layout, "\n")

		for row := 0; row < tc.height; row++ {
			want := []rune(rows[row])
			for col := 0; col < tc.width; col++ {
				s.Equal(want[col], glyphAt(rendered, tc.height, tc.width, row, col))
			}
		}
	}
}

func (s *BoardSuite) TestStringIsRepeatable() {
	b := MustNew(3, 3, "X__\n_O_\n__X")
	s.Equal(b.String(), b.String())
}

func glyphs(gs []model.Glyph) []rune {
	result := make([]rune, len(gs))
	for i, g := range gs {
		result[i] = rune(g)
	}
	return result
}
