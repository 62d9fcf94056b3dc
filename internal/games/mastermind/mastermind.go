// Package mastermind is the code-breaking game: six guesses at a secret
// sequence of four letters drawn from ABCDEF.
package mastermind

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/dependencies/random"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/grammar"
	"github.com/mcoot/boardwalk/internal/model"
)

// Name is the registry name of the game
const Name = "mastermind"

const (
	// Letters is the alphabet of the secret
	Letters = "ABCDEF"
	// CodeLength is the number of letters in the secret
	CodeLength = 4
	// Rows is the number of guesses allowed
	Rows = 6
	// Width covers the guess, a gap, and the feedback
	Width = 2*CodeLength + 1

	feedbackCol = CodeLength + 1
)

// Feedback glyphs
const (
	Exact    model.Glyph = 'Y'
	Misplace model.Glyph = 'E'
	Absent   model.Glyph = 'N'
)

// Player is the code breaker
const Player model.PlayerID = 0

// Rules implements engine.RuleSet for mastermind
type Rules struct {
	secret string
}

// New draws a random secret
func New(rnd random.Random) *Rules {
	return NewWithSecret(rnd.String(CodeLength, Letters))
}

// NewWithSecret uses a fixed secret
func NewWithSecret(secret string) *Rules {
	return &Rules{secret: secret}
}

// Secret returns the hidden code
func (r *Rules) Secret() string {
	return r.secret
}

// NewBoard creates the guess board: guesses on the left, feedback on the right
func NewBoard() *board.Board {
	row := strings.Repeat(string(model.Blank), CodeLength) + string(model.Null) + strings.Repeat(string(model.Blank), CodeLength)
	return board.MustNew(Rows, Width, strings.TrimSuffix(strings.Repeat(row+"\n", Rows), "\n"))
}

// ValidateMove accepts a guess of exactly four letters from ABCDEF
func (r *Rules) ValidateMove(s engine.State, m model.Move) error {
	if !isGuess(m.Raw) {
		return fmt.Errorf("%w: guess %d letters from %s, e.g. BADF", model.ErrMalformedMove, CodeLength, Letters)
	}
	return nil
}

// PerformMove writes the guess to the current row and scores it
func (r *Rules) PerformMove(s engine.State, m model.Move) error {
	row := s.Round - 1
	for i, c := range m.Raw {
		if err := s.Board.PlacePiece(grammar.Placement(model.Glyph(c), model.Position{Row: row, Col: i})); err != nil {
			return err
		}
	}
	for i, g := range Score(r.secret, m.Raw) {
		if err := s.Board.Place(g, model.Position{Row: row, Col: feedbackCol + i}); err != nil {
			return err
		}
	}
	return nil
}

// Score grades a guess against the secret, one glyph per guessed letter.
// Exact matches are counted first; each remaining secret letter can excuse
// at most one misplaced guess letter.
func Score(secret, guess string) []model.Glyph {
	remaining := make(map[rune]int, len(Letters))
	for _, c := range secret {
		remaining[c]++
	}
	feedback := make([]model.Glyph, CodeLength)
	for i := 0; i < CodeLength; i++ {
		if guess[i] == secret[i] {
			feedback[i] = Exact
			remaining[rune(guess[i])]--
		}
	}
	for i := 0; i < CodeLength; i++ {
		if feedback[i] == Exact {
			continue
		}
		c := rune(guess[i])
		if remaining[c] > 0 {
			feedback[i] = Misplace
			remaining[c]--
		} else {
			feedback[i] = Absent
		}
	}
	return feedback
}

// GameFinished returns true after a correct guess or once every row is used
func (r *Rules) GameFinished(s engine.State) bool {
	return r.solved(s) || s.Round >= s.Board.Height()
}

// Winner is the player if the last guess was correct, otherwise undecided
func (r *Rules) Winner(s engine.State) model.Outcome {
	if r.solved(s) {
		return model.Win(Player)
	}
	return model.Tie()
}

// NextPlayer keeps the single player
func (r *Rules) NextPlayer(s engine.State) model.PlayerID {
	return s.CurrentPlayer
}

// LegalMoves lists every possible code
func (r *Rules) LegalMoves(s engine.State) []string {
	codes := []string{""}
	for i := 0; i < CodeLength; i++ {
		next := make([]string, 0, len(codes)*len(Letters))
		for _, prefix := range codes {
			for _, l := range Letters {
				next = append(next, prefix+string(l))
			}
		}
		codes = next
	}
	return codes
}

// Hooks returns the mastermind finish message, which reveals the code on a loss
func (r *Rules) Hooks() engine.Hooks {
	return engine.Hooks{
		FinishMessage: func(w io.Writer, outcome model.Outcome) {
			if outcome.Decided {
				fmt.Fprintln(w, "You won!")
				return
			}
			fmt.Fprintf(w, "You lose. The code was %s\n", r.secret)
		},
	}
}

func (r *Rules) solved(s engine.State) bool {
	row := s.Board.Row(s.Round - 1)
	if len(row) < CodeLength {
		return false
	}
	var guess strings.Builder
	for _, g := range row[:CodeLength] {
		guess.WriteRune(rune(g))
	}
	return guess.String() == r.secret
}

func isGuess(raw string) bool {
	if len(raw) != CodeLength {
		return false
	}
	for _, c := range raw {
		if !strings.ContainsRune(Letters, c) {
			return false
		}
	}
	return true
}

var (
	_ engine.RuleSet    = (*Rules)(nil)
	_ engine.MoveLister = (*Rules)(nil)
)
