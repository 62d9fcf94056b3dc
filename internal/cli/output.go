package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/boardwalk/internal/games"
	"github.com/mcoot/boardwalk/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Summary:
		o.printSummary(v, true)
	case []Summary:
		o.printSummaries(v)
	case []games.Info:
		o.printGames(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Summary is the printable form of a recorded match
type Summary struct {
	ID          string    `json:"id"`
	Game        string    `json:"game"`
	Winner      *int      `json:"winner"`
	Rounds      int       `json:"rounds"`
	FinalBoard  string    `json:"final_board"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewSummary converts a stored summary for printing
func NewSummary(s *model.GameSummary) Summary {
	result := Summary{
		ID:          string(s.ID),
		Game:        s.Game,
		Rounds:      s.Rounds,
		FinalBoard:  s.FinalBoard,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
	}
	if s.Outcome.Decided {
		winner := int(s.Outcome.Winner)
		result.Winner = &winner
	}
	return result
}

// NewSummaries converts a list of stored summaries for printing
func NewSummaries(list []*model.GameSummary) []Summary {
	result := make([]Summary, 0, len(list))
	for _, s := range list {
		result = append(result, NewSummary(s))
	}
	return result
}

func (s Summary) result() string {
	if s.Winner == nil {
		return "no winner"
	}
	return fmt.Sprintf("player %d won", *s.Winner)
}

func (o *Output) printSummary(s Summary, withBoard bool) {
	fmt.Fprintf(o.w, "Match: %s\n", s.ID)
	fmt.Fprintf(o.w, "Game: %s\n", s.Game)
	fmt.Fprintf(o.w, "Result: %s after %d rounds\n", s.result(), s.Rounds)
	fmt.Fprintf(o.w, "Played: %s (%s)\n", s.CompletedAt.Format(time.RFC3339), s.CompletedAt.Sub(s.StartedAt).Round(time.Second))
	if withBoard {
		fmt.Fprintf(o.w, "\n%s", s.FinalBoard)
	}
}

func (o *Output) printSummaries(list []Summary) {
	if len(list) == 0 {
		fmt.Fprintln(o.w, "No matches recorded")
		return
	}
	for _, s := range list {
		fmt.Fprintf(o.w, "%s  %-10s  %-13s  %3d rounds  %s\n",
			s.CompletedAt.Format(time.RFC3339), s.Game, s.result(), s.Rounds, s.ID)
	}
}

func (o *Output) printGames(list []games.Info) {
	for _, g := range list {
		board := ""
		if g.CustomBoard {
			board = " [custom layout]"
		}
		fmt.Fprintf(o.w, "%-10s  %d player(s)  %s%s\n", g.Name, g.Players, g.Description, board)
	}
}
