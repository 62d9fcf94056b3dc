package model

import "fmt"

// PlayerID identifies a seat in a game session. The engine assigns no
// meaning to the value; turn order belongs to the rule set.
type PlayerID int

func (p PlayerID) String() string {
	return fmt.Sprintf("%d", int(p))
}

// Outcome is the result of a finished game
type Outcome struct {
	Winner  PlayerID
	Decided bool // false means a tie
}

// Win returns an outcome won by the given player
func Win(p PlayerID) Outcome {
	return Outcome{Winner: p, Decided: true}
}

// Tie returns an outcome without a winner
func Tie() Outcome {
	return Outcome{}
}
