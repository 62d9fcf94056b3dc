// Package games registers the bundled rule sets by name
package games

import (
	"fmt"
	"sort"

	"github.com/mcoot/boardwalk/internal/board"
	"github.com/mcoot/boardwalk/internal/dependencies/random"
	"github.com/mcoot/boardwalk/internal/engine"
	"github.com/mcoot/boardwalk/internal/games/mastermind"
	"github.com/mcoot/boardwalk/internal/games/sudoku"
	"github.com/mcoot/boardwalk/internal/games/tictactoe"
	"github.com/mcoot/boardwalk/internal/model"
)

// Definition is everything the engine needs to start one game
type Definition struct {
	Name  string
	Board *board.Board
	Rules engine.RuleSet
	Hooks engine.Hooks
}

// Options tune how a definition is built
type Options struct {
	// Layout replaces the starting layout, for games that allow it
	Layout string
	Random random.Random
}

// Info describes a registered game
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Players     int    `json:"players"`
	CustomBoard bool   `json:"customBoard"`
}

type entry struct {
	info  Info
	build func(opts Options) (*Definition, error)
}

var registry = map[string]entry{
	tictactoe.Name: {
		info: Info{Name: tictactoe.Name, Description: "Three in a row on a 3x3 grid", Players: 2},
		build: func(opts Options) (*Definition, error) {
			if opts.Layout != "" {
				return nil, fmt.Errorf("%s does not take a layout", tictactoe.Name)
			}
			return &Definition{Name: tictactoe.Name, Board: tictactoe.NewBoard(), Rules: tictactoe.New()}, nil
		},
	},
	sudoku.Name: {
		info: Info{Name: sudoku.Name, Description: "6x6 letter sudoku with 2x3 boxes", Players: 1, CustomBoard: true},
		build: func(opts Options) (*Definition, error) {
			b, err := sudoku.NewBoard(opts.Layout)
			if err != nil {
				return nil, err
			}
			return &Definition{Name: sudoku.Name, Board: b, Rules: sudoku.New()}, nil
		},
	},
	mastermind.Name: {
		info: Info{Name: mastermind.Name, Description: "Break a four letter code in six guesses", Players: 1},
		build: func(opts Options) (*Definition, error) {
			if opts.Layout != "" {
				return nil, fmt.Errorf("%s does not take a layout", mastermind.Name)
			}
			if opts.Random == nil {
				return nil, fmt.Errorf("%s needs a random source", mastermind.Name)
			}
			rules := mastermind.New(opts.Random)
			return &Definition{Name: mastermind.Name, Board: mastermind.NewBoard(), Rules: rules, Hooks: rules.Hooks()}, nil
		},
	},
}

// Build creates a fresh definition of the named game
func Build(name string, opts Options) (*Definition, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownGame, name)
	}
	return e.build(opts)
}

// Lookup returns the description of the named game
func Lookup(name string) (Info, error) {
	e, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", model.ErrUnknownGame, name)
	}
	return e.info, nil
}

// Names returns the registered game names in order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every registered game in name order
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}
