// internal/bingo/game.go
//
// Whole-game parsing and the two winner searches.
// Responsibilities:
//   - ParseGame: absorbing-error state machine over blank-line chunks.
//   - Game.FindWinningCall: first card to complete a row or column.
//   - Game.FindLastWinner: last card to complete, solved cards frozen.

package bingo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Game holds the call sequence and the cards, both in input order. Input
// order is load-bearing: it is the only tie-break when several cards
// complete on the same call.
type Game struct {
	Calls []int
	Cards []*Card
}

// FindWinningCall replays the calls in order against every card (cards in
// input order within each call) and returns the status of the first card to
// solve. Lower card index wins a tie within the same call. If no card ever
// solves, the zero (unsolved) Status is returned.
//
// The search marks cell and card state in place; run it on a freshly parsed
// Game.
func (g *Game) FindWinningCall() Status {
	for _, call := range g.Calls {
		for _, card := range g.Cards {
			if st := card.MarkValue(call); st.Solved {
				return st
			}
		}
	}
	return Status{}
}

// FindLastWinner replays the calls in order but skips cards that already
// solved, freezing both their status and their cell marks. It returns the
// most recent solve once every card has solved, or, if the calls run out
// first, the last solve seen so far. The bool reports whether any card
// solved at all.
//
// Like FindWinningCall, this mutates the Game; parse a fresh Game per run.
func (g *Game) FindLastWinner() (Status, bool) {
	var last Status
	found := false
	wins := 0

	for _, call := range g.Calls {
		for _, card := range g.Cards {
			if card.Status().Solved {
				continue
			}
			if st := card.MarkValue(call); st.Solved {
				last = st
				found = true
				wins++
				if wins == len(g.Cards) {
					return last, true
				}
			}
		}
	}
	return last, found
}

// parseState enumerates the game parser's states. The grammar is fixed and
// linear (one calls line, then one or more card blocks), so a tagged state
// value folded over the chunks is enough; no grammar engine needed.
type parseState int

const (
	stateWaitingForCalls parseState = iota // expecting the calls line
	stateCalls                             // calls parsed, expecting first card
	stateBoards                            // at least one card parsed
	stateError                             // absorbing; first error retained
)

// gameParser threads the fold state through the chunks.
type gameParser struct {
	state parseState
	calls []int
	cards []*Card
	err   error
}

// consume advances the state machine by one chunk. Once in stateError every
// further chunk is ignored; the first captured error is what surfaces.
func (p *gameParser) consume(chunk string) {
	switch p.state {
	case stateWaitingForCalls:
		calls, err := parseCalls(chunk)
		if err != nil {
			p.fail(err)
			return
		}
		p.calls = calls
		p.state = stateCalls
	case stateCalls, stateBoards:
		card, err := ParseCard(chunk)
		if err != nil {
			p.fail(err)
			return
		}
		p.cards = append(p.cards, card)
		p.state = stateBoards
	case stateError:
		// swallow everything after the first failure
	}
}

func (p *gameParser) fail(err error) {
	p.state = stateError
	p.err = err
}

// finish converts the terminal state into a Game or an error. Only a state
// with at least one parsed card is a valid game; stopping in any earlier
// state (e.g. calls but zero cards) is a parse failure too.
func (p *gameParser) finish() (*Game, error) {
	switch p.state {
	case stateBoards:
		return &Game{Calls: p.calls, Cards: p.cards}, nil
	case stateError:
		return nil, fmt.Errorf("unable to parse game: %w", p.err)
	default:
		return nil, errors.New("unable to parse game: unknown error")
	}
}

// ParseGame parses the whole input text: blank-line-delimited chunks, the
// first holding the comma-separated call sequence, each later one a card
// block. Parsing runs over all chunks even after a failure (the error state
// is absorbing) and surfaces the first error with context at the end.
func ParseGame(input string) (*Game, error) {
	p := &gameParser{}
	for _, chunk := range strings.Split(input, "\n\n") {
		p.consume(chunk)
	}
	return p.finish()
}

// parseCalls parses the comma-separated call sequence. Order is preserved
// and duplicates are kept as given.
func parseCalls(chunk string) ([]int, error) {
	parts := strings.Split(chunk, ",")
	calls := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid call value %q: %w", part, err)
		}
		calls = append(calls, n)
	}
	return calls, nil
}
