// Package session runs one study pass through a deck: shuffling, drawing
// cards in order, revealing answers and detecting completion.
//
// The Engine is synchronous and not safe for concurrent use. Callers that
// share one across goroutines must serialize access.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/flashcards/internal/card"
	"github.com/arcanaland/flashcards/internal/deck"
)

var (
	ErrUnknownDeck  = errors.New("unknown deck")
	ErrEmptyDeck    = errors.New("deck has no cards")
	ErrNoActiveDeck = errors.New("no deck has been started")
)

// Lookuper resolves deck IDs. *catalog.Catalog satisfies it.
type Lookuper interface {
	Lookup(id string) (deck.Deck, error)
}

// Session is the live state of one pass through a deck. The shuffled order
// is fixed at start; drawn counts the cards shown so far, current included.
type Session struct {
	deckID   string
	reversed bool
	order    []card.Card
	drawn    int
	done     bool
	revealed bool
}

func (s *Session) total() int {
	return len(s.order)
}

func (s *Session) remaining() int {
	return len(s.order) - s.drawn
}

func (s *Session) current() (card.Card, bool) {
	if s.done || s.drawn == 0 {
		return card.Card{}, false
	}
	return s.order[s.drawn-1], true
}

func (s *Session) advance() {
	s.revealed = false
	if s.remaining() == 0 {
		s.done = true
		return
	}
	s.drawn++
}

func (s *Session) step() Step {
	st := Step{
		Deck:     s.deckID,
		Total:    s.total(),
		Reversed: s.reversed,
	}

	c, ok := s.current()
	if !ok {
		st.Status = Completed
		st.Position = st.Total
		return st
	}

	face := card.Present(c, s.reversed)
	st.Status = Active
	st.Prompt = face.Prompt
	st.Answer = face.Answer
	st.Position = s.drawn
	st.Revealed = s.revealed
	return st
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes shuffles draw from r, for reproducible order.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.shuffle = r.Shuffle
	}
}

// WithObserver registers fn to receive every step the engine emits.
func WithObserver(fn func(Step)) Option {
	return func(e *Engine) {
		e.observe = fn
	}
}

// Engine owns the single active session.
type Engine struct {
	decks   Lookuper
	shuffle func(n int, swap func(i, j int))
	observe func(Step)
	session *Session
}

// NewEngine returns an engine with no active session.
func NewEngine(decks Lookuper, opts ...Option) *Engine {
	e := &Engine{
		decks:   decks,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a fresh, shuffled pass through the deck and draws the first
// card. An unknown deck leaves the current session untouched. An empty deck
// still replaces the session and returns a completed step with ErrEmptyDeck.
func (e *Engine) Start(deckID string) (Step, error) {
	d, err := e.decks.Lookup(deckID)
	if err != nil {
		return Step{}, fmt.Errorf("%w %q: %w", ErrUnknownDeck, deckID, err)
	}

	order := d.CardsCopy()
	e.shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	e.session = &Session{
		deckID:   d.ID,
		reversed: d.Reversed,
		order:    order,
	}
	e.session.advance()

	st := e.emit()
	if st.Total == 0 {
		return st, ErrEmptyDeck
	}
	return st, nil
}

// Restart starts the most recently started deck again.
func (e *Engine) Restart() (Step, error) {
	if e.session == nil {
		return Step{}, ErrNoActiveDeck
	}
	return e.Start(e.session.deckID)
}

// Reveal flips the current card. It is a no-op once revealed or completed.
func (e *Engine) Reveal() (Step, error) {
	if e.session == nil {
		return Step{}, ErrNoActiveDeck
	}
	if _, ok := e.session.current(); ok {
		e.session.revealed = true
	}
	return e.emit(), nil
}

// Advance draws the next card, or reports Completed once the deck is
// exhausted. Advancing a completed session re-reports Completed.
func (e *Engine) Advance() (Step, error) {
	if e.session == nil {
		return Step{}, ErrNoActiveDeck
	}
	e.session.advance()
	return e.emit(), nil
}

// Current returns the step for the active session without changing it, or
// an Idle step if nothing has been started.
func (e *Engine) Current() Step {
	if e.session == nil {
		return Step{Status: Idle}
	}
	return e.session.step()
}

// Reversed reports the direction flag of the active deck.
func (e *Engine) Reversed() bool {
	return e.session != nil && e.session.reversed
}

// Remaining returns how many cards are still to be drawn.
func (e *Engine) Remaining() int {
	if e.session == nil {
		return 0
	}
	return e.session.remaining()
}

func (e *Engine) emit() Step {
	st := e.session.step()
	if e.observe != nil {
		e.observe(st)
	}
	return st
}
