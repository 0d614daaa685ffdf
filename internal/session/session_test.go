package session

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/flashcards/internal/card"
	"github.com/arcanaland/flashcards/internal/catalog"
	"github.com/arcanaland/flashcards/internal/deck"
)

func newEngine(t *testing.T, decks ...deck.Deck) *Engine {
	t.Helper()
	c, err := catalog.New(decks...)
	require.NoError(t, err)
	return NewEngine(c, WithRand(rand.New(rand.NewPCG(1, 2))))
}

func builtinEngine(t *testing.T) *Engine {
	return newEngine(t, catalog.Builtin()...)
}

func TestSingleCardScenario(t *testing.T) {
	e := newEngine(t, deck.Deck{
		ID:    "x",
		Cards: []card.Card{{Term: "א", Definition: "Alef"}},
	})

	st, err := e.Start("x")
	require.NoError(t, err)
	assert.Equal(t, Step{
		Status:   Active,
		Deck:     "x",
		Prompt:   "Alef",
		Answer:   "א",
		Position: 1,
		Total:    1,
	}, st)

	st, err = e.Advance()
	require.NoError(t, err)
	assert.Equal(t, Completed, st.Status)
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 1, st.Position)
	assert.Equal(t, "1 : 1", st.Counter())
}

func TestEveryCardVisitedOnce(t *testing.T) {
	for _, d := range catalog.Builtin() {
		t.Run(d.ID, func(t *testing.T) {
			e := builtinEngine(t)

			st, err := e.Start(d.ID)
			require.NoError(t, err)

			var seen []card.Card
			for i := 1; i <= d.Len(); i++ {
				require.Equal(t, Active, st.Status)
				assert.Equal(t, i, st.Position)
				assert.Equal(t, d.Len(), st.Total)
				assert.Equal(t, d.Len()-i, e.Remaining())

				seen = append(seen, unpresent(st))
				st, err = e.Advance()
				require.NoError(t, err)
			}

			assert.Equal(t, Completed, st.Status)
			assert.ElementsMatch(t, d.Cards, seen)
		})
	}
}

func TestDuplicateCardsAreDistinctDraws(t *testing.T) {
	dup := card.Card{Term: "a", Definition: "A"}
	e := newEngine(t, deck.Deck{ID: "dup", Cards: []card.Card{dup, dup, {Term: "b", Definition: "B"}}})

	st, err := e.Start("dup")
	require.NoError(t, err)

	draws := 0
	for st.Status == Active {
		draws++
		st, err = e.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, draws)
}

func TestReversedDirection(t *testing.T) {
	e := builtinEngine(t)

	st, err := e.Start(catalog.GeometryPostulates)
	require.NoError(t, err)
	assert.True(t, st.Reversed)
	assert.True(t, e.Reversed())
	assert.Contains(t, st.Prompt, "Postulate")

	_, err = e.Start(catalog.HebrewAlphabet)
	require.NoError(t, err)
	assert.False(t, e.Reversed())
}

func TestRevealIsIdempotent(t *testing.T) {
	e := builtinEngine(t)
	start, err := e.Start(catalog.HeisigKanji)
	require.NoError(t, err)
	assert.False(t, start.Revealed)

	first, err := e.Reveal()
	require.NoError(t, err)
	second, err := e.Reveal()
	require.NoError(t, err)

	assert.True(t, first.Revealed)
	assert.Equal(t, first, second)
	assert.Equal(t, start.Answer, second.Answer)
	assert.Equal(t, start.Position, second.Position)
	assert.Equal(t, start.Total-1, e.Remaining())
}

func TestAdvanceClearsReveal(t *testing.T) {
	e := builtinEngine(t)
	_, err := e.Start(catalog.HeisigKanji)
	require.NoError(t, err)

	_, err = e.Reveal()
	require.NoError(t, err)
	st, err := e.Advance()
	require.NoError(t, err)

	assert.False(t, st.Revealed)
	assert.Equal(t, 2, st.Position)
}

func TestCompletedIsSticky(t *testing.T) {
	e := newEngine(t, deck.Deck{ID: "x", Cards: []card.Card{{Term: "a", Definition: "A"}}})
	_, err := e.Start("x")
	require.NoError(t, err)

	done, err := e.Advance()
	require.NoError(t, err)
	again, err := e.Advance()
	require.NoError(t, err)
	assert.Equal(t, done, again)

	revealed, err := e.Reveal()
	require.NoError(t, err)
	assert.Equal(t, Completed, revealed.Status)
	assert.False(t, revealed.Revealed)
	assert.True(t, revealed.CanRestart())
}

func TestRestartAfterCompletion(t *testing.T) {
	e := builtinEngine(t)
	d, err := catalog.New(catalog.Builtin()...)
	require.NoError(t, err)
	kanji, err := d.Lookup(catalog.HeisigKanji)
	require.NoError(t, err)

	st, err := e.Start(catalog.HeisigKanji)
	require.NoError(t, err)
	for st.Status == Active {
		st, err = e.Advance()
		require.NoError(t, err)
	}

	st, err = e.Restart()
	require.NoError(t, err)
	assert.Equal(t, Active, st.Status)
	assert.Equal(t, 1, st.Position)
	assert.Equal(t, kanji.Len(), st.Total)

	var seen []card.Card
	for st.Status == Active {
		seen = append(seen, unpresent(st))
		st, err = e.Advance()
		require.NoError(t, err)
	}
	assert.ElementsMatch(t, kanji.Cards, seen)
}

func TestUnknownDeckLeavesSessionUntouched(t *testing.T) {
	e := builtinEngine(t)
	_, err := e.Start(catalog.HebrewAlphabet)
	require.NoError(t, err)
	_, err = e.Advance()
	require.NoError(t, err)
	before := e.Current()

	_, err = e.Start("does-not-exist")
	assert.ErrorIs(t, err, ErrUnknownDeck)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.Equal(t, before, e.Current())
	assert.Equal(t, 2, e.Current().Position)
}

func TestEmptyDeck(t *testing.T) {
	var observed []Step
	c, err := catalog.New(deck.Deck{ID: "empty"})
	require.NoError(t, err)
	e := NewEngine(c, WithObserver(func(s Step) { observed = append(observed, s) }))

	st, err := e.Start("empty")
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, Completed, st.Status)
	assert.Equal(t, 0, st.Total)
	assert.Equal(t, "0 : 0", st.Counter())
	assert.False(t, st.CanRestart())
	assert.Len(t, observed, 1)

	_, err = e.Restart()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestNoActiveDeck(t *testing.T) {
	e := builtinEngine(t)

	assert.Equal(t, Idle, e.Current().Status)
	assert.Equal(t, "0 : 0", e.Current().Counter())
	assert.False(t, e.Reversed())
	assert.Zero(t, e.Remaining())

	_, err := e.Restart()
	assert.ErrorIs(t, err, ErrNoActiveDeck)
	_, err = e.Reveal()
	assert.ErrorIs(t, err, ErrNoActiveDeck)
	_, err = e.Advance()
	assert.ErrorIs(t, err, ErrNoActiveDeck)

	// Still usable afterwards.
	_, err = e.Start(catalog.HeisigKanji)
	assert.NoError(t, err)
}

func TestObserverSeesEveryStep(t *testing.T) {
	var statuses []Status
	c, err := catalog.New(deck.Deck{ID: "x", Cards: []card.Card{{Term: "a", Definition: "A"}}})
	require.NoError(t, err)
	e := NewEngine(c, WithObserver(func(s Step) { statuses = append(statuses, s.Status) }))

	_, _ = e.Start("x")
	_, _ = e.Reveal()
	_, _ = e.Advance()
	_, _ = e.Start("missing")

	assert.Equal(t, []Status{Active, Active, Completed}, statuses)
}

func TestShuffleIsSeeded(t *testing.T) {
	order := func() []string {
		e := builtinEngine(t)
		st, err := e.Start(catalog.HebrewAlphabet)
		require.NoError(t, err)
		var prompts []string
		for st.Status == Active {
			prompts = append(prompts, st.Prompt)
			st, _ = e.Advance()
		}
		return prompts
	}

	assert.Equal(t, order(), order())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "completed", Completed.String())
	text, err := Active.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "active", string(text))
	assert.Equal(t, "Status(9)", Status(9).String())
}

// unpresent recovers the card behind a step.
func unpresent(st Step) card.Card {
	if st.Reversed {
		return card.Card{Term: st.Prompt, Definition: st.Answer}
	}
	return card.Card{Term: st.Answer, Definition: st.Prompt}
}
