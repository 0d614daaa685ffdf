package deck

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/flashcards/internal/card"
)

// ErrInvalidDeck is returned when a deck file decodes but cannot be used.
var ErrInvalidDeck = errors.New("invalid deck")

// Deck represents a named set of flashcards
type Deck struct {
	ID       string
	Name     string
	Subject  string // Menu grouping, e.g. language or math
	Reversed bool   // Show the term as the prompt
	Cards    []card.Card
	Path     string // Source file, empty for built-in decks
}

// Len returns the number of cards in the deck.
func (d Deck) Len() int {
	return len(d.Cards)
}

// CardsCopy returns a copy of the deck's cards that callers may reorder.
func (d Deck) CardsCopy() []card.Card {
	out := make([]card.Card, len(d.Cards))
	copy(out, d.Cards)
	return out
}

// DisplayName returns the deck name, falling back to its ID.
func (d Deck) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// LoadDeck loads a deck from a TOML file
func LoadDeck(path string) (Deck, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Deck{}, fmt.Errorf("deck file not found: %s", path)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Deck{}, fmt.Errorf("error parsing %s: %w", path, err)
	}

	d := FromConfig(config)
	d.Path = path

	if d.ID == "" {
		return Deck{}, fmt.Errorf("%w: %s has no deck.id", ErrInvalidDeck, path)
	}

	return d, nil
}

// FromConfig builds a deck from its decoded file form.
func FromConfig(config DeckConfig) Deck {
	return Deck{
		ID:       strings.TrimSpace(config.Deck.ID),
		Name:     config.Deck.Name,
		Subject:  config.Deck.Subject,
		Reversed: config.Deck.Reversed,
		Cards:    config.Cards,
	}
}

// Deck file structures
type DeckConfig struct {
	Deck  DeckSection `toml:"deck"`
	Cards []card.Card `toml:"cards" validate:"dive"`
}

type DeckSection struct {
	ID          string `toml:"id" validate:"required"`
	Name        string `toml:"name" validate:"required"`
	Subject     string `toml:"subject"`
	Reversed    bool   `toml:"reversed"`
	Description string `toml:"description"`
	Author      string `toml:"author"`
}
