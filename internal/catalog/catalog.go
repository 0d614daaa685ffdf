// Package catalog maps deck identifiers to the decks available for study.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arcanaland/flashcards/internal/deck"
)

// ErrNotFound is returned by Lookup for an unknown deck ID.
var ErrNotFound = errors.New("deck not found")

// Catalog is a fixed set of decks keyed by ID. It is never mutated after
// construction and is safe for concurrent reads.
type Catalog struct {
	decks map[string]deck.Deck
}

// New builds a catalog from decks. IDs must be non-empty and unique.
func New(decks ...deck.Deck) (*Catalog, error) {
	c := &Catalog{decks: make(map[string]deck.Deck, len(decks))}
	for _, d := range decks {
		if err := c.add(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(d deck.Deck) error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: empty deck id", deck.ErrInvalidDeck)
	}
	if _, ok := c.decks[d.ID]; ok {
		return fmt.Errorf("%w: duplicate deck id %q", deck.ErrInvalidDeck, d.ID)
	}
	d.Cards = d.CardsCopy()
	c.decks[d.ID] = d
	return nil
}

// Load returns the built-in decks plus every deck found in libraryDir.
// Library decks that fail to load or reuse an existing ID are logged and
// skipped.
func Load(libraryDir string, logger *slog.Logger) *Catalog {
	c, err := New(Builtin()...)
	if err != nil {
		// Built-in decks are static and known to be valid.
		panic(err)
	}

	library, err := LoadLibrary(libraryDir)
	if err != nil {
		logger.Warn("some library decks could not be loaded", "dir", libraryDir, "error", err)
	}

	for _, d := range library {
		if err := c.add(d); err != nil {
			logger.Warn("skipping library deck", "path", d.Path, "error", err)
			continue
		}
		logger.Debug("loaded library deck", "id", d.ID, "cards", d.Len(), "path", d.Path)
	}

	return c
}

// LoadLibrary reads every *.toml deck file in dir. A missing directory holds
// no decks. Files that fail to load are reported in the returned error while
// the remaining decks are still returned.
func LoadLibrary(dir string) ([]deck.Deck, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading deck library: %w", err)
	}

	var decks []deck.Deck
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}

		d, err := deck.LoadDeck(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decks = append(decks, d)
	}

	return decks, errors.Join(errs...)
}

// Lookup returns the deck with the given ID. The returned deck's cards are a
// private copy.
func (c *Catalog) Lookup(id string) (deck.Deck, error) {
	d, ok := c.decks[id]
	if !ok {
		return deck.Deck{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	d.Cards = d.CardsCopy()
	return d, nil
}

// List returns all decks ordered by subject, then ID.
func (c *Catalog) List() []deck.Deck {
	out := make([]deck.Deck, 0, len(c.decks))
	for _, d := range c.decks {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len returns the number of decks.
func (c *Catalog) Len() int {
	return len(c.decks)
}
