package validator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	playground "github.com/go-playground/validator/v10"

	"github.com/arcanaland/flashcards/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	config deck.DeckConfig
}

var structs = playground.New()

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// Validate checks a deck file. A returned error means the file could not be
// read at all; problems with its content are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decodeDeckToml(); err != nil {
		return v.Results, err
	}

	v.validateFields()
	v.validateIdentifier()
	v.validateCards()

	return v.Results, nil
}

func (v *Validator) decodeDeckToml() error {
	if _, err := os.Stat(v.DeckPath); os.IsNotExist(err) {
		return fmt.Errorf("deck file not found: %s", v.DeckPath)
	}

	md, err := toml.DecodeFile(v.DeckPath, &v.config)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.DeckPath, err)
	}

	for _, key := range md.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
	return nil
}

// validateFields reports missing required fields
func (v *Validator) validateFields() {
	err := structs.Struct(v.config)
	if err == nil {
		return
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}

	for _, fe := range fieldErrs {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s is required", fieldPath(fe)))
	}
}

// fieldPath turns DeckConfig.Cards[2].Term into cards[2].term
func fieldPath(fe playground.FieldError) string {
	ns := strings.TrimPrefix(fe.Namespace(), "DeckConfig.")
	return strings.ToLower(ns)
}

// validateIdentifier checks the deck id is usable on the command line
func (v *Validator) validateIdentifier() {
	id := v.config.Deck.ID
	if id == "" {
		return // Already reported as missing
	}
	if strings.TrimSpace(id) != id || strings.ContainsAny(id, " \t") {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck.id must not contain whitespace: %q", id))
	}
	if id != strings.ToLower(id) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deck.id %q is not lower case", id))
	}
}

// validateCards checks the card list
func (v *Validator) validateCards() {
	cards := v.config.Cards
	if len(cards) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			"deck has no cards; studying it completes immediately")
		return
	}

	seen := make(map[string]int, len(cards))
	for i, c := range cards {
		if c.Term == "" || c.Definition == "" {
			continue // Already reported as missing
		}

		key := c.Term + "\x00" + c.Definition
		if first, ok := seen[key]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("cards[%d] duplicates cards[%d] (%s); both will be drawn", i, first, c.Term))
			continue
		}
		seen[key] = i
	}
}
