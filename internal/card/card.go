package card

import "unicode/utf8"

// Card represents a single flashcard
type Card struct {
	Term       string `toml:"term" json:"term" validate:"required"`             // Short side (glyph, label)
	Definition string `toml:"definition" json:"definition" validate:"required"` // Long side (meaning, statement)
}

// Face is what the renderer shows for a card: the prompt up front and the
// answer on the back.
type Face struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Present maps a card to its prompt and answer for the given direction.
// Normal decks quiz the term from its definition; reversed decks show the
// term and ask for the definition.
func Present(c Card, reversed bool) Face {
	if reversed {
		return Face{Prompt: c.Term, Answer: c.Definition}
	}
	return Face{Prompt: c.Definition, Answer: c.Term}
}

// Answer size tiers, as CSS font sizes.
const (
	SizeSmallest = "0.85rem"
	SizeSmall    = "0.95rem"
	SizeMedium   = "1.05rem"
	SizeLarge    = "1.2rem"
	SizeGlyph    = "3rem"
)

// AnswerSize picks the rendered size of an answer. Reversed decks have long
// prose answers and step down as the text grows; everything else is a short
// glyph or word and stays large. Length is counted in runes.
func AnswerSize(answer string, reversed bool) string {
	if !reversed {
		return SizeGlyph
	}

	n := utf8.RuneCountInString(answer)
	switch {
	case n > 260:
		return SizeSmallest
	case n > 200:
		return SizeSmall
	case n > 150:
		return SizeMedium
	default:
		return SizeLarge
	}
}
