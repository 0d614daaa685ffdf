package catalog

import (
	"github.com/arcanaland/flashcards/internal/card"
	"github.com/arcanaland/flashcards/internal/deck"
)

// Built-in deck IDs
const (
	HebrewAlphabet     = "hebrew-alphabet"
	GeometryPostulates = "geometry-postulates"
	HeisigKanji        = "heisig-kanji"
)

// Builtin returns the decks that ship with the binary.
func Builtin() []deck.Deck {
	return []deck.Deck{
		{
			ID:      HebrewAlphabet,
			Name:    "Hebrew Alphabet",
			Subject: "language",
			Cards: []card.Card{
				{Term: "א", Definition: "Alef: silent pronunciation"},
				{Term: "ב", Definition: "Bet: b sound"},
				{Term: "ג", Definition: "Gimel: g sound"},
				{Term: "ד", Definition: "Dalet: d sound"},
				{Term: "ה", Definition: "He: soft h sound"},
				{Term: "ו", Definition: "Waw: w sound"},
				{Term: "ז", Definition: "Zayin: z sound"},
				{Term: "ח", Definition: "Het: rough h sound"},
				{Term: "ט", Definition: "Tet: t sound"},
				{Term: "י", Definition: "Yod: y sound"},
				{Term: "כ", Definition: "Kaf: k sound"},
				{Term: "ל", Definition: "Lamed: l sound"},
				{Term: "מ", Definition: "Mem: m sound"},
				{Term: "נ", Definition: "Nun: n sound"},
				{Term: "ס", Definition: "Samek: s sound"},
				{Term: "ע", Definition: "Ayin: silent pronunciation"},
				{Term: "פ", Definition: "Pe: p sound"},
				{Term: "צ", Definition: "Tsade: ts sound"},
				{Term: "ק", Definition: "Qof: k sound"},
				{Term: "ר", Definition: "Resh: r sound"},
				{Term: "שׂ", Definition: "Sin: s sound"},
				{Term: "שׁ", Definition: "Shin: sh sound"},
				{Term: "ת", Definition: "Taw: t sound"},
			},
		},
		{
			ID:       GeometryPostulates,
			Name:     "Euclid's Postulates",
			Subject:  "math",
			Reversed: true, // label first, statement as answer
			Cards: []card.Card{
				{Term: "Postulate 1", Definition: "A straight line segment can be drawn joining any two points."},
				{Term: "Postulate 2", Definition: "Any straight line segment can be extended indefinitely in a straight line."},
				{Term: "Postulate 3", Definition: "Given any straight line segment, a circle can be drawn having the segment as radius and one endpoint as center."},
				{Term: "Postulate 4", Definition: "All right angles are congruent."},
				{Term: "Postulate 5", Definition: "If a line segment intersects two straight lines forming two interior angles on the same side that sum to less than two right angles, then the two lines, if extended indefinitely, meet on that side on which the angles sum to less than two right angles."},
			},
		},
		{
			ID:      HeisigKanji,
			Name:    "Heisig Kanji",
			Subject: "language",
			Cards: []card.Card{
				{Term: "日", Definition: "Sun / Day"},
				{Term: "月", Definition: "Moon / Month"},
				{Term: "火", Definition: "Fire"},
				{Term: "水", Definition: "Water"},
				{Term: "木", Definition: "Tree / Wood"},
				{Term: "金", Definition: "Gold / Money"},
				{Term: "土", Definition: "Earth / Soil"},
				{Term: "山", Definition: "Mountain"},
			},
		},
	}
}
