package cmd

import (
	"fmt"
	"os"
	"sort"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/flashcards/internal/card"
	"github.com/arcanaland/flashcards/internal/catalog"
	"github.com/arcanaland/flashcards/internal/deck"
	"github.com/arcanaland/flashcards/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck file",
	Long: `Validate checks that a deck file is well-formed TOML with a deck id, a name,
and a term and definition for every card.

A valid deck is summarized: its card count, its quiz direction and, for
reversed decks, how many answers fall into each text size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck file not found: %s", deckPath)
		}

		results, err := validator.NewValidator(deckPath).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		if len(results.Errors) > 0 {
			fmt.Println(colorize.RedString("%s: %d error(s)", deckPath, len(results.Errors)))
			printNumbered(results.Errors)
			printWarnings(results.Warnings)
			return fmt.Errorf("validation failed")
		}

		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return err
		}

		fmt.Println(colorize.GreenString("%s: ok", deckPath))
		printDeckSummary(d)
		printWarnings(results.Warnings)
		return nil
	},
}

func printNumbered(lines []string) {
	for i, line := range lines {
		fmt.Printf("%d. %s\n", i+1, line)
	}
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println(colorize.YellowString("\nWarnings:"))
	printNumbered(warnings)
}

func printDeckSummary(d deck.Deck) {
	direction := "definition → term"
	if d.Reversed {
		direction = "term → definition"
	}
	fmt.Printf("  %s (%s), %d cards, %s\n", d.ID, d.DisplayName(), d.Len(), direction)

	for _, b := range catalog.Builtin() {
		if b.ID == d.ID {
			fmt.Println(colorize.YellowString("  id %q is taken by a built-in deck; the library copy will be skipped", d.ID))
			break
		}
	}

	if d.Reversed && d.Len() > 0 {
		printSizeTiers(d)
	}
}

// printSizeTiers counts answers per rendered size, largest text first.
func printSizeTiers(d deck.Deck) {
	counts := map[string]int{}
	for _, c := range d.Cards {
		counts[card.AnswerSize(card.Present(c, d.Reversed).Answer, d.Reversed)]++
	}

	tiers := make([]string, 0, len(counts))
	for size := range counts {
		tiers = append(tiers, size)
	}
	order := map[string]int{card.SizeLarge: 0, card.SizeMedium: 1, card.SizeSmall: 2, card.SizeSmallest: 3}
	sort.Slice(tiers, func(i, j int) bool { return order[tiers[i]] < order[tiers[j]] })

	for _, size := range tiers {
		fmt.Printf("  answers at %s: %d\n", size, counts[size])
	}
}
