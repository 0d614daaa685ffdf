package cmd

import (
	"errors"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/flashcards/internal/catalog"
	"github.com/arcanaland/flashcards/internal/logging"
	"github.com/arcanaland/flashcards/internal/session"
	"github.com/arcanaland/flashcards/internal/study"
	"github.com/arcanaland/flashcards/internal/theme"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study [deck_id]",
	Short: "Study a deck in the terminal",
	Long: `Study shows the cards of a deck one at a time in shuffled order.

Commands, one per line:
  c   reveal the answer
  n   next card (or just press enter)
  r   restart the deck
  t   switch between dark and light themes
  q   quit

If no deck is given, the default deck from your config is used.

Examples:
  flashcards study
  flashcards study geometry-postulates`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(logging.Text)
		if err != nil {
			return err
		}

		deckID := cfg.DefaultDeck
		if len(args) == 1 {
			deckID = args[0]
		}

		decks := loadCatalog(logger)
		d, err := decks.Lookup(deckID)
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("unknown deck %q, run 'flashcards deck ls' to see available decks", deckID)
		}
		if err != nil {
			return err
		}

		engine := session.NewEngine(decks, session.WithObserver(func(st session.Step) {
			logger.Debug("step", "deck", st.Deck, "status", st.Status, "position", st.Position, "total", st.Total, "revealed", st.Revealed)
		}))

		th := theme.ByName(cfg.Theme)
		th.Plain = colorize.NoColor

		loop := &study.Loop{
			Engine: engine,
			In:     os.Stdin,
			Out:    os.Stdout,
			Theme:  th,
			Title:  d.DisplayName(),
			Width:  terminalWidth(),
		}
		return loop.Run(deckID)
	},
}

func init() {
	RootCmd.AddCommand(studyCmd)
}

// terminalWidth returns the wrap width for card text
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return width - 4
}
