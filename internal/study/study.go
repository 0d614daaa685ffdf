// Package study drives a session engine from a line-oriented terminal.
package study

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/flashcards/internal/session"
	"github.com/arcanaland/flashcards/internal/theme"
)

// Loop reads one command per line from In and renders each step to Out.
type Loop struct {
	Engine *session.Engine
	In     io.Reader
	Out    io.Writer
	Theme  theme.Theme
	Title  string // Shown above the card, defaults to the deck ID
	Width  int    // Wrap width for card text
}

const help = "[c]heck  [n]ext  [r]estart  [t]heme  [q]uit"

// Run starts deckID and processes commands until quit or end of input.
// Unknown decks are returned as errors before anything is drawn.
func (l *Loop) Run(deckID string) error {
	st, err := l.Engine.Start(deckID)
	if err != nil && !errors.Is(err, session.ErrEmptyDeck) {
		return err
	}
	l.render(st)

	scanner := bufio.NewScanner(l.In)
	for {
		l.printf("%s ", l.Theme.Paint(l.Theme.Muted, ">"))
		if !scanner.Scan() {
			l.printf("\n")
			return scanner.Err()
		}

		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch cmd {
		case "q", "quit", "exit":
			return nil
		case "c", "check":
			st, err = l.Engine.Reveal()
		case "", "n", "next":
			st, err = l.Engine.Advance()
		case "r", "restart":
			st, err = l.Engine.Restart()
		case "t", "theme":
			l.Theme = l.Theme.Toggle()
			st = l.Engine.Current()
		case "?", "h", "help":
			l.printf("%s\n", help)
			continue
		default:
			l.printf("unknown command %q, try ?\n", cmd)
			continue
		}

		if err != nil && !errors.Is(err, session.ErrEmptyDeck) {
			return err
		}
		l.render(st)
	}
}

func (l *Loop) render(st session.Step) {
	th := l.Theme
	title := l.Title
	if title == "" {
		title = st.Deck
	}

	l.printf("\n%s  %s\n", th.Paint(th.Accent, title), th.Paint(th.Muted, st.Counter()))

	if st.Status != session.Active {
		l.printf("%s\n", th.Paint(th.Answer, "All terms reviewed!"))
		if st.CanRestart() {
			l.printf("%s\n", th.Paint(th.Muted, "[r]estart  [q]uit"))
		}
		return
	}

	for _, line := range wrapText(st.Prompt, l.width()) {
		l.printf("  %s\n", th.Paint(th.Prompt, line))
	}
	l.printf("\n")

	if st.Revealed {
		for _, line := range wrapText(st.Answer, l.width()) {
			l.printf("  %s\n", th.Paint(th.Answer, line))
		}
	} else {
		l.printf("  %s\n", th.Paint(th.Muted, "?"))
	}
	l.printf("%s\n", th.Paint(th.Muted, help))
}

func (l *Loop) width() int {
	if l.Width <= 0 {
		return 72
	}
	return l.Width
}

func (l *Loop) printf(format string, args ...any) {
	fmt.Fprintf(l.Out, format, args...)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var line []rune
	for _, word := range words {
		w := []rune(word)
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			result = append(result, string(line))
			line = w
		}
	}

	return append(result, string(line))
}
