package session

import (
	"fmt"

	"github.com/arcanaland/flashcards/internal/card"
)

// Status is the state of the session a step was taken from.
type Status int

const (
	Idle Status = iota
	Active
	Completed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Step is what the engine reports after each operation. Prompt and Answer
// are empty unless Status is Active; the renderer decides whether to show
// Answer based on Revealed.
type Step struct {
	Status   Status
	Deck     string
	Prompt   string
	Answer   string
	Position int // 1-based; equals Total once completed
	Total    int
	Revealed bool
	Reversed bool
}

// Counter renders the position indicator, e.g. "3 : 23".
func (s Step) Counter() string {
	return fmt.Sprintf("%d : %d", s.Position, s.Total)
}

// AnswerSize returns the CSS font size for the answer.
func (s Step) AnswerSize() string {
	return card.AnswerSize(s.Answer, s.Reversed)
}

// CanRestart reports whether a restart is worth offering.
func (s Step) CanRestart() bool {
	return s.Status == Completed && s.Total > 0
}
