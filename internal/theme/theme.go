// Package theme holds the terminal colour palettes.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a named palette for the study screen.
type Theme struct {
	Name   string
	Prompt colorful.Color
	Answer colorful.Color
	Accent colorful.Color
	Muted  colorful.Color

	// Plain disables escape sequences.
	Plain bool
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad colour %q: %v", s, err))
	}
	return c
}

// Dark is the default palette.
func Dark() Theme {
	return Theme{
		Name:   "dark",
		Prompt: hex("#e6e6f0"),
		Answer: hex("#ffd479"),
		Accent: hex("#7aa2f7"),
		Muted:  hex("#6b7089"),
	}
}

// Light is the palette for light terminal backgrounds.
func Light() Theme {
	return Theme{
		Name:   "light",
		Prompt: hex("#1f2330"),
		Answer: hex("#a14a00"),
		Accent: hex("#2a5bd7"),
		Muted:  hex("#8a8f9e"),
	}
}

// ByName returns the named palette, falling back to Dark.
func ByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Toggle switches between dark and light, keeping Plain.
func (t Theme) Toggle() Theme {
	next := Light()
	if t.Name == "light" {
		next = Dark()
	}
	next.Plain = t.Plain
	return next
}

// Paint wraps s in a 24-bit foreground colour sequence.
func (t Theme) Paint(c colorful.Color, s string) string {
	if t.Plain || s == "" {
		return s
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
