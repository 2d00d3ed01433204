package prompt

import (
	"github.com/charmbracelet/huh"

	"worklog/internal/logging"
)

// Prompter asks the user for a line of free text. A cancelled or
// failed prompt returns the empty string, which callers treat as "no
// input".
type Prompter interface {
	Ask(title string) string
}

// Interactive is a Prompter backed by a single-field huh form.
type Interactive struct{}

// NewInteractive creates an interactive Prompter.
func NewInteractive() *Interactive {
	return &Interactive{}
}

// Ask shows an input field with the given title and returns what the
// user typed.
func (p *Interactive) Ask(title string) string {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	)

	if err := form.Run(); err != nil {
		logging.Debugf("prompt cancelled: %v\n", err)
		return ""
	}
	return value
}
