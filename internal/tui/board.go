package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"rihla/internal/engine"
)

func RunJourney(store *engine.Store, out io.Writer) error {
	m := newJourneyModel(store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
