package tui

import (
	"time"

	"fastauth/internal/view"

	tea "github.com/charmbracelet/bubbletea"
)

func EventOf(msg tea.Msg) (view.Event, bool) {
	e, ok := msg.(eventMsg)
	return e.ev, ok
}

func (m *Model) SetTick(fn func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd) {
	m.tick = fn
}

func (m *Model) ViewModel() *view.Model {
	return m.view
}
