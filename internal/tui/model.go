package tui

import (
	"strings"
	"time"

	"fastauth/internal/view"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type tickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Model renders the view state machine and feeds it key presses and API results.
type Model struct {
	view   *view.Model
	api    API
	tokens TokenStore
	logger zerolog.Logger
	tick   tickFunc

	inputs   []textinput.Model
	focusIdx int
	shown    view.State
	quitting bool
}

func New(api API, tokens TokenStore, logger zerolog.Logger, messageTTL time.Duration) *Model {
	m := &Model{
		view:   view.New(messageTTL),
		api:    api,
		tokens: tokens,
		logger: logger,
		tick:   tea.Tick,
	}
	m.resetInputs()
	return m
}

func (m *Model) Init() tea.Cmd {
	token := m.token()
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return emit(view.Startup{HasToken: token != ""})
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (m.view.State == view.StateAuthenticated && !m.view.ConfirmingDelete && msg.String() == "q") {
			m.quitting = true
			return m, tea.Quit
		}
		if ev, handled := m.keyEvent(msg); handled {
			if ev == nil {
				return m, nil
			}
			return m, m.dispatch(ev)
		}
	case eventMsg:
		return m, m.dispatch(msg.ev)
	}

	return m, m.updateInputs(msg)
}

func (m *Model) dispatch(ev view.Event) tea.Cmd {
	cmd := m.run(m.view.Handle(ev))
	if m.view.State != m.shown {
		m.resetInputs()
	}
	return cmd
}

// keyEvent maps a key press to a view event. handled is false for keys the focused input should get.
func (m *Model) keyEvent(msg tea.KeyMsg) (view.Event, bool) {
	if m.view.ConfirmingDelete {
		switch msg.String() {
		case "y", "Y":
			return view.ConfirmDelete{Yes: true}, true
		case "n", "N", "esc":
			return view.ConfirmDelete{Yes: false}, true
		}
		return nil, true
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.moveFocus(1)
		return nil, true
	case tea.KeyShiftTab, tea.KeyUp:
		m.moveFocus(-1)
		return nil, true
	}

	switch m.view.State {
	case view.StateLogin:
		switch msg.Type {
		case tea.KeyCtrlR:
			return view.ShowRegister{}, true
		case tea.KeyCtrlF:
			return view.ShowResetPassword{}, true
		case tea.KeyCtrlE:
			return view.ToggleEdit{}, true
		case tea.KeyEnter:
			return m.submitOrNext(view.SubmitLogin{Email: m.value(0), Password: m.value(1)})
		}
	case view.StateRegister:
		switch msg.Type {
		case tea.KeyEsc:
			return view.BackToLogin{}, true
		case tea.KeyEnter:
			return m.submitOrNext(view.SubmitRegister{Name: m.value(0), Email: m.value(1), Password: m.value(2)})
		}
	case view.StateResetPassword:
		switch msg.Type {
		case tea.KeyEsc:
			return view.BackToLogin{}, true
		case tea.KeyEnter:
			return m.submitOrNext(view.SubmitReset{Email: m.value(0)})
		}
	case view.StateEditing:
		switch msg.Type {
		case tea.KeyEsc:
			return view.ToggleEdit{}, true
		case tea.KeyEnter:
			return m.submitOrNext(view.SubmitEdit{Name: m.value(0), Email: m.value(1), Password: m.value(2)})
		}
	case view.StateAuthenticated:
		switch msg.String() {
		case "e":
			return view.ToggleEdit{}, true
		case "l":
			return view.Logout{}, true
		case "d":
			return view.RequestDelete{}, true
		}
		return nil, true
	}
	return nil, false
}

// submitOrNext submits on the last field and moves to the next one otherwise.
func (m *Model) submitOrNext(submit view.Event) (view.Event, bool) {
	if m.focusIdx < len(m.inputs)-1 {
		m.moveFocus(1)
		return nil, true
	}
	return submit, true
}

func (m *Model) value(i int) string {
	if i >= len(m.inputs) {
		return ""
	}
	return strings.TrimSpace(m.inputs[i].Value())
}

func (m *Model) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIdx].Focus()
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func newInput(prompt, placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	if secret {
		in.EchoMode = textinput.EchoPassword
	}
	return in
}

// resetInputs builds the form of the current screen.
func (m *Model) resetInputs() {
	m.shown = m.view.State
	m.focusIdx = 0

	switch m.view.State {
	case view.StateLogin:
		m.inputs = []textinput.Model{
			newInput("Email: ", "ana@example.com", false),
			newInput("Password: ", "password", true),
		}
	case view.StateRegister:
		m.inputs = []textinput.Model{
			newInput("Name: ", "Ana", false),
			newInput("Email: ", "ana@example.com", false),
			newInput("Password: ", "at least 6 characters", true),
		}
	case view.StateResetPassword:
		m.inputs = []textinput.Model{
			newInput("Email: ", "ana@example.com", false),
		}
	case view.StateEditing:
		m.inputs = []textinput.Model{
			newInput("Name: ", "", false),
			newInput("Email: ", "", false),
			newInput("New password: ", "leave empty to keep", true),
		}
		m.inputs[0].SetValue(m.view.Profile.Name)
		m.inputs[1].SetValue(m.view.Profile.Email)
	default:
		m.inputs = nil
	}

	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("FastAuth") + "\n\n")

	switch m.view.State {
	case view.StateAuthenticated:
		p := m.view.Profile
		b.WriteString(labelStyle.Render("Name:  ") + p.Name + "\n")
		b.WriteString(labelStyle.Render("Email: ") + p.Email + "\n")
	default:
		for i := range m.inputs {
			b.WriteString(m.inputs[i].View())
			if i < len(m.inputs)-1 {
				b.WriteRune('\n')
			}
		}
		b.WriteRune('\n')
	}

	if m.view.Loading {
		b.WriteString("\n" + focusedStyle.Render("Loading..."))
	}

	if msg := m.view.Message; msg.Text != "" {
		b.WriteString("\n")
		if msg.Kind == view.MessageError {
			b.WriteString(errorMessageStyle(msg.Text))
		} else {
			b.WriteString(successMessageStyle(msg.Text))
		}
	}

	if m.view.ConfirmingDelete {
		b.WriteString("\n" + errorMessageStyle("Delete your account? (y/n)"))
	}

	b.WriteString("\n\n" + blurredStyle.Render(help(m.view.State)))
	return docStyle.Render(b.String())
}

func help(state view.State) string {
	switch state {
	case view.StateLogin:
		return "tab: next field • enter: log in • ctrl+r: register • ctrl+f: forgot password • ctrl+c: quit"
	case view.StateRegister:
		return "tab: next field • enter: register • esc: back"
	case view.StateResetPassword:
		return "enter: send reset link • esc: back"
	case view.StateEditing:
		return "tab: next field • enter: save • esc: cancel"
	case view.StateAuthenticated:
		return "e: edit • d: delete account • l: log out • q: quit"
	}
	return ""
}
