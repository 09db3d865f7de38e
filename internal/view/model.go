package view

import (
	"regexp"
	"time"
)

type State int

const (
	StateLogin State = iota
	StateRegister
	StateResetPassword
	StateAuthenticated
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateLogin:
		return "login"
	case StateRegister:
		return "register"
	case StateResetPassword:
		return "reset-password"
	case StateAuthenticated:
		return "authenticated"
	case StateEditing:
		return "editing"
	}
	return "unknown"
}

type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageSuccess
	MessageError
)

// Message is a transient notice. ID identifies it for expiry.
type Message struct {
	ID   int
	Kind MessageKind
	Text string
}

type Profile struct {
	ID    string
	Name  string
	Email string
}

const DefaultMessageTTL = 2 * time.Second

const minPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// Model is the screen state of the client. It does no I/O: Handle returns the effects to run.
type Model struct {
	State            State
	Loading          bool
	ConfirmingDelete bool
	Profile          Profile
	Message          Message

	messageTTL    time.Duration
	lastMessageID int
}

func New(messageTTL time.Duration) *Model {
	if messageTTL <= 0 {
		messageTTL = DefaultMessageTTL
	}
	return &Model{
		State:      StateLogin,
		messageTTL: messageTTL,
	}
}

// Authenticated reports whether a profile is on screen.
func (m *Model) Authenticated() bool {
	return m.State == StateAuthenticated || m.State == StateEditing
}

// Handle applies the event and returns the effects it requires.
// User actions are ignored while a request is in flight and outcomes are ignored when none is.
func (m *Model) Handle(ev Event) []Effect {
	switch e := ev.(type) {
	case Startup:
		if !e.HasToken || m.Loading {
			return nil
		}
		m.Loading = true
		return []Effect{FetchProfile{}}
	case MessageExpired:
		if m.Message.ID == e.ID {
			m.Message = Message{}
		}
		return nil
	}

	if isOutcome(ev) {
		if !m.Loading {
			return nil
		}
		return m.handleOutcome(ev)
	}

	if m.Loading {
		return nil
	}
	return m.handleAction(ev)
}

func isOutcome(ev Event) bool {
	switch ev.(type) {
	case LoginSucceeded, LoginFailed, ProfileLoaded, ProfileFailed,
		RegisterSucceeded, RegisterFailed, RecoverSucceeded, RecoverFailed,
		ProfileSaved, SaveFailed, AccountDeleted, DeleteFailed:
		return true
	}
	return false
}

func (m *Model) handleAction(ev Event) []Effect {
	switch e := ev.(type) {
	case ShowRegister:
		if m.State == StateLogin {
			m.State = StateRegister
		}
	case ShowResetPassword:
		if m.State == StateLogin {
			m.State = StateResetPassword
		}
	case BackToLogin:
		if m.State == StateRegister || m.State == StateResetPassword {
			m.State = StateLogin
		}
	case ToggleEdit:
		switch m.State {
		case StateAuthenticated:
			m.State = StateEditing
		case StateEditing:
			m.State = StateAuthenticated
		default:
			return m.fail("Please log in to edit your profile")
		}
	case Logout:
		if !m.Authenticated() {
			return nil
		}
		m.signOut()
		return append([]Effect{ClearToken{}}, m.succeed("Logged out")...)
	case RequestDelete:
		if m.Authenticated() {
			m.ConfirmingDelete = true
		}
	case ConfirmDelete:
		if !m.ConfirmingDelete {
			return nil
		}
		m.ConfirmingDelete = false
		if !e.Yes {
			return nil
		}
		m.Loading = true
		return []Effect{DeleteRequest{}}
	case SubmitLogin:
		if m.State != StateLogin {
			return nil
		}
		if e.Email == "" || e.Password == "" {
			return m.fail("Please fill in all fields")
		}
		if !emailRegex.MatchString(e.Email) {
			return m.fail("Invalid email format")
		}
		m.Loading = true
		return []Effect{LoginRequest{Email: e.Email, Password: e.Password}}
	case SubmitRegister:
		if m.State != StateRegister {
			return nil
		}
		if e.Name == "" || e.Email == "" || e.Password == "" {
			return m.fail("Please fill in all fields")
		}
		if !emailRegex.MatchString(e.Email) {
			return m.fail("Invalid email format")
		}
		if len(e.Password) < minPasswordLen {
			return m.fail("Password must be at least 6 characters")
		}
		m.Loading = true
		return []Effect{RegisterRequest{Name: e.Name, Email: e.Email, Password: e.Password}}
	case SubmitReset:
		if m.State != StateResetPassword {
			return nil
		}
		if e.Email == "" {
			return m.fail("Please enter your email")
		}
		if !emailRegex.MatchString(e.Email) {
			return m.fail("Invalid email format")
		}
		m.Loading = true
		return []Effect{RecoverRequest{Email: e.Email}}
	case SubmitEdit:
		if m.State != StateEditing {
			return nil
		}
		if e.Name == "" || e.Email == "" {
			return m.fail("Name and email are required")
		}
		if !emailRegex.MatchString(e.Email) {
			return m.fail("Invalid email format")
		}
		if e.Password != "" && len(e.Password) < minPasswordLen {
			return m.fail("Password must be at least 6 characters")
		}
		m.Loading = true
		return []Effect{UpdateRequest{Name: e.Name, Email: e.Email, Password: e.Password}}
	}
	return nil
}

func (m *Model) handleOutcome(ev Event) []Effect {
	switch e := ev.(type) {
	case LoginSucceeded:
		// stays loading until the profile arrives
		return []Effect{StoreToken{Token: e.Token}, FetchProfile{}}
	case LoginFailed:
		m.Loading = false
		return m.fail(e.Err)
	case ProfileLoaded:
		m.Loading = false
		m.Profile = e.Profile
		if m.State != StateEditing {
			m.State = StateAuthenticated
		}
		return nil
	case ProfileFailed:
		m.Loading = false
		m.signOut()
		var effects []Effect
		if e.SessionInvalid {
			effects = append(effects, ClearToken{})
		}
		return append(effects, m.fail(e.Err)...)
	case RegisterSucceeded:
		m.Loading = false
		m.State = StateLogin
		return m.succeed("Registration successful, please log in")
	case RegisterFailed:
		m.Loading = false
		return m.fail(e.Err)
	case RecoverSucceeded:
		m.Loading = false
		m.State = StateLogin
		return m.succeed("Check your email for a reset link")
	case RecoverFailed:
		m.Loading = false
		return m.fail(e.Err)
	case ProfileSaved:
		m.Loading = false
		m.Profile = e.Profile
		m.State = StateAuthenticated
		var effects []Effect
		if e.Token != "" {
			effects = append(effects, StoreToken{Token: e.Token})
		}
		return append(effects, m.succeed("Profile updated")...)
	case SaveFailed:
		m.Loading = false
		return m.fail(e.Err)
	case AccountDeleted:
		m.Loading = false
		m.signOut()
		return append([]Effect{ClearToken{}}, m.succeed("Account deleted")...)
	case DeleteFailed:
		m.Loading = false
		return m.fail(e.Err)
	}
	return nil
}

func (m *Model) signOut() {
	m.State = StateLogin
	m.Profile = Profile{}
	m.ConfirmingDelete = false
}

func (m *Model) succeed(text string) []Effect {
	return m.show(MessageSuccess, text)
}

func (m *Model) fail(text string) []Effect {
	return m.show(MessageError, text)
}

func (m *Model) show(kind MessageKind, text string) []Effect {
	m.lastMessageID++
	m.Message = Message{
		ID:   m.lastMessageID,
		Kind: kind,
		Text: text,
	}
	return []Effect{ScheduleClear{ID: m.lastMessageID, After: m.messageTTL}}
}
