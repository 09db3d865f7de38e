package tui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fastauth/internal/client"
	"fastauth/internal/view"

	tea "github.com/charmbracelet/bubbletea"
)

// eventMsg carries a view event through the bubbletea loop.
type eventMsg struct {
	ev view.Event
}

func emit(ev view.Event) tea.Msg {
	return eventMsg{ev: ev}
}

// run turns effects into commands. Token effects touch a local file and run inline so a
// following FetchProfile sees them.
func (m *Model) run(effects []view.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch e := eff.(type) {
		case view.StoreToken:
			if err := m.tokens.Save(e.Token); err != nil {
				m.logger.Error().Err(err).Msg("store token")
			}
		case view.ClearToken:
			if err := m.tokens.Clear(); err != nil {
				m.logger.Error().Err(err).Msg("clear token")
			}
		case view.ScheduleClear:
			cmds = append(cmds, m.tick(e.After, func(time.Time) tea.Msg {
				return emit(view.MessageExpired{ID: e.ID})
			}))
		default:
			cmds = append(cmds, m.request(eff))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) request(eff view.Effect) tea.Cmd {
	api := m.api
	logger := m.logger

	switch e := eff.(type) {
	case view.LoginRequest:
		return func() tea.Msg {
			token, err := api.Login(context.Background(), e.Email, e.Password)
			if err != nil {
				logger.Warn().Err(err).Msg("login failed")
				return emit(view.LoginFailed{Err: errText(err)})
			}
			return emit(view.LoginSucceeded{Token: token})
		}
	case view.RegisterRequest:
		return func() tea.Msg {
			if err := api.Register(context.Background(), e.Name, e.Email, e.Password); err != nil {
				logger.Warn().Err(err).Msg("register failed")
				return emit(view.RegisterFailed{Err: errText(err)})
			}
			return emit(view.RegisterSucceeded{})
		}
	case view.RecoverRequest:
		return func() tea.Msg {
			if err := api.RecoverPassword(context.Background(), e.Email); err != nil {
				logger.Warn().Err(err).Msg("recover password failed")
				return emit(view.RecoverFailed{Err: errText(err)})
			}
			return emit(view.RecoverSucceeded{})
		}
	case view.FetchProfile:
		token := m.token()
		return func() tea.Msg {
			p, err := api.Profile(context.Background(), token)
			if err != nil {
				logger.Warn().Err(err).Msg("fetch profile failed")
				return emit(view.ProfileFailed{
					Err:            errText(err),
					SessionInvalid: client.IsStatus(err, http.StatusUnauthorized) || client.IsStatus(err, http.StatusNotFound),
				})
			}
			return emit(view.ProfileLoaded{Profile: view.Profile(p)})
		}
	case view.UpdateRequest:
		token := m.token()
		id := m.view.Profile.ID
		return func() tea.Msg {
			newToken, err := api.UpdateProfile(context.Background(), token, e.Name, e.Email, e.Password)
			if err != nil {
				logger.Warn().Err(err).Msg("update profile failed")
				return emit(view.SaveFailed{Err: errText(err)})
			}
			return emit(view.ProfileSaved{
				Token:   newToken,
				Profile: view.Profile{ID: id, Name: e.Name, Email: e.Email},
			})
		}
	case view.DeleteRequest:
		token := m.token()
		return func() tea.Msg {
			if err := api.DeleteAccount(context.Background(), token); err != nil {
				logger.Warn().Err(err).Msg("delete account failed")
				return emit(view.DeleteFailed{Err: errText(err)})
			}
			return emit(view.AccountDeleted{})
		}
	}
	return nil
}

func (m *Model) token() string {
	token, err := m.tokens.Load()
	if err != nil {
		m.logger.Error().Err(err).Msg("load token")
	}
	return token
}

func errText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Could not reach the server"
}
