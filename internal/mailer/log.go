package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer writes reset links to the log instead of sending them. Meant for local development.
type LogMailer struct {
	logs *zap.SugaredLogger
}

func NewLogMailer(logger *zap.SugaredLogger) *LogMailer {
	return &LogMailer{
		logs: logger,
	}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to string, link string) error {
	m.logs.Infow("password reset link", "to", to, "link", link)
	return nil
}
