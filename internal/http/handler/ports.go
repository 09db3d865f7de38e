package handler

import (
	"context"
	"fastauth/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Login(ctx context.Context, msg core.LoginMessage) (string, error)
	Profile(ctx context.Context, token string) (core.PublicUser, error)
	UpdateProfile(ctx context.Context, token string, msg core.UpdateMessage) (string, error)
	DeleteAccount(ctx context.Context, token string) error
	RecoverPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, msg core.ResetMessage) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
