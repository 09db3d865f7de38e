package tui

import (
	"context"
	"fastauth/internal/client"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name API . API
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	RecoverPassword(ctx context.Context, email string) error
	Profile(ctx context.Context, token string) (client.Profile, error)
	UpdateProfile(ctx context.Context, token, name, email, password string) (string, error)
	DeleteAccount(ctx context.Context, token string) error
}

//counterfeiter:generate -o fake -fake-name TokenStore . TokenStore
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
