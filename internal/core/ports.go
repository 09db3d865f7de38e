package core

import (
	"context"
	"fastauth/internal/repository"
	tokenIssuer "fastauth/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	UpdateUser(ctx context.Context, id string, update repository.UserUpdate) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	DeleteUser(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Mailer . Mailer
type Mailer interface {
	SendPasswordReset(ctx context.Context, to string, link string) error
}
