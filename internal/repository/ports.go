package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	GetBy(ctx context.Context, column string, value any, dest any) error
	Create(ctx context.Context, record any) error
	UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error
	DeleteBy(ctx context.Context, model any, column string, value any) error
}
