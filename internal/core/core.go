package core

import (
	"context"
	"errors"
	"fastauth/internal/repository"
	tokenIssuer "fastauth/pkg/jwt"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email already registered")
var ErrInvalidToken error = errors.New("invalid token")
var ErrPasswordTooLong error = errors.New("password must not exceed 72 bytes")

type Options struct {
	TokenExpiration time.Duration
	ResetExpiration time.Duration
	BcryptCost      int
	ResetURL        string
}

// Auth registers users, logs them in and manages their accounts.
type Auth struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	mailer    Mailer
	opts      Options
}

// NewAuth is a constructor function for the Auth type. Zero options fall back to a one hour access token,
// a fifteen minute reset token and bcrypt's default cost.
func NewAuth(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, mailer Mailer, opts Options) *Auth {
	if opts.TokenExpiration <= 0 {
		opts.TokenExpiration = time.Hour
	}
	if opts.ResetExpiration <= 0 {
		opts.ResetExpiration = 15 * time.Minute
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	return &Auth{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		mailer:    mailer,
		opts:      opts,
	}
}

// Register stores a new user with a hashed password. Emails are unique.
func (a *Auth) Register(ctx context.Context, msg RegisterMessage) error {
	_, err := a.repo.GetUserByEmail(ctx, msg.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user from db: %w", err)
	}

	hash, err := a.hashPassword(msg.Password)
	if err != nil {
		return err
	}

	user, err := a.repo.CreateUser(ctx, repository.User{
		Name:         msg.Name,
		Email:        msg.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	a.logs.Infow("user registered", "userId", user.ID)
	return nil
}

// Login checks the credentials and returns a signed access token.
func (a *Auth) Login(ctx context.Context, msg LoginMessage) (string, error) {
	user, err := a.repo.GetUserByEmail(ctx, msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	return a.issue(user, tokenIssuer.PurposeAccess, a.opts.TokenExpiration)
}

// Profile returns the owner of an access token, re-read from the database.
func (a *Auth) Profile(ctx context.Context, token string) (PublicUser, error) {
	user, err := a.tokenOwner(ctx, token, tokenIssuer.PurposeAccess)
	if err != nil {
		return PublicUser{}, err
	}

	return toPublicUser(user), nil
}

// UpdateProfile edits the token owner's account and returns a fresh access token carrying the new email.
func (a *Auth) UpdateProfile(ctx context.Context, token string, msg UpdateMessage) (string, error) {
	user, err := a.tokenOwner(ctx, token, tokenIssuer.PurposeAccess)
	if err != nil {
		return "", err
	}

	update := repository.UserUpdate{
		Name:  msg.Name,
		Email: msg.Email,
	}

	if update.Email != user.Email {
		_, err = a.repo.GetUserByEmail(ctx, update.Email)
		if err == nil {
			return "", ErrEmailTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return "", fmt.Errorf("get user from db: %w", err)
		}
	}

	if msg.Password != "" {
		update.PasswordHash, err = a.hashPassword(msg.Password)
		if err != nil {
			return "", err
		}
	}

	err = a.repo.UpdateUser(ctx, user.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return "", ErrUserNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("update user: %w", err)
	}

	a.logs.Infow("user updated", "userId", user.ID, "passwordChanged", msg.Password != "")

	user.Name = update.Name
	user.Email = update.Email
	return a.issue(user, tokenIssuer.PurposeAccess, a.opts.TokenExpiration)
}

// DeleteAccount removes the owner of the access token.
func (a *Auth) DeleteAccount(ctx context.Context, token string) error {
	user, err := a.tokenOwner(ctx, token, tokenIssuer.PurposeAccess)
	if err != nil {
		return err
	}

	err = a.repo.DeleteUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	a.logs.Infow("user deleted", "userId", user.ID)
	return nil
}

// RecoverPassword mails a reset link to a registered email. Unknown emails are not reported back.
func (a *Auth) RecoverPassword(ctx context.Context, email string) error {
	user, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			a.logs.Infow("password recovery requested for unknown email")
			return nil
		}
		return fmt.Errorf("get user from db: %w", err)
	}

	token, err := a.issue(user, tokenIssuer.PurposeReset, a.opts.ResetExpiration)
	if err != nil {
		return err
	}

	link, err := resetLink(a.opts.ResetURL, token)
	if err != nil {
		return err
	}

	if err = a.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	a.logs.Infow("password reset email sent", "userId", user.ID)
	return nil
}

// ResetPassword sets a new password for the owner of a reset token.
func (a *Auth) ResetPassword(ctx context.Context, msg ResetMessage) error {
	user, err := a.tokenOwner(ctx, msg.Token, tokenIssuer.PurposeReset)
	if err != nil {
		return err
	}

	hash, err := a.hashPassword(msg.Password)
	if err != nil {
		return err
	}

	err = a.repo.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	a.logs.Infow("password reset", "userId", user.ID)
	return nil
}

// tokenOwner validates the token for the given purpose and loads the user it was issued to.
func (a *Auth) tokenOwner(ctx context.Context, token string, purpose string) (repository.User, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return repository.User{}, fmt.Errorf("validate jwt token: %w: %w", ErrInvalidToken, err)
	}

	typ, _ := claims["typ"].(string)
	userId, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if typ != purpose || userId == "" || email == "" {
		return repository.User{}, fmt.Errorf("unexpected %q token claims: %w", typ, ErrInvalidToken)
	}

	user, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("get user from db: %w", err)
	}

	// the email may have been released and taken by another account since the token was issued
	if user.ID != userId {
		return repository.User{}, ErrUserNotFound
	}

	return user, nil
}

func (a *Auth) issue(user repository.User, purpose string, expiration time.Duration) (string, error) {
	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    user.ID,
		Email:      user.Email,
		Purpose:    purpose,
		Expiration: expiration,
	})

	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (a *Auth) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.opts.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func resetLink(base string, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse reset url: %w", err)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func toPublicUser(user repository.User) PublicUser {
	return PublicUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
