package repository

import (
	"context"
	"errors"
	"fastauth/internal/db"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEmailTaken error = errors.New("email already registered")

var TimeNow = time.Now

type UserRepository struct {
	db Database
}

func NewUserRepository(db Database) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser inserts the user under a freshly generated id and returns the stored record.
func (r *UserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	now := TimeNow().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User

	err := r.db.GetBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, update UserUpdate) error {
	updates := map[string]any{
		"name":       update.Name,
		"email":      update.Email,
		"updated_at": TimeNow().UTC(),
	}
	if update.PasswordHash != "" {
		updates["password_hash"] = update.PasswordHash
	}

	err := r.db.UpdateBy(ctx, &User{}, "id", id, updates)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, db.ErrDuplicateKey):
			return ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

// UpdatePassword replaces only the password hash of the user.
func (r *UserRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	updates := map[string]any{
		"password_hash": passwordHash,
		"updated_at":    TimeNow().UTC(),
	}

	err := r.db.UpdateBy(ctx, &User{}, "id", id, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, &User{}, "id", id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
