package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// Users registers new accounts.
type Users struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUsers(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Users {
	return &Users{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates a user storing only the password hash.
func (u *Users) Register(ctx context.Context, email, password string) (model.User, error) {
	if email == "" {
		return model.User{}, apierr.NewErrMissingField("email")
	}
	if password == "" {
		return model.User{}, apierr.NewErrMissingField("password")
	}

	_, err := u.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		u.logger.Info("User service: email already registered",
			"email", email)
		return model.User{}, apierr.NewErrAlreadyExist()
	case !errors.Is(err, model.ErrNotFound):
		u.logger.Error("User service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, apierr.NewErrInternal(fmt.Errorf("failed to get user by email: %w", err))
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("User service: failed to hash password",
			"error", err.Error())
		return model.User{}, apierr.NewErrInternal(fmt.Errorf("failed to hash password: %w", err))
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return model.User{}, apierr.NewErrInternal(fmt.Errorf("failed to generate user id: %w", err))
	}

	user, err := u.userStore.Create(ctx, model.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.User{}, apierr.NewErrAlreadyExist()
		}
		u.logger.Error("User service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, apierr.NewErrInternal(fmt.Errorf("failed to create user: %w", err))
	}

	u.logger.Info("User service: user registered",
		"user_id", user.ID)

	return user, nil
}
