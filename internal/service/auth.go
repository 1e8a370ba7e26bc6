package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

const basicScheme = "basic"

// Auth issues, resolves and revokes session tokens.
type Auth struct {
	userStore  model.UserStore
	sessions   model.SessionStore
	tokens     model.TokenMinter
	hasher     model.PasswordHasher
	sessionTTL time.Duration
	logger     *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessions model.SessionStore,
	tokens model.TokenMinter,
	hasher model.PasswordHasher,
	sessionTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	if sessionTTL <= 0 {
		sessionTTL = model.DefaultSessionDuration
	}

	return &Auth{
		userStore:  userStore,
		sessions:   sessions,
		tokens:     tokens,
		hasher:     hasher,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// parseBasic extracts email and password from a "Basic <base64>" header.
func parseBasic(header string) (string, string, bool) {
	scheme, encoded, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, basicScheme) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", "", false
	}

	return email, password, true
}

// Login checks Basic credentials and returns a new session token.
func (a *Auth) Login(ctx context.Context, authorization string) (string, error) {
	email, password, ok := parseBasic(authorization)
	if !ok {
		a.logger.Debug("Auth service: malformed authorization header")
		return "", apierr.NewErrUnauthorized()
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: unknown email",
				"email", email)
			return "", apierr.NewErrUnauthorized()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", apierr.NewErrInternal(fmt.Errorf("failed to get user by email: %w", err))
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return "", apierr.NewErrUnauthorized()
	}

	token, err := a.tokens.Mint()
	if err != nil {
		a.logger.Error("Auth service: failed to mint token",
			"user_id", user.ID,
			"error", err.Error())
		return "", apierr.NewErrInternal(fmt.Errorf("failed to mint token: %w", err))
	}

	if err := a.sessions.Set(ctx, token, user.ID, a.sessionTTL); err != nil {
		a.logger.Error("Auth service: failed to store session",
			"user_id", user.ID,
			"error", err.Error())
		return "", apierr.NewErrInternal(fmt.Errorf("failed to store session: %w", err))
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return token, nil
}

// ResolveSession returns the user a live token belongs to. It never extends
// the session.
func (a *Auth) ResolveSession(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apierr.NewErrUnauthorized()
	}

	if err := a.tokens.Verify(token); err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return uuid.Nil, apierr.NewErrUnauthorized()
	}

	userID, err := a.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, apierr.NewErrUnauthorized()
		}
		a.logger.Error("Auth service: failed to get session",
			"error", err.Error())
		return uuid.Nil, apierr.NewErrInternal(fmt.Errorf("failed to get session: %w", err))
	}

	return userID, nil
}

// Logout revokes token.
func (a *Auth) Logout(ctx context.Context, token string) error {
	userID, err := a.ResolveSession(ctx, token)
	if err != nil {
		return err
	}

	if err := a.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierr.NewErrUnauthorized()
		}
		a.logger.Error("Auth service: failed to delete session",
			"user_id", userID,
			"error", err.Error())
		return apierr.NewErrInternal(fmt.Errorf("failed to delete session: %w", err))
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)

	return nil
}

// GetCurrentUser loads the user behind token.
func (a *Auth) GetCurrentUser(ctx context.Context, token string) (model.User, error) {
	userID, err := a.ResolveSession(ctx, token)
	if err != nil {
		return model.User{}, err
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Warn("Auth service: session points to missing user",
				"user_id", userID)
			return model.User{}, apierr.NewErrUnauthorized()
		}
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, apierr.NewErrInternal(fmt.Errorf("failed to get user by id: %w", err))
	}

	return user, nil
}
