package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tailorapp898-afk/tailorsync/internal/client/client"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/settings"
)

// SessionService persists the bearer token between runs and answers whether
// it has expired. The token itself stays opaque: the expiry check is an
// unverified claims parse for user messaging only, the server remains the
// authority on token validity.
type SessionService interface {
	Save(ctx context.Context, s *client.Session) error
	Token(ctx context.Context) (string, error)
	UserID(ctx context.Context) (string, error)
	// Expired reports whether the stored token carries an exp claim in the
	// past. A missing or unparseable token reports false.
	Expired(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

type sessionService struct {
	settings settings.Repository
	now      func() time.Time
}

func NewSessionService(sets settings.Repository) SessionService {
	return &sessionService{settings: sets, now: time.Now}
}

func (s *sessionService) Save(ctx context.Context, sess *client.Session) error {
	if err := s.settings.Set(ctx, settings.KeySessionToken, sess.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := s.settings.Set(ctx, settings.KeyUserID, sess.UserID); err != nil {
		return fmt.Errorf("failed to store user id: %w", err)
	}
	return nil
}

func (s *sessionService) Token(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, settings.KeySessionToken)
}

func (s *sessionService) UserID(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, settings.KeyUserID)
}

func (s *sessionService) Expired(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, nil
	}
	return exp.Before(s.now()), nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.settings.Delete(ctx, settings.KeySessionToken); err != nil {
		return err
	}
	return s.settings.Delete(ctx, settings.KeyUserID)
}
