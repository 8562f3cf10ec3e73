package services

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"immoBack/internal/models"
	"immoBack/utils"
)

type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, token string) (models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// SessionService gates the dashboard: a shared secret unlocks it for one
// hour via an opaque token held server-side.
type SessionService struct {
	Sessions   SessionStore
	Secret     string
	SecretHash string
}

func (s *SessionService) SignIn(ctx context.Context, secret string) (models.Session, error) {
	if !s.secretMatches(secret) {
		return models.Session{}, models.ErrInvalidSecret
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return models.Session{}, err
	}

	now := time.Now()
	session := models.Session{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(models.SessionTTL),
	}
	if err := s.Sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Validate is the explicit check behind the dashboard middleware.
func (s *SessionService) Validate(ctx context.Context, token string) error {
	if token == "" {
		return models.ErrSessionNotFound
	}
	session, err := s.Sessions.GetSession(ctx, token)
	if err != nil {
		return err
	}
	if session.ExpiresAt.Before(time.Now()) {
		_ = s.Sessions.DeleteSession(ctx, token)
		return models.ErrSessionNotFound
	}
	return nil
}

func (s *SessionService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.DeleteSession(ctx, token)
}

func (s *SessionService) secretMatches(secret string) bool {
	if s.SecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.SecretHash), []byte(secret)) == nil
	}
	if s.Secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.Secret), []byte(secret)) == 1
}
