package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"immoBack/internal/models"
)

// SessionRepository keeps dashboard sessions in redis; the key TTL enforces
// expiry without a sweeper.
type SessionRepository struct {
	Client *redis.Client
}

func NewSessionRepository(addr, password string, db int) *SessionRepository {
	return &SessionRepository{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func sessionKey(token string) string {
	return "dashboard_session:" + token
}

func (r *SessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.Client.Set(ctx, sessionKey(session.Token), data, ttl).Err()
}

func (r *SessionRepository) GetSession(ctx context.Context, token string) (models.Session, error) {
	data, err := r.Client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	return r.Client.Del(ctx, sessionKey(token)).Err()
}
