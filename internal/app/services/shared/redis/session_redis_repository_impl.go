package redis

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRedisRepository struct {
	client *redis.Client
}

func NewSessionRedisRepository(client *redis.Client) SessionRepository {
	return &sessionRedisRepository{client: client}
}

func (r *sessionRedisRepository) CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	err = r.client.Set(ctx, sessionKeyPrefix+sessionID, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisStoreSession(err)
	}
	return nil
}

func (r *sessionRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGetSession(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return session, nil
}

func (r *sessionRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
	if err != nil {
		return exceptions.ErrRedisDeleteSession(err)
	}
	return nil
}
