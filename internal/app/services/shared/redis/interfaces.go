package redis

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
