package middlewares

import (
	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository redis.SessionRepository
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, sessionRepository redis.SessionRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:               log,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}
}
