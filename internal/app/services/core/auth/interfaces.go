package auth

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, sessionID string, session *models.Session) error
}
