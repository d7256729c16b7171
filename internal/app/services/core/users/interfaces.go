package users

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error)
	ListUsers(ctx context.Context, request *requests.ListUsers) ([]responses.UserProfile, int, error)
	ListUserActivity(ctx context.Context, userID string, request *requests.Pagination) ([]models.UserActivityLog, int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	FindAll(ctx context.Context, request *requests.ListUsers) ([]models.User, int, error)
}

type ActivityLogRepository interface {
	CreateActivityLog(ctx context.Context, logModel *models.UserActivityLog) error
	FindActivityLogsByUserID(ctx context.Context, userID string, request *requests.Pagination) ([]models.UserActivityLog, int, error)
}
