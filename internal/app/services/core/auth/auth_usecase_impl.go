package auth

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/users"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/redis"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/utils"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository        users.UserRepository
	ActivityLogRepository users.ActivityLogRepository
	SessionRepository     redis.SessionRepository
	InternalConfig        *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	activityLogMongoRepository users.ActivityLogRepository,
	sessionRedisRepository redis.SessionRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:        userMongoRepository,
		ActivityLogRepository: activityLogMongoRepository,
		SessionRepository:     sessionRedisRepository,
		InternalConfig:        internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Email:        request.Email,
		Username:     request.Email,
		Password:     hashedPassword,
		FullName:     request.FullName,
		Role:         request.Role,
		PhoneNumber:  request.PhoneNumber,
		Organization: request.Organization,
		IsActive:     true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID := uuid.NewString()
	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	session := &models.Session{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
	if err := uc.SessionRepository.CreateSession(ctx, sessionID, session, expTime); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	_ = uc.ActivityLogRepository.CreateActivityLog(ctx, &models.UserActivityLog{
		UserID:    user.ID,
		Action:    models.ActivityLogin,
		Timestamp: time.Now(),
	})

	return &responses.LoginUser{
		Token: token,
		User: &responses.UserProfile{
			ID:           user.ID,
			Email:        user.Email,
			Username:     user.Username,
			FullName:     user.FullName,
			Role:         user.Role,
			PhoneNumber:  user.PhoneNumber,
			Organization: user.Organization,
			IsActive:     user.IsActive,
		},
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string, session *models.Session) error {
	if err := uc.SessionRepository.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	_ = uc.ActivityLogRepository.CreateActivityLog(ctx, &models.UserActivityLog{
		UserID:    session.UserID,
		Action:    models.ActivityLogout,
		Timestamp: time.Now(),
	})
	return nil
}
