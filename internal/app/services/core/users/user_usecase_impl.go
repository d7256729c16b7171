package users

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/responses"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository        UserRepository
	ActivityLogRepository ActivityLogRepository
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	activityLogMongoRepository ActivityLogRepository,
) UserUsecase {
	return &userUsecase{
		UserRepository:        userMongoRepository,
		ActivityLogRepository: activityLogMongoRepository,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildUserProfile(user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.PhoneNumber != "" {
		user.PhoneNumber = request.PhoneNumber
	}
	if request.Organization != "" {
		user.Organization = request.Organization
	}
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	_ = uc.ActivityLogRepository.CreateActivityLog(ctx, &models.UserActivityLog{
		UserID:    user.ID,
		Action:    models.ActivityUpdate,
		ModelName: "User",
		ObjectID:  user.ID,
		Timestamp: time.Now(),
	})

	return buildUserProfile(user), nil
}

func (uc *userUsecase) ListUsers(ctx context.Context, request *requests.ListUsers) ([]responses.UserProfile, int, error) {
	users, total, err := uc.UserRepository.FindAll(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]responses.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, *buildUserProfile(&users[i]))
	}
	return profiles, total, nil
}

func (uc *userUsecase) ListUserActivity(ctx context.Context, userID string, request *requests.Pagination) ([]models.UserActivityLog, int, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, exceptions.ErrUserNotExist(nil)
	}
	return uc.ActivityLogRepository.FindActivityLogsByUserID(ctx, userID, request)
}

func buildUserProfile(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FullName:     user.FullName,
		Role:         user.Role,
		PhoneNumber:  user.PhoneNumber,
		Organization: user.Organization,
		IsActive:     user.IsActive,
	}
}
