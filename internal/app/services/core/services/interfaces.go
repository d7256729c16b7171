package services

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
)

type ServiceUsecase interface {
	CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*models.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
	UpdateService(ctx context.Context, session *models.Session, serviceID string, request *requests.UpdateService) (*models.Service, error)
	DeleteService(ctx context.Context, session *models.Session, serviceID string) error
	VerifyService(ctx context.Context, session *models.Session, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, request *requests.ListServices) ([]models.Service, int, error)
}

type ServiceRepository interface {
	CreateService(ctx context.Context, serviceModel *models.Service) (serviceID string, err error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	UpdateService(ctx context.Context, serviceModel *models.Service) error
	FindAll(ctx context.Context, request *requests.ListServices) ([]models.Service, int, error)
}
