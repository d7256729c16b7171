package services

import (
	"context"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/classifications"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/dto/requests"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
)

type serviceUsecase struct {
	ServiceRepository        ServiceRepository
	ClassificationRepository classifications.ClassificationRepository
}

func NewServiceUsecase(
	serviceMongoRepository ServiceRepository,
	classificationMongoRepository classifications.ClassificationRepository,
) ServiceUsecase {
	return &serviceUsecase{
		ServiceRepository:        serviceMongoRepository,
		ClassificationRepository: classificationMongoRepository,
	}
}

func (uc *serviceUsecase) CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*models.Service, error) {
	if err := uc.validateClassificationCodes(ctx, request.MTCCode, request.BSICCode); err != nil {
		return nil, err
	}

	now := time.Now()
	service := &models.Service{
		Name:        request.Name,
		Description: request.Description,
		MTCCode:     request.MTCCode,
		BSICCode:    request.BSICCode,

		PhoneNumber: request.PhoneNumber,
		Email:       request.Email,
		Website:     request.Website,

		Address:    request.Address,
		City:       request.City,
		Province:   request.Province,
		PostalCode: request.PostalCode,
		Latitude:   request.Latitude,
		Longitude:  request.Longitude,

		BedCapacity:       request.BedCapacity,
		StaffCount:        request.StaffCount,
		PsychiatristCount: request.PsychiatristCount,
		PsychologistCount: request.PsychologistCount,
		NurseCount:        request.NurseCount,
		SocialWorkerCount: request.SocialWorkerCount,

		OperatingHours:   request.OperatingHours,
		Is247:            request.Is247,
		AcceptsEmergency: request.AcceptsEmergency,

		AcceptsBPJS:             request.AcceptsBPJS,
		AcceptsPrivateInsurance: request.AcceptsPrivateInsurance,
		FundingSources:          request.FundingSources,

		IsActive:  true,
		CreatedBy: session.UserID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	serviceID, err := uc.ServiceRepository.CreateService(ctx, service)
	if err != nil {
		return nil, err
	}
	service.ID = serviceID
	return service, nil
}

func (uc *serviceUsecase) GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	return service, nil
}

func (uc *serviceUsecase) UpdateService(ctx context.Context, session *models.Session, serviceID string, request *requests.UpdateService) (*models.Service, error) {
	service, err := uc.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if err := uc.validateClassificationCodes(ctx, request.MTCCode, request.BSICCode); err != nil {
		return nil, err
	}

	service.Name = request.Name
	service.Description = request.Description
	service.MTCCode = request.MTCCode
	service.BSICCode = request.BSICCode
	service.PhoneNumber = request.PhoneNumber
	service.Email = request.Email
	service.Website = request.Website
	service.Address = request.Address
	service.City = request.City
	service.Province = request.Province
	service.PostalCode = request.PostalCode
	service.Latitude = request.Latitude
	service.Longitude = request.Longitude
	service.BedCapacity = request.BedCapacity
	service.StaffCount = request.StaffCount
	service.PsychiatristCount = request.PsychiatristCount
	service.PsychologistCount = request.PsychologistCount
	service.NurseCount = request.NurseCount
	service.SocialWorkerCount = request.SocialWorkerCount
	service.OperatingHours = request.OperatingHours
	service.Is247 = request.Is247
	service.AcceptsEmergency = request.AcceptsEmergency
	service.AcceptsBPJS = request.AcceptsBPJS
	service.AcceptsPrivateInsurance = request.AcceptsPrivateInsurance
	service.FundingSources = request.FundingSources
	if request.IsActive != nil {
		service.IsActive = *request.IsActive
	}
	service.UpdatedAt = time.Now()

	if err := uc.ServiceRepository.UpdateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (uc *serviceUsecase) DeleteService(ctx context.Context, session *models.Session, serviceID string) error {
	service, err := uc.GetServiceByID(ctx, serviceID)
	if err != nil {
		return err
	}

	// Soft delete keeps the service referencable by past surveys.
	now := time.Now()
	service.IsActive = false
	service.UpdatedAt = now
	service.DeletedAt = &now
	return uc.ServiceRepository.UpdateService(ctx, service)
}

func (uc *serviceUsecase) VerifyService(ctx context.Context, session *models.Session, serviceID string) (*models.Service, error) {
	service, err := uc.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	service.IsVerified = true
	service.VerifiedBy = session.UserID
	service.VerifiedAt = &now
	service.UpdatedAt = now

	if err := uc.ServiceRepository.UpdateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (uc *serviceUsecase) ListServices(ctx context.Context, request *requests.ListServices) ([]models.Service, int, error) {
	return uc.ServiceRepository.FindAll(ctx, request)
}

func (uc *serviceUsecase) validateClassificationCodes(ctx context.Context, mtcCode, bsicCode string) error {
	mtc, err := uc.ClassificationRepository.FindMTCByCode(ctx, mtcCode)
	if err != nil {
		return err
	}
	if mtc == nil {
		return exceptions.ErrClassificationNotFound(nil)
	}

	bsic, err := uc.ClassificationRepository.FindBSICByCode(ctx, bsicCode)
	if err != nil {
		return err
	}
	if bsic == nil {
		return exceptions.ErrClassificationNotFound(nil)
	}
	return nil
}
