package classifications

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
)

type classificationUsecase struct {
	ClassificationRepository ClassificationRepository
}

func NewClassificationUsecase(classificationMongoRepository ClassificationRepository) ClassificationUsecase {
	return &classificationUsecase{
		ClassificationRepository: classificationMongoRepository,
	}
}

func (uc *classificationUsecase) ListMTC(ctx context.Context, deliveryType string) ([]models.MainTypeOfCare, error) {
	return uc.ClassificationRepository.FindAllMTC(ctx, deliveryType)
}

func (uc *classificationUsecase) GetMTCByCode(ctx context.Context, code string) (*models.MainTypeOfCare, error) {
	mtc, err := uc.ClassificationRepository.FindMTCByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if mtc == nil {
		return nil, exceptions.ErrClassificationNotFound(nil)
	}
	return mtc, nil
}

func (uc *classificationUsecase) ListMTCChildren(ctx context.Context, code string) ([]models.MainTypeOfCare, error) {
	parent, err := uc.ClassificationRepository.FindMTCByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, exceptions.ErrClassificationNotFound(nil)
	}
	return uc.ClassificationRepository.FindMTCByParentCode(ctx, code)
}

func (uc *classificationUsecase) ListBSIC(ctx context.Context) ([]models.BasicStableInputsOfCare, error) {
	return uc.ClassificationRepository.FindAllBSIC(ctx)
}
