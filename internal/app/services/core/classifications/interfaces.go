package classifications

import (
	"context"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/models"
)

type ClassificationUsecase interface {
	ListMTC(ctx context.Context, deliveryType string) ([]models.MainTypeOfCare, error)
	GetMTCByCode(ctx context.Context, code string) (*models.MainTypeOfCare, error)
	ListMTCChildren(ctx context.Context, code string) ([]models.MainTypeOfCare, error)
	ListBSIC(ctx context.Context) ([]models.BasicStableInputsOfCare, error)
}

type ClassificationRepository interface {
	FindAllMTC(ctx context.Context, deliveryType string) ([]models.MainTypeOfCare, error)
	FindMTCByCode(ctx context.Context, code string) (*models.MainTypeOfCare, error)
	FindMTCByParentCode(ctx context.Context, parentCode string) ([]models.MainTypeOfCare, error)
	FindAllBSIC(ctx context.Context) ([]models.BasicStableInputsOfCare, error)
	FindBSICByCode(ctx context.Context, code string) (*models.BasicStableInputsOfCare, error)
	UpsertMTC(ctx context.Context, mtc *models.MainTypeOfCare) error
	UpsertBSIC(ctx context.Context, bsic *models.BasicStableInputsOfCare) error
}
