package classifications

import (
	"context"
	"net/http"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/exceptions"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClassificationController struct {
	Log                   *zap.Logger
	ClassificationUsecase ClassificationUsecase
}

func NewClassificationController(logger *zap.Logger, classificationUsecase ClassificationUsecase) *ClassificationController {
	return &ClassificationController{
		Log:                   logger,
		ClassificationUsecase: classificationUsecase,
	}
}

func (ctrl *ClassificationController) ListMTC(w http.ResponseWriter, r *http.Request) {
	deliveryType := r.URL.Query().Get(constvars.QueryParamType)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClassificationUsecase.ListMTC(ctx, deliveryType)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClassificationsSuccessMessage, result)
}

func (ctrl *ClassificationController) GetMTCByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, constvars.URLParamCode)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClassificationUsecase.GetMTCByCode(ctx, code)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClassificationsSuccessMessage, result)
}

func (ctrl *ClassificationController) ListMTCChildren(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, constvars.URLParamCode)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClassificationUsecase.ListMTCChildren(ctx, code)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClassificationsSuccessMessage, result)
}

func (ctrl *ClassificationController) ListBSIC(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ClassificationUsecase.ListBSIC(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClassificationsSuccessMessage, result)
}
