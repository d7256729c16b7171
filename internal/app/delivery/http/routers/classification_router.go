package routers

import (
	"fmt"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/classifications"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachClassificationRoutes(router chi.Router, mw *middlewares.Middlewares, classificationController *classifications.ClassificationController) {
	router.Use(mw.Authenticate)

	router.Get("/mtc", classificationController.ListMTC)
	router.Get(fmt.Sprintf("/mtc/{%s}", constvars.URLParamCode), classificationController.GetMTCByCode)
	router.Get(fmt.Sprintf("/mtc/{%s}/children", constvars.URLParamCode), classificationController.ListMTCChildren)
	router.Get("/bsic", classificationController.ListBSIC)
}
