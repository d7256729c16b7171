package routers

import (
	"fmt"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/services"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, mw *middlewares.Middlewares, serviceController *services.ServiceController) {
	router.Use(mw.Authenticate)

	router.Get("/", serviceController.ListServices)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamServiceID), serviceController.GetServiceByID)

	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Post("/", serviceController.CreateService)
	router.With(mw.RequireRoles(constvars.RoleSurveyor)).
		Put(fmt.Sprintf("/{%s}", constvars.URLParamServiceID), serviceController.UpdateService)
	router.With(mw.RequireRoles(constvars.RoleAdmin)).
		Delete(fmt.Sprintf("/{%s}", constvars.URLParamServiceID), serviceController.DeleteService)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).
		Post(fmt.Sprintf("/{%s}/verify", constvars.URLParamServiceID), serviceController.VerifyService)
}
