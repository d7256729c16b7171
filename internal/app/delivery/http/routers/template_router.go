package routers

import (
	"fmt"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/templates"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTemplateRoutes(router chi.Router, mw *middlewares.Middlewares, templateController *templates.TemplateController) {
	router.Use(mw.Authenticate)

	router.Get("/", templateController.ListTemplates)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamTemplateID), templateController.GetTemplateByID)

	router.With(mw.RequireRoles(constvars.RoleAdmin)).
		Post("/", templateController.CreateTemplate)
	router.With(mw.RequireRoles(constvars.RoleAdmin)).
		Put(fmt.Sprintf("/{%s}", constvars.URLParamTemplateID), templateController.UpdateTemplate)
	router.With(mw.RequireRoles(constvars.RoleAdmin)).
		Delete(fmt.Sprintf("/{%s}", constvars.URLParamTemplateID), templateController.DeactivateTemplate)
}
