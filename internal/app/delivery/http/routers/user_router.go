package routers

import (
	"fmt"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/users"
	"github.com/Masozee/atlaskeswa-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mw *middlewares.Middlewares, userController *users.UserController) {
	router.With(mw.Authenticate).Get("/profile", userController.GetProfile)
	router.With(mw.Authenticate).Put("/profile", userController.UpdateProfile)

	router.With(mw.Authenticate, mw.RequireRoles(constvars.RoleAdmin)).
		Get("/", userController.ListUsers)
	router.With(mw.Authenticate, mw.RequireRoles(constvars.RoleAdmin)).
		Get(fmt.Sprintf("/{%s}/activity", constvars.URLParamUserID), userController.ListUserActivity)
}
