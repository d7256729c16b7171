package routers

import (
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	// Tight per-IP limiter on the credential endpoints.
	loginLimiter := middlewares.NewRateLimiter(mw.Log, 5, time.Minute, 15*time.Minute)

	router.With(loginLimiter.Limit).Post("/register", authController.RegisterUser)
	router.With(loginLimiter.Limit).Post("/login", authController.LoginUser)
	router.With(mw.Authenticate).Post("/logout", authController.LogoutUser)
}
