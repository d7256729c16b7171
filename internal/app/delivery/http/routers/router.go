package routers

import (
	"fmt"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/auth"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/classifications"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/services"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/surveys"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/templates"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	classificationController *classifications.ClassificationController,
	serviceController *services.ServiceController,
	templateController *templates.TemplateController,
	surveyController *surveys.SurveyController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(chimiddleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/classifications", func(r chi.Router) {
				attachClassificationRoutes(r, middlewares, classificationController)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, middlewares, serviceController)
			})

			r.Route("/templates", func(r chi.Router) {
				attachTemplateRoutes(r, middlewares, templateController)
			})

			r.Route("/surveys", func(r chi.Router) {
				attachSurveyRoutes(r, middlewares, surveyController)
			})
		})
	})
}
