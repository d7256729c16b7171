package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Masozee/atlaskeswa-sub002/internal/app/config"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/middlewares"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/delivery/http/routers"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/drivers/database"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/drivers/logger"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/drivers/messaging"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/drivers/storage"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/auth"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/classifications"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/services"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/surveys"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/templates"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/core/users"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/redis"
	sharedstorage "github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/storage"
	"github.com/Masozee/atlaskeswa-sub002/internal/app/services/shared/surveyqueue"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to close connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	sessionRepository := redis.NewSessionRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	surveyQueue, err := surveyqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQSurveyEventQueue,
	)
	if err != nil {
		log.Fatalf("Failed to initialize survey event queue: %v", err)
	}

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, bootstrap.InternalConfig)

	// Users
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	activityLogMongoRepository := users.NewActivityLogMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, activityLogMongoRepository)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, activityLogMongoRepository, sessionRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Classifications
	classificationMongoRepository := classifications.NewClassificationMongoRepository(bootstrap.MongoDB, dbName)
	classificationUsecase := classifications.NewClassificationUsecase(classificationMongoRepository)
	classificationController := classifications.NewClassificationController(bootstrap.Logger, classificationUsecase)

	// Services directory
	serviceMongoRepository := services.NewServiceMongoRepository(bootstrap.MongoDB, dbName)
	serviceUsecase := services.NewServiceUsecase(serviceMongoRepository, classificationMongoRepository)
	serviceController := services.NewServiceController(bootstrap.Logger, serviceUsecase)

	// Survey repositories
	surveyMongoRepository := surveys.NewSurveyMongoRepository(bootstrap.MongoDB, dbName)
	auditLogMongoRepository := surveys.NewAuditLogMongoRepository(bootstrap.MongoDB, dbName)
	attachmentMongoRepository := surveys.NewAttachmentMongoRepository(bootstrap.MongoDB, dbName)

	// Templates
	templateMongoRepository := templates.NewTemplateMongoRepository(bootstrap.MongoDB, dbName)
	templateUsecase := templates.NewTemplateUsecase(templateMongoRepository, surveyMongoRepository)
	templateController := templates.NewTemplateController(bootstrap.Logger, templateUsecase)

	// Surveys
	surveyUsecase := surveys.NewSurveyUsecase(
		bootstrap.Logger,
		surveyMongoRepository,
		auditLogMongoRepository,
		attachmentMongoRepository,
		templateMongoRepository,
		serviceMongoRepository,
		minioStorage,
		surveyQueue,
		bootstrap.InternalConfig,
	)
	surveyController := surveys.NewSurveyController(bootstrap.Logger, surveyUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		userController,
		classificationController,
		serviceController,
		templateController,
		surveyController,
	)
}
