package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"recruitment/config"
	"recruitment/middleware"
	authDelivery "recruitment/services/auth/delivery"
	authRepository "recruitment/services/auth/repository"
	authUsecase "recruitment/services/auth/usecase"
	inboxDelivery "recruitment/services/inbox/delivery"
	inboxRepository "recruitment/services/inbox/repository"
	inboxUsecase "recruitment/services/inbox/usecase"
	notificationDelivery "recruitment/services/notification/delivery"
	notificationRepository "recruitment/services/notification/repository"
	notificationUsecase "recruitment/services/notification/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	config.LoadEnv()

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(middleware.RequestID())
	app.Use(middleware.Recover())
	app.Use(middleware.AccessLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetCorsAllowOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	cognitoClient, err := config.InitCognito(context.Background())
	if err != nil {
		log.Fatalf("Failed to init Cognito: %v", err)
		return
	}
	clientID, err := config.GetCognitoClientID()
	if err != nil {
		log.Fatalf("Failed to init Cognito: %v", err)
		return
	}

	timeOut := config.GetRequestTimeout()

	// Regis repo and Usecase Here
	notificationRepo := notificationRepository.NewNotificationRepository(db)
	inboxRepo := inboxRepository.NewInboxRepository(db)
	identityProvider := authRepository.NewCognitoRepository(cognitoClient, clientID)

	notificationUC := notificationUsecase.NewNotificationUseCase(notificationRepo, timeOut)
	inboxUC := inboxUsecase.NewInboxUseCase(inboxRepo, timeOut)
	authUC := authUsecase.NewAuthUseCase(identityProvider, timeOut)

	// delivery here
	registerRootRoutes(app, db)
	authDelivery.NewAuthHandler(app, authUC)
	notificationDelivery.NewNotificationHandler(app, notificationUC)
	inboxDelivery.NewInboxHandler(app, inboxUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if err := config.CloseDB(db); err != nil {
		log.Errorf("Error closing DB: %v", err)
	}
	log.Info("Server shut down gracefully")
}
