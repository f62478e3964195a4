package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"barterex/internal/adapter/api"
	"barterex/internal/adapter/api/handler"
	apimiddleware "barterex/internal/adapter/api/middleware"
	"barterex/internal/adapter/api/router"
	"barterex/internal/adapter/repository"
	"barterex/internal/infrastructure/firebase"
	"barterex/internal/infrastructure/websocket"
	"barterex/internal/usecase"
	"barterex/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	// One Firebase app and one auth client for the whole process, injected by
	// reference everywhere identity verification is needed.
	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	// Relational store for tiers, barters, hires and ratings.
	db, err := repository.OpenMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	tierRepo := repository.NewMySQLTierRepository(db)
	barterRepo := repository.NewMySQLBarterRepository(db)
	hireRepo := repository.NewMySQLHireRepository(db)
	ratingRepo := repository.NewMySQLRatingRepository(db)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	messageUseCase := usecase.NewMessageUseCase(chatRepo, wsManager, cfg.StrictMessageStatusFlow)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, messageUseCase)
	tierUseCase := usecase.NewTierUseCase(userRepo, tierRepo, barterRepo, cfg.TierPromoteHighest)
	performanceUseCase := usecase.NewPerformanceUseCase(hireRepo, barterRepo, ratingRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	chatHandler := handler.NewChatHandler(chatUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	tierHandler := handler.NewTierHandler(tierUseCase)
	performanceHandler := handler.NewPerformanceHandler(performanceUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, messageUseCase, cfg.JWTSecret)
	devTokenHandler := handler.NewDevTokenHandler(firebaseAuthClient, userRepo, cfg.JWTSecret)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupMessageRouter(e, messageHandler, authMiddleware)
	router.SetupTierRouter(e, tierHandler, authMiddleware, roleMiddleware)
	router.SetupPerformanceRouter(e, performanceHandler, authMiddleware, roleMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupDevRouter(e, devTokenHandler, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
