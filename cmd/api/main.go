package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"greencampus/internal/adapter/api"
	"greencampus/internal/adapter/api/handler"
	apimiddleware "greencampus/internal/adapter/api/middleware"
	"greencampus/internal/adapter/api/router"
	"greencampus/internal/adapter/cache"
	"greencampus/internal/adapter/repository"
	"greencampus/internal/infrastructure/firebase"
	"greencampus/internal/infrastructure/storage"
	"greencampus/internal/usecase"
	"greencampus/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

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

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	var leaderboardCache usecase.LeaderboardCache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisLeaderboardCache(
			cfg.RedisAddr,
			cfg.RedisPassword,
			time.Duration(cfg.LeaderboardTTL)*time.Second,
		)
		defer redisCache.Close()
		leaderboardCache = redisCache
	}

	authUseCase := usecase.NewAuthUseCase(profileRepo, firebaseAuthClient)
	reportUseCase := usecase.NewReportUseCase(reportRepo, profileRepo, storageClient)
	triageUseCase := usecase.NewTriageUseCase(reportRepo, profileRepo, leaderboardCache)
	leaderboardUseCase := usecase.NewLeaderboardUseCase(profileRepo, leaderboardCache)

	handler.Setup(authUseCase, reportUseCase, triageUseCase, leaderboardUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(profileRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
