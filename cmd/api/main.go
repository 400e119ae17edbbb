package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"feriavirtual/internal/adapter/api"
	"feriavirtual/internal/adapter/api/handler"
	apimiddleware "feriavirtual/internal/adapter/api/middleware"
	"feriavirtual/internal/adapter/api/router"
	"feriavirtual/internal/adapter/repository"
	"feriavirtual/internal/app/background"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := localstore.NewOSStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory %s: %v", cfg.DataDir, err)
	}

	accountRepo := repository.NewLocalAccountRepository(store)
	sessionRepo := repository.NewLocalSessionRepository(store)
	resetTokenRepo := repository.NewLocalResetTokenRepository(store)
	productRepo := repository.NewLocalProductRepository(store)
	productStatusRepo := repository.NewLocalProductStatusRepository(store)
	cartRepo := repository.NewLocalCartRepository(store)
	notificationRepo := repository.NewLocalNotificationRepository(store)
	fairRepo := repository.NewLocalFairRepository(store)
	enrollmentRepo := repository.NewLocalFairEnrollmentRepository(store)
	promotionRepo := repository.NewLocalPromotionRepository(store)
	sanctionRepo := repository.NewLocalSanctionRepository(store)
	eliminationRepo := repository.NewLocalEliminationRepository(store)
	claimRepo := repository.NewLocalClaimRepository(store)
	modRequestRepo := repository.NewLocalModificationRequestRepository(store)
	reviewRepo := repository.NewLocalReviewRepository(store)

	authUseCase := usecase.NewAuthUseCase(
		accountRepo,
		sessionRepo,
		resetTokenRepo,
		time.Duration(cfg.ResetTokenExpiry)*time.Second,
	)
	adminUseCase := usecase.NewAdminUseCase(accountRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, productStatusRepo, accountRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	promotionUseCase := usecase.NewPromotionUseCase(promotionRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, accountRepo, notificationRepo, promotionUseCase)
	fairUseCase := usecase.NewFairUseCase(fairRepo, enrollmentRepo, productRepo, accountRepo)
	sanctionUseCase := usecase.NewSanctionUseCase(sanctionRepo, accountRepo)
	eliminationUseCase := usecase.NewEliminationUseCase(eliminationRepo, accountRepo, productRepo, productStatusRepo)
	claimUseCase := usecase.NewClaimUseCase(claimRepo, accountRepo, productRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo, accountRepo)
	modRequestUseCase := usecase.NewModificationRequestUseCase(modRequestRepo, productRepo)

	handler.Setup(
		authUseCase,
		productUseCase,
		cartUseCase,
		notificationUseCase,
		fairUseCase,
		promotionUseCase,
		sanctionUseCase,
		eliminationUseCase,
		claimUseCase,
		reviewUseCase,
		modRequestUseCase,
		adminUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(sessionRepo, accountRepo)
	roleMiddleware := apimiddleware.NewRoleMiddleware()

	router.Setup(e, authMiddleware, roleMiddleware)

	tasks := background.NewBackgroundTasks(
		notificationUseCase,
		adminUseCase,
		fairUseCase,
		time.Duration(cfg.PollSeconds)*time.Second,
	)
	tasks.StartAll(ctx)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
