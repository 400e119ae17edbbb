package handler

import (
	"feriavirtual/internal/usecase"
)

var (
	authHandler         *AuthHandler
	productHandler      *ProductHandler
	cartHandler         *CartHandler
	notificationHandler *NotificationHandler
	fairHandler         *FairHandler
	promotionHandler    *PromotionHandler
	sanctionHandler     *SanctionHandler
	eliminationHandler  *EliminationHandler
	claimHandler        *ClaimHandler
	reviewHandler       *ReviewHandler
	modRequestHandler   *ModificationRequestHandler
	adminHandler        *AdminHandler
	healthHandler       *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	fairUseCase *usecase.FairUseCase,
	promotionUseCase *usecase.PromotionUseCase,
	sanctionUseCase *usecase.SanctionUseCase,
	eliminationUseCase *usecase.EliminationUseCase,
	claimUseCase *usecase.ClaimUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	modRequestUseCase *usecase.ModificationRequestUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	fairHandler = NewFairHandler(fairUseCase)
	promotionHandler = NewPromotionHandler(promotionUseCase)
	sanctionHandler = NewSanctionHandler(sanctionUseCase)
	eliminationHandler = NewEliminationHandler(eliminationUseCase)
	claimHandler = NewClaimHandler(claimUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	modRequestHandler = NewModificationRequestHandler(modRequestUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler                               { return authHandler }
func GetProductHandler() *ProductHandler                         { return productHandler }
func GetCartHandler() *CartHandler                               { return cartHandler }
func GetNotificationHandler() *NotificationHandler               { return notificationHandler }
func GetFairHandler() *FairHandler                               { return fairHandler }
func GetPromotionHandler() *PromotionHandler                     { return promotionHandler }
func GetSanctionHandler() *SanctionHandler                       { return sanctionHandler }
func GetEliminationHandler() *EliminationHandler                 { return eliminationHandler }
func GetClaimHandler() *ClaimHandler                             { return claimHandler }
func GetReviewHandler() *ReviewHandler                           { return reviewHandler }
func GetModificationRequestHandler() *ModificationRequestHandler { return modRequestHandler }
func GetAdminHandler() *AdminHandler                             { return adminHandler }
func GetHealthHandler() *HealthHandler                           { return healthHandler }
