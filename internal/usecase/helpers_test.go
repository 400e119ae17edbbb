package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	localrepo "feriavirtual/internal/adapter/repository"
	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
)

// env wires every use case over a single in-memory store, mirroring the
// production wiring in cmd/api.
type env struct {
	store *localstore.Store

	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository

	auth          *AuthUseCase
	admin         *AdminUseCase
	products      *ProductUseCase
	notifications *NotificationUseCase
	promotions    *PromotionUseCase
	cart          *CartUseCase
	fairs         *FairUseCase
	sanctions     *SanctionUseCase
	eliminations  *EliminationUseCase
	claims        *ClaimUseCase
	reviews       *ReviewUseCase
	modRequests   *ModificationRequestUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := localstore.NewMemStore()

	accountRepo := localrepo.NewLocalAccountRepository(store)
	sessionRepo := localrepo.NewLocalSessionRepository(store)
	resetTokenRepo := localrepo.NewLocalResetTokenRepository(store)
	productRepo := localrepo.NewLocalProductRepository(store)
	statusRepo := localrepo.NewLocalProductStatusRepository(store)
	cartRepo := localrepo.NewLocalCartRepository(store)
	notificationRepo := localrepo.NewLocalNotificationRepository(store)
	fairRepo := localrepo.NewLocalFairRepository(store)
	enrollmentRepo := localrepo.NewLocalFairEnrollmentRepository(store)
	promotionRepo := localrepo.NewLocalPromotionRepository(store)
	sanctionRepo := localrepo.NewLocalSanctionRepository(store)
	eliminationRepo := localrepo.NewLocalEliminationRepository(store)
	claimRepo := localrepo.NewLocalClaimRepository(store)
	modRequestRepo := localrepo.NewLocalModificationRequestRepository(store)
	reviewRepo := localrepo.NewLocalReviewRepository(store)

	promotions := NewPromotionUseCase(promotionRepo)

	return &env{
		store:         store,
		accountRepo:   accountRepo,
		productRepo:   productRepo,
		auth:          NewAuthUseCase(accountRepo, sessionRepo, resetTokenRepo, 15*time.Minute),
		admin:         NewAdminUseCase(accountRepo),
		products:      NewProductUseCase(productRepo, statusRepo, accountRepo),
		notifications: NewNotificationUseCase(notificationRepo),
		promotions:    promotions,
		cart:          NewCartUseCase(cartRepo, productRepo, accountRepo, notificationRepo, promotions),
		fairs:         NewFairUseCase(fairRepo, enrollmentRepo, productRepo, accountRepo),
		sanctions:     NewSanctionUseCase(sanctionRepo, accountRepo),
		eliminations:  NewEliminationUseCase(eliminationRepo, accountRepo, productRepo, statusRepo),
		claims:        NewClaimUseCase(claimRepo, accountRepo, productRepo),
		reviews:       NewReviewUseCase(reviewRepo, productRepo, accountRepo),
		modRequests:   NewModificationRequestUseCase(modRequestRepo, productRepo),
	}
}

func (e *env) seedAccount(t *testing.T, email, role string) *entity.Account {
	t.Helper()
	account, err := e.auth.Register(context.Background(), RegisterInput{
		Email:    email,
		Name:     email,
		Password: "secret",
		Role:     role,
	})
	require.NoError(t, err)
	return account
}

func (e *env) seedProduct(t *testing.T, sellerEmail string, stock int) *entity.Product {
	t.Helper()
	product, err := e.products.CreateProduct(context.Background(), sellerEmail, ProductInput{
		Name:     "Mermelada de frutilla",
		Price:    2500,
		Stock:    stock,
		Category: "alimentos",
	})
	require.NoError(t, err)
	return product
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
