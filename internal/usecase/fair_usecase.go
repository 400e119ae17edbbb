package usecase

import (
	"context"
	"strings"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
)

type FairUseCase struct {
	fairRepo       repository.FairRepository
	enrollmentRepo repository.FairEnrollmentRepository
	productRepo    repository.ProductRepository
	accountRepo    repository.AccountRepository
	now            func() time.Time
}

func NewFairUseCase(
	fairRepo repository.FairRepository,
	enrollmentRepo repository.FairEnrollmentRepository,
	productRepo repository.ProductRepository,
	accountRepo repository.AccountRepository,
) *FairUseCase {
	return &FairUseCase{
		fairRepo:       fairRepo,
		enrollmentRepo: enrollmentRepo,
		productRepo:    productRepo,
		accountRepo:    accountRepo,
		now:            time.Now,
	}
}

// ComputeFairState resolves the date-driven state for a fair. Closed is
// sticky: once a fair closed (manually or because the window lapsed) it never
// revives. The stored state only contributes the manual inactive toggle,
// which holds solely while the window would otherwise make the fair active.
func ComputeFairState(fair *entity.Fair, today time.Time) string {
	if fair.State == entity.FairClosed {
		return entity.FairClosed
	}
	today = truncateToDay(today)
	start := truncateToDay(fair.StartDate)
	end := truncateToDay(fair.EndDate)

	switch {
	case today.Before(start):
		return entity.FairScheduled
	case today.After(end):
		return entity.FairClosed
	case fair.State == entity.FairInactive:
		return entity.FairInactive
	default:
		return entity.FairActive
	}
}

type FairInput struct {
	Name             string
	Description      string
	StartDate        time.Time
	EndDate          time.Time
	Categories       []string
	Rules            string
	Guidelines       string
	Image            string
	DiscountRangeMin int
	DiscountRangeMax int
}

func (uc *FairUseCase) validateInput(input FairInput) error {
	if !input.EndDate.After(input.StartDate) {
		return errors.ValidationFailed("End date must be after start date")
	}
	for _, c := range input.Categories {
		if !entity.ValidCategory(c) {
			return errors.ValidationFailed("Unknown category: " + c)
		}
	}
	if input.DiscountRangeMin < 0 || input.DiscountRangeMax > 100 || input.DiscountRangeMin > input.DiscountRangeMax {
		return errors.ValidationFailed("Discount range must be within 0..100 and ordered")
	}
	return nil
}

func (uc *FairUseCase) Create(ctx context.Context, adminEmail string, input FairInput) (*entity.Fair, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	fair := &entity.Fair{
		Name:             input.Name,
		Description:      input.Description,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Categories:       input.Categories,
		Rules:            input.Rules,
		Guidelines:       input.Guidelines,
		State:            entity.FairScheduled,
		OwnerAdminEmail:  adminEmail,
		Image:            input.Image,
		DiscountRangeMin: input.DiscountRangeMin,
		DiscountRangeMax: input.DiscountRangeMax,
	}
	if err := uc.fairRepo.Create(ctx, fair); err != nil {
		return nil, err
	}
	return fair, nil
}

func (uc *FairUseCase) Update(ctx context.Context, id string, input FairInput) (*entity.Fair, error) {
	fair, err := uc.fairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ComputeFairState(fair, uc.now()) == entity.FairClosed {
		return nil, errors.ValidationFailed("Closed fairs cannot be edited")
	}
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}
	fair.Name = input.Name
	fair.Description = input.Description
	fair.StartDate = input.StartDate
	fair.EndDate = input.EndDate
	fair.Categories = input.Categories
	fair.Rules = input.Rules
	fair.Guidelines = input.Guidelines
	fair.Image = input.Image
	fair.DiscountRangeMin = input.DiscountRangeMin
	fair.DiscountRangeMax = input.DiscountRangeMax
	if err := uc.fairRepo.Update(ctx, fair); err != nil {
		return nil, err
	}
	return fair, nil
}

// List returns fairs with their state recomputed as of today. The recomputed
// value is also persisted so a lapsed fair reads closed on the next load too.
func (uc *FairUseCase) List(ctx context.Context) ([]*entity.Fair, error) {
	fairs, err := uc.fairRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := uc.now()
	for _, f := range fairs {
		state := ComputeFairState(f, today)
		if state != f.State {
			f.State = state
			if err := uc.fairRepo.Update(ctx, f); err != nil {
				return nil, err
			}
		}
	}
	return fairs, nil
}

func (uc *FairUseCase) Get(ctx context.Context, id string) (*entity.Fair, error) {
	fair, err := uc.fairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fair.State = ComputeFairState(fair, uc.now())
	return fair, nil
}

// SetActive toggles the manual active/inactive flag. The toggle only applies
// inside the date window: it cannot start a scheduled fair early and cannot
// revive a closed one.
func (uc *FairUseCase) SetActive(ctx context.Context, id string, active bool) (*entity.Fair, error) {
	fair, err := uc.fairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	state := ComputeFairState(fair, uc.now())
	if state == entity.FairClosed {
		return nil, errors.ValidationFailed("Closed fairs cannot be toggled")
	}
	if state == entity.FairScheduled {
		return nil, errors.ValidationFailed("Fair has not started yet")
	}
	if active {
		fair.State = entity.FairActive
	} else {
		fair.State = entity.FairInactive
	}
	if err := uc.fairRepo.Update(ctx, fair); err != nil {
		return nil, err
	}
	return fair, nil
}

// Close marks a fair closed ahead of its end date. Terminal.
func (uc *FairUseCase) Close(ctx context.Context, id string) (*entity.Fair, error) {
	fair, err := uc.fairRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fair.State = entity.FairClosed
	if err := uc.fairRepo.Update(ctx, fair); err != nil {
		return nil, err
	}
	return fair, nil
}

// Enroll registers a seller in a fair with the products they want to show.
// One enrollment per (fair, seller); the products must belong to the seller
// and fit the fair's categories.
func (uc *FairUseCase) Enroll(ctx context.Context, fairID, sellerEmail string, productIDs []string) (*entity.FairEnrollment, error) {
	fair, err := uc.fairRepo.GetByID(ctx, fairID)
	if err != nil {
		return nil, err
	}
	state := ComputeFairState(fair, uc.now())
	if state == entity.FairClosed {
		return nil, errors.ValidationFailed("Fair is closed")
	}

	seller, err := uc.accountRepo.GetByEmail(ctx, sellerEmail)
	if err != nil {
		return nil, errors.Unauthorized("Unknown seller", err)
	}
	if seller.Role != entity.RoleSeller {
		return nil, errors.Forbidden("Only sellers can enroll in fairs", nil)
	}

	allowed := make(map[string]bool, len(fair.Categories))
	for _, c := range fair.Categories {
		allowed[c] = true
	}
	for _, id := range productIDs {
		product, err := uc.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(product.SellerEmail, sellerEmail) {
			return nil, errors.Forbidden("Product belongs to another seller", nil)
		}
		if len(allowed) > 0 && !allowed[product.Category] {
			return nil, errors.ValidationFailed("Product category not eligible for this fair: " + product.Name)
		}
	}

	enrollment := &entity.FairEnrollment{
		FairID:      fairID,
		SellerEmail: seller.Email,
		State:       entity.EnrollmentPending,
		ProductIDs:  productIDs,
	}
	if err := uc.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (uc *FairUseCase) ListEnrollments(ctx context.Context, fairID string) ([]*entity.FairEnrollment, error) {
	return uc.enrollmentRepo.ListByFair(ctx, fairID)
}

func (uc *FairUseCase) ListSellerEnrollments(ctx context.Context, sellerEmail string) ([]*entity.FairEnrollment, error) {
	return uc.enrollmentRepo.ListBySeller(ctx, sellerEmail)
}

func (uc *FairUseCase) ResolveEnrollment(ctx context.Context, fairID, sellerEmail string, approve bool) (*entity.FairEnrollment, error) {
	enrollment, err := uc.enrollmentRepo.Get(ctx, fairID, sellerEmail)
	if err != nil {
		return nil, err
	}
	if enrollment.State != entity.EnrollmentPending {
		return nil, errors.Conflict("Enrollment already resolved")
	}
	if approve {
		enrollment.State = entity.EnrollmentApproved
	} else {
		enrollment.State = entity.EnrollmentRejected
	}
	if err := uc.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
