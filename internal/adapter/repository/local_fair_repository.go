package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/pkg/errors"
)

const (
	fairsKey       = "fairs"
	enrollmentsKey = "fair-enrollments"
)

type localFairRepository struct {
	store *localstore.Store
}

func NewLocalFairRepository(store *localstore.Store) repository.FairRepository {
	return &localFairRepository{store: store}
}

func (r *localFairRepository) Create(ctx context.Context, fair *entity.Fair) error {
	if fair.ID == "" {
		fair.ID = uuid.NewString()
	}
	if fair.CreatedAt.IsZero() {
		fair.CreatedAt = time.Now()
	}
	return localstore.Mutate(r.store, fairsKey, func(fairs []*entity.Fair) ([]*entity.Fair, error) {
		return append(fairs, fair), nil
	})
}

func (r *localFairRepository) GetByID(ctx context.Context, id string) (*entity.Fair, error) {
	fairs, err := localstore.Read[[]*entity.Fair](r.store, fairsKey)
	if err != nil {
		return nil, err
	}
	for _, f := range fairs {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, errors.NotFound("Fair", nil)
}

func (r *localFairRepository) List(ctx context.Context) ([]*entity.Fair, error) {
	return localstore.Read[[]*entity.Fair](r.store, fairsKey)
}

func (r *localFairRepository) Update(ctx context.Context, fair *entity.Fair) error {
	return localstore.Mutate(r.store, fairsKey, func(fairs []*entity.Fair) ([]*entity.Fair, error) {
		for i, f := range fairs {
			if f.ID == fair.ID {
				fairs[i] = fair
				return fairs, nil
			}
		}
		return nil, errors.NotFound("Fair", nil)
	})
}

type localFairEnrollmentRepository struct {
	store *localstore.Store
}

func NewLocalFairEnrollmentRepository(store *localstore.Store) repository.FairEnrollmentRepository {
	return &localFairEnrollmentRepository{store: store}
}

func (r *localFairEnrollmentRepository) Create(ctx context.Context, enrollment *entity.FairEnrollment) error {
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now()
	}
	return localstore.Mutate(r.store, enrollmentsKey, func(enrollments []*entity.FairEnrollment) ([]*entity.FairEnrollment, error) {
		for _, e := range enrollments {
			if e.FairID == enrollment.FairID && strings.EqualFold(e.SellerEmail, enrollment.SellerEmail) {
				return nil, errors.Conflict("Seller already enrolled in this fair")
			}
		}
		return append(enrollments, enrollment), nil
	})
}

func (r *localFairEnrollmentRepository) Get(ctx context.Context, fairID, sellerEmail string) (*entity.FairEnrollment, error) {
	enrollments, err := localstore.Read[[]*entity.FairEnrollment](r.store, enrollmentsKey)
	if err != nil {
		return nil, err
	}
	for _, e := range enrollments {
		if e.FairID == fairID && strings.EqualFold(e.SellerEmail, sellerEmail) {
			return e, nil
		}
	}
	return nil, errors.NotFound("Fair enrollment", nil)
}

func (r *localFairEnrollmentRepository) ListByFair(ctx context.Context, fairID string) ([]*entity.FairEnrollment, error) {
	enrollments, err := localstore.Read[[]*entity.FairEnrollment](r.store, enrollmentsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.FairEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.FairID == fairID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (r *localFairEnrollmentRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.FairEnrollment, error) {
	enrollments, err := localstore.Read[[]*entity.FairEnrollment](r.store, enrollmentsKey)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.FairEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if strings.EqualFold(e.SellerEmail, sellerEmail) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (r *localFairEnrollmentRepository) Update(ctx context.Context, enrollment *entity.FairEnrollment) error {
	return localstore.Mutate(r.store, enrollmentsKey, func(enrollments []*entity.FairEnrollment) ([]*entity.FairEnrollment, error) {
		for i, e := range enrollments {
			if e.FairID == enrollment.FairID && strings.EqualFold(e.SellerEmail, enrollment.SellerEmail) {
				enrollments[i] = enrollment
				return enrollments, nil
			}
		}
		return nil, errors.NotFound("Fair enrollment", nil)
	})
}
