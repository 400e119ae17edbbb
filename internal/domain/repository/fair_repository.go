package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

type FairRepository interface {
	Create(ctx context.Context, fair *entity.Fair) error
	GetByID(ctx context.Context, id string) (*entity.Fair, error)
	List(ctx context.Context) ([]*entity.Fair, error)
	Update(ctx context.Context, fair *entity.Fair) error
}

type FairEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.FairEnrollment) error
	Get(ctx context.Context, fairID, sellerEmail string) (*entity.FairEnrollment, error)
	ListByFair(ctx context.Context, fairID string) ([]*entity.FairEnrollment, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.FairEnrollment, error)
	Update(ctx context.Context, enrollment *entity.FairEnrollment) error
}
