package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
)

// SessionRepository is a single persisted slot, not a stack: Set overwrites
// whatever was there.
type SessionRepository interface {
	Set(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context) (*entity.Session, error)
	Clear(ctx context.Context) error
}

type ResetTokenRepository interface {
	Save(ctx context.Context, token *entity.ResetToken) error
	GetByToken(ctx context.Context, token string) (*entity.ResetToken, error)
	Delete(ctx context.Context, token string) error
}
