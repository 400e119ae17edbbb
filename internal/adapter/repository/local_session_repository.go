package repository

import (
	"context"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/internal/infrastructure/localstore"
	"feriavirtual/pkg/errors"
)

const (
	sessionKey     = "session"
	resetTokensKey = "password-reset-tokens"
)

type localSessionRepository struct {
	store *localstore.Store
}

func NewLocalSessionRepository(store *localstore.Store) repository.SessionRepository {
	return &localSessionRepository{store: store}
}

func (r *localSessionRepository) Set(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return r.store.Delete(sessionKey)
	}
	return r.store.WriteAll(sessionKey, session)
}

func (r *localSessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	return localstore.Read[*entity.Session](r.store, sessionKey)
}

func (r *localSessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(sessionKey)
}

type localResetTokenRepository struct {
	store *localstore.Store
}

func NewLocalResetTokenRepository(store *localstore.Store) repository.ResetTokenRepository {
	return &localResetTokenRepository{store: store}
}

func (r *localResetTokenRepository) Save(ctx context.Context, token *entity.ResetToken) error {
	return localstore.Mutate(r.store, resetTokensKey, func(tokens []*entity.ResetToken) ([]*entity.ResetToken, error) {
		return append(tokens, token), nil
	})
}

func (r *localResetTokenRepository) GetByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	tokens, err := localstore.Read[[]*entity.ResetToken](r.store, resetTokensKey)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if t.Token == token {
			return t, nil
		}
	}
	return nil, errors.NotFound("Reset token", nil)
}

func (r *localResetTokenRepository) Delete(ctx context.Context, token string) error {
	return localstore.Mutate(r.store, resetTokensKey, func(tokens []*entity.ResetToken) ([]*entity.ResetToken, error) {
		kept := tokens[:0]
		for _, t := range tokens {
			if t.Token != token {
				kept = append(kept, t)
			}
		}
		return kept, nil
	})
}
