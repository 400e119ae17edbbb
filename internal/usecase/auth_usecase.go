package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"feriavirtual/internal/domain/entity"
	"feriavirtual/internal/domain/repository"
	"feriavirtual/pkg/errors"
	"feriavirtual/pkg/logger"
)

type AuthUseCase struct {
	accountRepo    repository.AccountRepository
	sessionRepo    repository.SessionRepository
	resetTokenRepo repository.ResetTokenRepository
	resetExpiry    time.Duration
}

func NewAuthUseCase(
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	resetTokenRepo repository.ResetTokenRepository,
	resetExpiry time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		accountRepo:    accountRepo,
		sessionRepo:    sessionRepo,
		resetTokenRepo: resetTokenRepo,
		resetExpiry:    resetExpiry,
	}
}

type RegisterInput struct {
	Email    string
	Name     string
	Phone    string
	Password string
	Role     string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.Account, error) {
	if !entity.ValidRole(input.Role) {
		return nil, errors.ValidationFailed("Role must be seller, buyer or admin")
	}

	// Email uniqueness is case-insensitive; "A@x.com" and "a@x.com" are the
	// same account.
	if existing, err := uc.accountRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already registered")
	}

	account := &entity.Account{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password,
		Role:     input.Role,
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}
	if account.Password != password {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}
	if account.Deleted {
		return nil, errors.Unauthorized("Account has been removed", nil)
	}
	if account.Blocked {
		msg := "Account is blocked"
		if account.BlockReason != "" {
			msg = "Account is blocked: " + account.BlockReason
		}
		return nil, errors.Unauthorized(msg, nil)
	}

	session := &entity.Session{
		Email: account.Email,
		Role:  account.Role,
		Name:  account.Name,
	}
	// Login overwrites any prior session unconditionally.
	if err := uc.sessionRepo.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sessionRepo.Clear(ctx)
}

func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*entity.Session, error) {
	session, err := uc.sessionRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.Unauthorized("No active session", nil)
	}
	return session, nil
}

// RequestPasswordReset issues an opaque token. The token is returned to the
// caller because there is no mail delivery in this system.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) (*entity.ResetToken, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("Account", err)
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Internal("Failed to generate reset token", err)
	}
	token := &entity.ResetToken{
		Token:     hex.EncodeToString(buf),
		Email:     account.Email,
		ExpiresAt: time.Now().Add(uc.resetExpiry).UnixMilli(),
	}
	if err := uc.resetTokenRepo.Save(ctx, token); err != nil {
		return nil, err
	}
	logger.Info("Password reset token issued for %s", account.Email)
	return token, nil
}

func (uc *AuthUseCase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	stored, err := uc.resetTokenRepo.GetByToken(ctx, token)
	if err != nil {
		return errors.ValidationFailed("Invalid reset token")
	}
	if time.Now().UnixMilli() > stored.ExpiresAt {
		return errors.ValidationFailed("Reset token has expired")
	}

	account, err := uc.accountRepo.GetByEmail(ctx, stored.Email)
	if err != nil {
		return err
	}
	account.Password = newPassword
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return err
	}
	// Consume-once: the token is removed whether or not anything else fails
	// afterwards.
	return uc.resetTokenRepo.Delete(ctx, token)
}
