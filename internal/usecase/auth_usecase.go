package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/repo/persistent"
	"portfolio-api/pkg/jwt"
	"portfolio-api/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const tokenType = "bearer"

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*entity.AdminSession, error)
	// Verify returns the admin username carried by a valid token.
	Verify(token string) (string, error)
	// EnsureAdmin stores the configured credential, rehashing only when the
	// password changed, and removes any other stored admin.
	EnsureAdmin(ctx context.Context, password string) error
}

// authUseCase accepts exactly one identity: the configured admin username.
type authUseCase struct {
	adminRepo  persistent.AdminRepository
	jwtService *jwt.Service
	username   string
	logger     *logger.Logger
	bcryptCost int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthUseCase(adminRepo persistent.AdminRepository, jwtService *jwt.Service, adminUsername string, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		username:   adminUsername,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*entity.AdminSession, error) {
	if username != uc.username {
		return nil, uc.reject(password)
	}
	admin, err := uc.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("failed to load admin: %w", err)
		}
		return nil, uc.reject(password)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		uc.logger.Warn("Failed admin login attempt")
		return nil, entity.ErrUnauthorized
	}

	token, _, err := uc.jwtService.GenerateToken(admin.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &entity.AdminSession{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresIn:   int64(uc.jwtService.TTL().Seconds()),
	}, nil
}

func (uc *authUseCase) Verify(token string) (string, error) {
	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}
	if claims.Username != uc.username {
		return "", fmt.Errorf("%w: token subject is not the admin", entity.ErrUnauthorized)
	}
	return claims.Username, nil
}

func (uc *authUseCase) EnsureAdmin(ctx context.Context, password string) error {
	username := uc.username
	if username == "" || password == "" {
		return fmt.Errorf("%w: admin username and password are required", entity.ErrInvalidInput)
	}

	existing, err := uc.adminRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
			return uc.dropOtherAdmins(ctx)
		}
	case !errors.Is(err, entity.ErrNotFound):
		return fmt.Errorf("failed to load admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := uc.adminRepo.Upsert(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("failed to store admin: %w", err)
	}
	uc.logger.Info("Admin credential stored for %s", username)
	return uc.dropOtherAdmins(ctx)
}

func (uc *authUseCase) dropOtherAdmins(ctx context.Context) error {
	removed, err := uc.adminRepo.DeleteExcept(ctx, uc.username)
	if err != nil {
		return fmt.Errorf("failed to remove stale admins: %w", err)
	}
	if removed > 0 {
		uc.logger.Info("Removed %d stale admin credential(s)", removed)
	}
	return nil
}

// reject spends the same bcrypt time as a real comparison.
func (uc *authUseCase) reject(password string) error {
	bcrypt.CompareHashAndPassword(uc.dummy(), []byte(password))
	uc.logger.Warn("Failed admin login attempt")
	return entity.ErrUnauthorized
}

func (uc *authUseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-api-dummy"), uc.bcryptCost)
	})
	return uc.dummyHash
}
