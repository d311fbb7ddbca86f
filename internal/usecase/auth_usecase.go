package usecase

import (
	"context"
	"errors"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/jwt"
	"inkwell/pkg/session"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      *entity.User
}

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, jti string) error
	Refresh(ctx context.Context, userID, oldJTI string) (*LoginResult, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	Me(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	sessions   session.Store
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, sessions session.Store) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Only admins may hold API sessions.
	if user.Role != entity.RoleAdmin {
		return nil, ErrNotAdmin
	}

	return uc.issueToken(ctx, user)
}

func (uc *authUseCase) Logout(ctx context.Context, jti string) error {
	return uc.sessions.Revoke(ctx, jti)
}

// Refresh revokes the presented token's session and issues a fresh token.
func (uc *authUseCase) Refresh(ctx context.Context, userID, oldJTI string) (*LoginResult, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := uc.sessions.Revoke(ctx, oldJTI); err != nil {
		return nil, err
	}

	return uc.issueToken(ctx, user)
}

func (uc *authUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uc.userRepo.UpdatePassword(userID, string(hashed))
}

func (uc *authUseCase) Me(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (uc *authUseCase) issueToken(ctx context.Context, user *entity.User) (*LoginResult, error) {
	token, claims, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Create(ctx, claims.ID, uc.jwtService.TokenTTL()); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(uc.jwtService.TokenTTL().Seconds()),
		User:      user,
	}, nil
}
