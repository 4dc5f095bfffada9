package usecase

import (
	"context"
	"errors"

	"clinica-dental-api/internal/converter"
	"clinica-dental-api/internal/delivery/dto"
	"clinica-dental-api/internal/domain/entity"
	"clinica-dental-api/internal/domain/repository"
	"clinica-dental-api/internal/service"
	"clinica-dental-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is disabled")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active() {
		return nil, ErrUserInactive
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Save(ctx, user.ID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to audit login of user %s: %+v", user.ID, err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.tokenStore.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionUserLogout, "user", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to audit logout of user %s: %+v", userID, err)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
