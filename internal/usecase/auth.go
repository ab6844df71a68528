package usecase

import (
	"context"

	"stayquest/internal/domain/user"
	"stayquest/internal/infra"
	"stayquest/internal/pkg/errs"
	"stayquest/internal/pkg/jwt"
	"stayquest/internal/pkg/password"
	"stayquest/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

// TokenValidator is the narrow slice of AuthUseCase the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type AuthUseCase interface {
	SignUp(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) SignUp(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	hashed, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to hash password")
	}

	created, err := a.userRepo.Create(ctx, user.NewUser(credentials.Email(), hashed))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailAlreadyTaken
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(created.ID, created.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, created, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, userRM.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return userRM, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, claims.Email, nil
}
