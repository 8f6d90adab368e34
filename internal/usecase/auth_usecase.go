package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mediguard-api/internal/converter"
	"mediguard-api/internal/delivery/dto"
	"mediguard-api/internal/domain/entity"
	"mediguard-api/internal/domain/repository"
	"mediguard-api/internal/infrastructure/database"
	"mediguard-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.CreatedResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.CreatedResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword(passwordBytes(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entity.RolePatient
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := u.userRepo.Create(ctx, u.db, user); err != nil {
		// the store message is passed through to the client
		if database.IsDuplicateKeyError(err, "email") {
			return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, err)
		}
		if database.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %s", ErrConstraintViolation, err)
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User registered")

	return &dto.CreatedResponse{ID: user.ID}, nil
}

// Login returns ErrInvalidCredentials both for an unknown email and for a
// wrong password.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if user == nil {
		// spend the same bcrypt work as a real comparison
		bcrypt.CompareHashAndPassword(dummyHash(), passwordBytes(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordBytes(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Email, user.Role, user.Name)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"user_id": user.ID, "token_id": tokenID}).Info("User logged in")

	return &dto.LoginResponse{
		Token: token,
		User:  *converter.UserToResponse(user),
	}, nil
}

// bcrypt reads at most 72 bytes of a password; longer input is cut to that
// length on both hash and compare.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = bcrypt.GenerateFromPassword([]byte("mediguard-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHashValue
}
