package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kingsavannah44/savannah-events-api/internal/auth"
	"github.com/Kingsavannah44/savannah-events-api/internal/models"
	"github.com/Kingsavannah44/savannah-events-api/internal/repository"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so the
// login endpoint cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ChangePassword(ctx context.Context, userID uint, current, next string) error
}

type authService struct {
	users    repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up user: %w", err)
	}

	if !auth.VerifyPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, user, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("look up user: %w", err)
	}

	if !auth.VerifyPassword(user.Password, current) {
		return ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
