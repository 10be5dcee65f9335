package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	tokenCodec     ports.TokenCodec
	tokenTTL       time.Duration
}

func NewAuthService(userRepository ports.UserRepository, tokenCodec ports.TokenCodec, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokenCodec:     tokenCodec,
		tokenTTL:       tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, email, name, password string) (string, domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.User{}, err
	}

	user, err := s.userRepository.Create(ctx, domain.RegisterUserInput{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", domain.User{}, err
	}

	token, err := s.tokenCodec.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Login answers with the same error for an unknown email and a wrong
// password, so callers cannot probe which addresses have accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.User{}, domain.ErrBadCredentials
	}
	if err != nil {
		return "", domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, domain.ErrBadCredentials
	}

	token, err := s.tokenCodec.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

var _ ports.AuthService = (*AuthService)(nil)
