package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

// IdentityService turns credentials into a Principal. Strict resolution is
// for the interactive API and fails closed; soft resolution is for trusted
// automation callers and always lands on some account, the configured
// fallback when the hint does not resolve.
type IdentityService struct {
	userRepository ports.UserRepository
	tokenCodec     ports.TokenCodec
	fallbackEmail  string
	fallbackName   string
	fallbackID     uint64
}

func NewIdentityService(userRepository ports.UserRepository, tokenCodec ports.TokenCodec, fallbackEmail, fallbackName string) *IdentityService {
	return &IdentityService{
		userRepository: userRepository,
		tokenCodec:     tokenCodec,
		fallbackEmail:  fallbackEmail,
		fallbackName:   fallbackName,
	}
}

// EnsureFallbackUser creates the fallback account on first boot. It runs
// before the server accepts traffic, so ResolveSoft can rely on the cached
// id afterwards. The account gets an unguessable password; nobody logs in
// as it.
func (s *IdentityService) EnsureFallbackUser(ctx context.Context) error {
	user, err := s.userRepository.GetByEmail(ctx, s.fallbackEmail)
	if err == nil {
		s.fallbackID = user.ID
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := s.userRepository.Create(ctx, domain.RegisterUserInput{
		Email:        s.fallbackEmail,
		Name:         s.fallbackName,
		PasswordHash: string(hash),
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		// Lost a race with another instance booting; the row is there now.
		existing, getErr := s.userRepository.GetByEmail(ctx, s.fallbackEmail)
		if getErr != nil {
			return getErr
		}
		s.fallbackID = existing.ID
		return nil
	}
	if err != nil {
		return err
	}

	s.fallbackID = created.ID
	return nil
}

func (s *IdentityService) ResolveStrict(ctx context.Context, token string) (domain.Principal, error) {
	userID, err := s.tokenCodec.Verify(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("verify token: %w", domain.ErrUnauthorized)
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("token subject gone: %w", domain.ErrUnauthorized)
	}

	return domain.Principal{UserID: user.ID}, nil
}

// ResolveSoft never fails. An empty or unknown hint, or a lookup error, all
// resolve to the fallback account.
func (s *IdentityService) ResolveSoft(ctx context.Context, emailHint string) domain.Principal {
	if emailHint != "" {
		user, err := s.userRepository.GetByEmail(ctx, emailHint)
		if err == nil {
			return domain.Principal{UserID: user.ID}
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Warn("soft identity lookup failed, using fallback",
				zap.String("hint", emailHint),
				zap.Error(err),
			)
		}
	}

	if s.fallbackID != 0 {
		return domain.Principal{UserID: s.fallbackID}
	}

	user, err := s.userRepository.GetByEmail(ctx, s.fallbackEmail)
	if err != nil {
		zap.L().Error("fallback account missing", zap.Error(err))
		return domain.Principal{}
	}
	return domain.Principal{UserID: user.ID}
}

var _ ports.IdentityService = (*IdentityService)(nil)
