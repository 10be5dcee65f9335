package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, in domain.RegisterUserInput) (domain.User, error)
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// AuthService covers the credentialed surface: account creation, login and
// profile lookup.
type AuthService interface {
	// Register and Login both answer with a fresh bearer token alongside
	// the profile.
	Register(ctx context.Context, email, name, password string) (string, domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
}

// IdentityService resolves the acting principal for both authentication
// modes. ResolveStrict fails closed; ResolveSoft never fails, an unknown or
// empty hint lands on the configured fallback account.
type IdentityService interface {
	ResolveStrict(ctx context.Context, token string) (domain.Principal, error)
	ResolveSoft(ctx context.Context, emailHint string) domain.Principal
	EnsureFallbackUser(ctx context.Context) error
}
