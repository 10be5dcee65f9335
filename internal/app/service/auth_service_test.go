package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/goer/asana-clone/internal/core/domain"
)

func TestAuthService_Register_HashesPasswordAndIssuesToken(t *testing.T) {
	users := &userRepositoryMock{}
	codec := &tokenCodecMock{}
	svc := NewAuthService(users, codec, time.Hour)

	users.On("Create", mock.Anything, mock.MatchedBy(func(in domain.RegisterUserInput) bool {
		// The plaintext never reaches the repository.
		return in.Email == "ana@example.com" && in.PasswordHash != "hunter2" &&
			bcrypt.CompareHashAndPassword([]byte(in.PasswordHash), []byte("hunter2")) == nil
	})).Return(domain.User{ID: 5, Email: "ana@example.com"}, nil)
	codec.On("Issue", uint64(5), time.Hour).Return("fresh-token", nil)

	token, user, err := svc.Register(context.Background(), "ana@example.com", "Ana", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "fresh-token", token)
	require.Equal(t, uint64(5), user.ID)
	users.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := &userRepositoryMock{}
	codec := &tokenCodecMock{}
	svc := NewAuthService(users, codec, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(domain.User{ID: 5, PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrBadCredentials)
	codec.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	users := &userRepositoryMock{}
	codec := &tokenCodecMock{}
	svc := NewAuthService(users, codec, time.Hour)

	users.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(domain.User{}, domain.ErrUserNotFound)

	// Unknown address and wrong password are indistinguishable to the caller.
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	users := &userRepositoryMock{}
	codec := &tokenCodecMock{}
	svc := NewAuthService(users, codec, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(domain.User{ID: 5, PasswordHash: string(hash)}, nil)
	codec.On("Issue", uint64(5), time.Hour).Return("fresh-token", nil)

	token, user, err := svc.Login(context.Background(), "ana@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "fresh-token", token)
	require.Equal(t, uint64(5), user.ID)
}
