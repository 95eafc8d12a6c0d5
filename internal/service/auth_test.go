package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwave/storefront-api/internal/dto"
	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/repository"
)

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository()
	return NewAuthService(repo, "test-secret", time.Hour, 0), repo
}

func seedUser(t *testing.T, repo repository.UserRepository, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, FirstName: "Customer", LastName: "User", Role: model.RoleCustomer}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestAuthService_Login(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "customer@example.com")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "customer@example.com", Password: "anything-goes",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "customer@example.com", resp.User.Email)
}

func TestAuthService_Login_EmailIsCaseInsensitive(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "customer@example.com")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "Customer@Example.COM"})
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", resp.User.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_HonorsCancellation(t *testing.T) {
	repo := repository.NewUserRepository()
	svc := NewAuthService(repo, "test-secret", time.Hour, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "customer@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "new@example.com", FirstName: "New", LastName: "User",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleCustomer, resp.User.Role)
}

func TestAuthService_Profile(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := seedUser(t, repo, "customer@example.com")

	resp, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", resp.Email)
	assert.Equal(t, model.RoleCustomer, resp.Role)
}

func TestAuthService_Profile_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)
	_, err := svc.Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "taken@example.com")

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "TAKEN@example.com", FirstName: "New", LastName: "User",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
