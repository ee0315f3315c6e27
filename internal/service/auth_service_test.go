package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"cardledger/internal/auth"
)

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) HasRefreshToken(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

var _ auth.TokenStoreInterface = (*MockTokenStore)(nil)

func newAuthFixture(t *testing.T, passcode string) (AuthService, *auth.JWTService, *MockTokenStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.MinCost)
	assert.NoError(t, err)

	jwtService := auth.NewJWTService("test-secret")
	tokenStore := new(MockTokenStore)
	return NewAuthService(string(hash), jwtService, tokenStore), jwtService, tokenStore
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService, tokenStore := newAuthFixture(t, "1234")

	tokenStore.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), auth.RefreshTokenExpiry).Return(nil)

	access, refresh, err := svc.Login(context.Background(), "1234")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	tokenStore.AssertExpectations(t)

	// Both tokens carry the owner subject.
	claims, err := jwtService.ValidateToken(access)
	assert.NoError(t, err)
	assert.Equal(t, auth.OwnerSubject, claims.Subject)
}

func TestAuthService_Login_WrongPasscode(t *testing.T) {
	svc, _, tokenStore := newAuthFixture(t, "1234")

	access, refresh, err := svc.Login(context.Background(), "9999")

	assert.Equal(t, ErrInvalidPasscode, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	tokenStore.AssertNotCalled(t, "StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_NoHashConfigured(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService("", jwtService, new(MockTokenStore))

	_, _, err := svc.Login(context.Background(), "anything")

	assert.Equal(t, ErrInvalidPasscode, err)
}

func TestAuthService_Refresh(t *testing.T) {
	svc, jwtService, tokenStore := newAuthFixture(t, "1234")

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken()
	assert.NoError(t, err)

	tokenStore.On("HasRefreshToken", mock.Anything, tokenID).Return(true, nil)

	access, err := svc.Refresh(context.Background(), refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	svc, jwtService, tokenStore := newAuthFixture(t, "1234")

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken()
	assert.NoError(t, err)

	tokenStore.On("HasRefreshToken", mock.Anything, tokenID).Return(false, nil)

	access, err := svc.Refresh(context.Background(), refreshToken)

	assert.Equal(t, ErrInvalidRefreshToken, err)
	assert.Empty(t, access)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t, "1234")

	access, err := svc.Refresh(context.Background(), "not-a-jwt")

	assert.Equal(t, ErrInvalidRefreshToken, err)
	assert.Empty(t, access)
}

func TestAuthService_Logout(t *testing.T) {
	svc, jwtService, tokenStore := newAuthFixture(t, "1234")

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken()
	assert.NoError(t, err)

	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}
