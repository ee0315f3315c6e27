package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"cardledger/internal/auth"
)

// ErrInvalidPasscode is returned when the owner passcode does not match.
var ErrInvalidPasscode = errors.New("invalid passcode")

// ErrInvalidRefreshToken is returned when a refresh token is unknown or revoked.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// AuthService unlocks the app for the single device owner. There are no
// user accounts: one bcrypt-hashed passcode from config gates everything.
type AuthService interface {
	Login(ctx context.Context, passcode string) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	passcodeHash []byte
	jwtService   *auth.JWTService
	tokenStore   auth.TokenStoreInterface
}

// NewAuthService creates a new auth service.
func NewAuthService(passcodeHash string, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		passcodeHash: []byte(passcodeHash),
		jwtService:   jwtService,
		tokenStore:   tokenStore,
	}
}

// Login checks the owner passcode and issues an access/refresh token pair.
func (s *authService) Login(ctx context.Context, passcode string) (string, string, error) {
	if len(s.passcodeHash) == 0 {
		return "", "", ErrInvalidPasscode
	}
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		return "", "", ErrInvalidPasscode
	}

	accessToken, err := s.jwtService.GenerateAccessToken()
	if err != nil {
		return "", "", err
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}
	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, auth.RefreshTokenExpiry); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	known, err := s.tokenStore.HasRefreshToken(ctx, tokenID)
	if err != nil {
		return "", err
	}
	if !known {
		return "", ErrInvalidRefreshToken
	}

	return s.jwtService.GenerateAccessToken()
}

// Logout revokes a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
