package auth

import (
	"errors"
	"fmt"
	"time"
)

// GrantTypeBearer is the only grant type the service issues.
const GrantTypeBearer = "Bearer"

// TokenPair is a matched access/refresh credential set. Both halves share the
// same subject and role at creation time but verify and expire independently.
type TokenPair struct {
	GrantType    string `json:"grantType"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenIssuer mints token pairs. All fields are fixed at construction, so
// concurrent use needs no coordination.
type TokenIssuer struct {
	accessKey  SigningKey
	refreshKey SigningKey
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer derives both signing keys and fixes the two lifetimes,
// expressed in whole minutes. The refresh lifetime must exceed the access
// lifetime; refresh tokens exist solely to outlive the credential they renew.
func NewTokenIssuer(accessSecret, refreshSecret string, accessExpireMin, refreshExpireMin int) (*TokenIssuer, error) {
	if accessExpireMin <= 0 || refreshExpireMin <= 0 {
		return nil, errors.New("auth: token lifetimes must be positive")
	}
	if refreshExpireMin <= accessExpireMin {
		return nil, fmt.Errorf("auth: refresh lifetime %dm must exceed access lifetime %dm", refreshExpireMin, accessExpireMin)
	}
	accessKey, err := SigningKeyFromSecret(accessSecret)
	if err != nil {
		return nil, fmt.Errorf("access key: %w", err)
	}
	refreshKey, err := SigningKeyFromSecret(refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh key: %w", err)
	}
	return &TokenIssuer{
		accessKey:  accessKey,
		refreshKey: refreshKey,
		accessTTL:  time.Duration(accessExpireMin) * time.Minute,
		refreshTTL: time.Duration(refreshExpireMin) * time.Minute,
	}, nil
}

// AccessToken issues a short-lived token for API calls.
func (i *TokenIssuer) AccessToken(email, role string) (string, error) {
	return CreateToken(i.accessKey, email, role, i.accessTTL)
}

// RefreshToken issues a longer-lived token used solely to mint a new pair.
func (i *TokenIssuer) RefreshToken(email, role string) (string, error) {
	return CreateToken(i.refreshKey, email, role, i.refreshTTL)
}

// Pair issues both tokens for the same principal and role.
func (i *TokenIssuer) Pair(email, role string) (TokenPair, error) {
	access, err := i.AccessToken(email, role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := i.RefreshToken(email, role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		GrantType:    GrantTypeBearer,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// ParseAccessToken verifies a token against the access key.
func (i *TokenIssuer) ParseAccessToken(token string) (*Claims, error) {
	return ParseToken(i.accessKey, token)
}

// ParseRefreshToken verifies a token against the refresh key.
func (i *TokenIssuer) ParseRefreshToken(token string) (*Claims, error) {
	return ParseToken(i.refreshKey, token)
}
