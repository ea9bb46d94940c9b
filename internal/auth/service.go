package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// BearerPrefix prefaces a token inside the Authorization header value.
const BearerPrefix = "Bearer "

// StripBearer extracts the raw token from a bearer header value. It returns ""
// when the value is blank or does not carry the Bearer prefix.
func StripBearer(header string) string {
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return header[len(BearerPrefix):]
}

// normalizeEmail is applied on every credential path that takes an email from
// the outside, so the form stored at registration is the form matched at login.
// Token subjects are minted from the stored record and need no second pass.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// RegisterParams is the input to Register. Field validation (format, lengths)
// happens at the HTTP boundary; the service only assumes non-empty values.
type RegisterParams struct {
	Email    string
	Password string
	Username string
	City     string
	Street   string
	ZipCode  string
}

// UserInfo is the public projection of a user record returned on registration.
type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Level   string `json:"level"`
}

// Service authenticates credentials and issues token pairs. It is stateless
// apart from reads of the user store: no token is recorded or revoked, so an
// old refresh token stays valid until its own expiry.
type Service struct {
	users  UserStore
	issuer *TokenIssuer
}

func NewService(users UserStore, issuer *TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// Login validates email/password against the stored record and issues a fresh
// token pair carrying the user's current role.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = normalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TokenPair{}, fmt.Errorf("%s %w", email, ErrNotFound)
		}
		return TokenPair{}, err
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return TokenPair{}, err
	}
	return s.issuer.Pair(user.Email, user.Role)
}

// Reissue exchanges a valid refresh token for a new token pair. The grant-type
// prefix is checked before any cryptographic work. The role minted into the new
// pair is re-read from the current user record, not trusted from the old
// token's claims, so a role change takes effect on the next reissue.
func (s *Service) Reissue(ctx context.Context, bearerToken string) (TokenPair, error) {
	refreshToken := StripBearer(bearerToken)
	if strings.TrimSpace(refreshToken) == "" {
		return TokenPair{}, ErrInvalidGrantType
	}
	claims, err := s.issuer.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return TokenPair{}, ErrClaimNotFound
	}
	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return TokenPair{}, fmt.Errorf("%s %w", claims.Subject, ErrNotFound)
		}
		return TokenPair{}, err
	}
	return s.issuer.Pair(user.Email, user.Role)
}

// Register creates a new ROLE_NORMAL user and returns its public info.
func (s *Service) Register(ctx context.Context, params RegisterParams) (UserInfo, error) {
	email := normalizeEmail(params.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return UserInfo{}, fmt.Errorf("%s %w", email, ErrDuplicatedEmail)
	} else if !errors.Is(err, ErrNotFound) {
		return UserInfo{}, err
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return UserInfo{}, err
	}
	user := &User{
		Email:        email,
		PasswordHash: hash,
		Username:     params.Username,
		Role:         RoleNormal,
		Address: Address{
			City:    params.City,
			Street:  params.Street,
			ZipCode: params.ZipCode,
		},
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Backstop for the race between the duplicate pre-check and insert.
		if errors.Is(err, ErrDuplicatedEmail) {
			return UserInfo{}, fmt.Errorf("%s %w", email, ErrDuplicatedEmail)
		}
		return UserInfo{}, err
	}
	return UserInfo{
		ID:      user.ID,
		Email:   user.Email,
		Address: user.Address.String(),
		Level:   user.Role,
	}, nil
}

// VerifyAccessToken converts a raw access token into an authenticated
// principal. It performs no I/O; roles come from the verified claims.
func (s *Service) VerifyAccessToken(token string) (Principal, error) {
	claims, err := s.issuer.ParseAccessToken(token)
	if err != nil {
		return Principal{}, err
	}
	if len(claims.Roles) == 0 || strings.TrimSpace(claims.Subject) == "" {
		return Principal{}, ErrClaimNotFound
	}
	return Principal{
		Email:         claims.Subject,
		Roles:         claims.Roles,
		Authenticated: true,
	}, nil
}
