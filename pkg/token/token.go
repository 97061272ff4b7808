package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Claims carried by both access and refresh tokens. Email and Role mirror
// the user record at issuance time; the auth middleware still reloads the
// user for the authoritative role.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`

	jwt.RegisteredClaims
}

// Service issues and validates HS256-signed access/refresh token pairs.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte

	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

func NewService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (s *Service) GenerateAccessToken(userID int64, email, role string) (string, error) {
	return s.generate(TypeAccess, userID, email, role)
}

func (s *Service) GenerateRefreshToken(userID int64, email, role string) (string, error) {
	return s.generate(TypeRefresh, userID, email, role)
}

// ValidateAccessToken parses and verifies an access token.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.validate(tokenString, s.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeAccess {
		return nil, ErrInvalid
	}
	return claims, nil
}

// ValidateRefreshToken parses and verifies a refresh token.
func (s *Service) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.validate(tokenString, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeRefresh {
		return nil, ErrInvalid
	}
	return claims, nil
}

func (s *Service) generate(tokenType string, userID int64, email, role string) (string, error) {
	secret := s.accessSecret
	ttl := s.accessTTL
	if tokenType == TypeRefresh {
		secret = s.refreshSecret
		ttl = s.refreshTTL
	}
	if len(secret) == 0 || ttl <= 0 {
		return "", ErrInvalid
	}

	now := s.now().UTC()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func (s *Service) validate(tokenString string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)

	var claims Claims
	tok, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if tok == nil || !tok.Valid {
		return nil, ErrInvalid
	}

	return &claims, nil
}
