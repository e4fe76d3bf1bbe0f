package service

import (
	"fmt"
	"strings"
	"time"

	"vnpay-connector/internal/core/ports"
	"vnpay-connector/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// Scopes granted to merchant API clients.
const (
	ScopeQuery  = "vnpay:query"
	ScopeRefund = "vnpay:refund"
)

// JWTTokenService implements ports.TokenService using HS256 JWT.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTTokenService creates a new JWT token service. An empty secret is
// accepted so the server can start, but every Generate and Validate fails.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(strings.TrimSpace(secret)),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

// Generate creates a signed JWT for a merchant backend.
func (s *JWTTokenService) Generate(client string, scopes []string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, apperror.ErrConfiguration("auth.jwt_secret")
	}
	if strings.TrimSpace(client) == "" {
		return "", time.Time{}, apperror.ErrRequiredField("client")
	}

	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":   client,
		"scope": strings.Join(scopes, " "),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
		"iss":   s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT token, returning the claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	if len(s.secret) == 0 {
		return nil, apperror.ErrConfiguration("auth.jwt_secret")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("missing subject claim")
	}

	scope, _ := claims["scope"].(string)

	return &ports.TokenClaims{
		Client: sub,
		Scopes: strings.Fields(scope),
	}, nil
}
