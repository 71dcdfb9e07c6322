// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cards/config"
	"cards/internal/domain/service"
	"cards/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 signed JWTs.
type jwtService struct {
	secret []byte        // Process-wide signing key, read-only after construction.
	ttl    time.Duration // Lifetime of issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("jwt token ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue signs a token for subject. Claims hold whole seconds, so now is
// truncated first and the token lives exactly TTL from the start of that second.
func (s *jwtService) Issue(subject string, now time.Time) (string, time.Time, error) {
	issued := now.Truncate(time.Second)
	issuedAt := jwt.NewNumericDate(issued)
	expiresAt := jwt.NewNumericDate(issued.Add(s.ttl))

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return token, expiresAt.Time, nil
}

// Verify checks the signature and expiry of token at instant now.
func (s *jwtService) Verify(token string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return "", errors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	if claims.Subject == "" {
		return "", errors.Wrap(service.ErrTokenMalformed, "token has no subject")
	}

	return claims.Subject, nil
}

// TTL returns the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
