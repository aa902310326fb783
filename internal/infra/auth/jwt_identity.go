// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"uiagate/config"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/service"
	"uiagate/internal/errors"
)

// jwtIdentity resolves HS256 access tokens into the user id carried in "sub".
type jwtIdentity struct {
	secret []byte
	issuer string
}

// anonymousIdentity treats every caller as anonymous.
type anonymousIdentity struct{}

// NewIdentityService returns a JWT-backed IdentityService, or one that never
// identifies anybody when no identity block is configured.
func NewIdentityService(cfg *config.Config) (service.IdentityService, error) {
	if cfg.Identity == nil {
		return anonymousIdentity{}, nil
	}
	if cfg.Identity.Secret == "" {
		return nil, errors.New("identity secret must be provided")
	}

	return &jwtIdentity{
		secret: []byte(cfg.Identity.Secret),
		issuer: cfg.Identity.Issuer,
	}, nil
}

func (s *jwtIdentity) Identify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...); err != nil {
		return "", domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return "", domainerrors.ErrUnauthorized.WithMessage("Access token has no subject")
	}

	return claims.Subject, nil
}

func (anonymousIdentity) Identify(string) (string, error) {
	return "", nil
}
