package auth

import (
	"testing"
	"time"

	"uiagate/config"
	domainerrors "uiagate/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_identity_secret_key_very_long_for_testing"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func newTestIdentity(t *testing.T) *jwtIdentity {
	cfg := &config.Config{Identity: &config.IdentityConfig{Secret: testSecret, Issuer: "example.org"}}

	svc, err := NewIdentityService(cfg)
	require.NoError(t, err)

	return svc.(*jwtIdentity)
}

func TestJWTIdentity_Identify(t *testing.T) {
	identity := newTestIdentity(t)
	valid := jwt.RegisteredClaims{
		Subject:   "@alice:example.org",
		Issuer:    "example.org",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	userID, err := identity.Identify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid))

	require.NoError(t, err)
	assert.Equal(t, "@alice:example.org", userID)
}

func TestJWTIdentity_Identify_Rejects(t *testing.T) {
	identity := newTestIdentity(t)
	expiry := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := map[string]string{
		"expired": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "@alice:example.org", Issuer: "example.org", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}),
		"no expiry": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "@alice:example.org", Issuer: "example.org",
		}),
		"wrong issuer": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "@alice:example.org", Issuer: "evil.org", ExpiresAt: expiry,
		}),
		"wrong secret": signToken(t, jwt.SigningMethodHS256, []byte("another secret"), jwt.RegisteredClaims{
			Subject: "@alice:example.org", Issuer: "example.org", ExpiresAt: expiry,
		}),
		"wrong algorithm": signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "@alice:example.org", Issuer: "example.org", ExpiresAt: expiry,
		}),
		"no subject": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Issuer: "example.org", ExpiresAt: expiry,
		}),
		"garbage": "not.a.jwt",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			userID, err := identity.Identify(token)

			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
			assert.Empty(t, userID)
		})
	}
}

func TestNewIdentityService(t *testing.T) {
	anonymous, err := NewIdentityService(&config.Config{})
	require.NoError(t, err)

	userID, err := anonymous.Identify("anything")
	require.NoError(t, err)
	assert.Empty(t, userID)

	_, err = NewIdentityService(&config.Config{Identity: &config.IdentityConfig{}})
	assert.Error(t, err)
}
