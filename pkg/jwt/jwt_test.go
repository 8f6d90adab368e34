package jwt

import (
	"testing"
	"time"

	"mediguard-api/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret"})

	token, tokenID, err := svc.GenerateToken(7, "alice@x.com", "patient", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, "patient", claims.Role)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, tokenID, claims.ID)
	assert.Nil(t, claims.ExpiresAt, "tokens carry no exp unless an expiry is configured")
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret"})
	verifier := NewJWTService(config.JWTConfig{Secret: "other"})

	token, _, err := issuer.GenerateToken(1, "a@b.c", "admin", "A")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret", Expiry: time.Minute})
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateToken(1, "a@b.c", "patient", "A")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret"})

	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: 1, Role: "admin"})
	token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "secret"})

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
