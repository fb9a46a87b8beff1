package jwt

import (
	"testing"
	"time"

	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenAndParseToken(t *testing.T) {
	secretKey := "bf284d03-ba65-42d4-a9fe-0d2fbfe61060"

	aToken, rToken, err := GenToken("user-1", "role-1", []byte(secretKey), 30, 60*24*7)
	require.NoError(t, err)
	require.NotEmpty(t, aToken)
	require.NotEmpty(t, rToken)

	claims, err := ParseToken(aToken, secretKey)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
	assert.Equal(t, "role-1", claims.RoleId)
	assert.Equal(t, "campus", claims.Issuer)
}

func TestParseTokenWrongSecret(t *testing.T) {
	aToken, _, err := GenToken("user-1", "role-1", []byte("secret-a"), 30, 60)
	require.NoError(t, err)

	_, err = ParseToken(aToken, "secret-b")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	secretKey := "secret"

	now := time.Now()
	claims := &AuthClaims{
		UserId: "user-1",
		RoleId: "role-1",
		RegisteredClaims: goJwt.RegisteredClaims{
			Issuer:    "campus",
			ExpiresAt: goJwt.NewNumericDate(now.Add(-time.Hour)),
			NotBefore: goJwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token, err := goJwt.NewWithClaims(goJwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	require.NoError(t, err)

	_, err = ParseToken(token, secretKey)
	assert.ErrorIs(t, err, goJwt.ErrTokenExpired)
}

func TestRefreshToken(t *testing.T) {
	secretKey := "bf284d03-ba65-42d4-a9fe-0d2fbfe61060"

	_, rToken, err := GenToken("user-1", "role-1", []byte(secretKey), 30, 60*24*7)
	require.NoError(t, err)

	pair, err := RefreshToken(rToken, secretKey, 30, 60*24*7)
	require.NoError(t, err)
	require.NotEmpty(t, pair["accessToken"])
	require.NotEmpty(t, pair["refreshToken"])

	claims, err := ParseToken(pair["accessToken"], secretKey)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
	assert.Equal(t, "role-1", claims.RoleId)
}
