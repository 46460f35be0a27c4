package jwt

import (
	"testing"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/config"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(secret string) Manager {
	return NewJwtManager(&config.ServerConfig{SecretKey: secret})
}

func signTokenWithSecret(t *testing.T, secret string, claims jwtlib.Claims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken("creator-1", RoleUser, time.Hour)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "creator-1", claims.UserID)
	assert.Equal(t, "creator-1", claims.Subject)
	assert.False(t, claims.IsAdmin())
	assert.NotNil(t, claims.ExpiresAt)
}

func TestCreateToken_Admin(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")
	token, err := mgr.CreateToken("ops", RoleAdmin, 0)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Nil(t, claims.ExpiresAt)
}

func TestCreateToken_RequiresUser(t *testing.T) {
	_, err := newManagerWithSecret("s").CreateToken("", RoleUser, time.Hour)
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	signed := signTokenWithSecret(t, "other-secret", &Claims{UserID: "u"})

	_, err := newManagerWithSecret("test-secret").ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	signed := signTokenWithSecret(t, secret, &Claims{
		UserID: "u",
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	})

	_, err := newManagerWithSecret(secret).ValidateToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_MissingUser(t *testing.T) {
	signed := signTokenWithSecret(t, "s", &Claims{})
	_, err := newManagerWithSecret("s").ValidateToken(signed)
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, &Claims{UserID: "u"})
	signed, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newManagerWithSecret("s").ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := newManagerWithSecret("s").ValidateToken(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}
