package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/defect-tracker-api/internal/models"
)

const testSecret = "test-secret"

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	tokens, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	require.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTestTokenService(t)

	token, err := tokens.Issue(7, models.RoleManager)
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	tokens := newTestTokenService(t)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tokens.Issue(7, models.RoleEngineer)
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	other, err := NewTokenService("another-secret", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(7, models.RoleEngineer)
	require.NoError(t, err)

	_, err = newTestTokenService(t).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	tokens := newTestTokenService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestTokenService_Verify_UnexpectedSigningMethod(t *testing.T) {
	claims := &Claims{
		UserID: 7,
		Role:   models.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestTokenService(t).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_UnknownRole(t *testing.T) {
	tokens := newTestTokenService(t)

	token, err := tokens.Issue(7, models.Role("ADMIN"))
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
