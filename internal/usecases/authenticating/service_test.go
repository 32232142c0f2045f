package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/domain"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
)

func TestIssueAndValidateToken(t *testing.T) {
	service := NewService("test-secret")

	token, err := service.IssueToken("ops@cascadia", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@cascadia", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.RoleID)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewService("one").IssueToken("ops", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	_, err = NewService("two").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	s := &Service{secret: []byte("secret"), now: func() time.Time { return time.Now().Add(-48 * time.Hour) }}
	token, err := s.IssueToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = NewService("secret").ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Equal(t, apiErrors.ErrExpiredToken, ErrorCode(err))
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{
		RoleID:           domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: "ops"},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("secret").ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueToken_Errors(t *testing.T) {
	_, err := NewService("").IssueToken("ops", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewService("secret").IssueToken("", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingClaims)

	_, err = NewService("secret").IssueToken("ops", 9, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, apiErrors.ErrInvalidToken, ErrorCode(errors.New("boom")))
	assert.Equal(t, apiErrors.ErrInvalidRequest, ErrorCode(NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, "role 9")))
	assert.EqualError(t, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, "role 9"), "unknown role: role 9")
}
