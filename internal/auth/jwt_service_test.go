package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "TaskManagerApi"
	testAudience = "TaskManagerClient"
)

func newTestService() *JWTService {
	return NewJWTService(testSecret, testIssuer, testAudience)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService()

	token, expiresAt, err := service.GenerateToken(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), expiresAt, 5*time.Second)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	userID, err := claims.UserID()
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := newTestService()

	// Token issued 24h+1s ago: one second past its lifetime.
	now := time.Now().Add(-TokenExpiry - time.Second)
	claims := &Claims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.Error(t, err)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	service := newTestService()

	token, _, err := service.GenerateToken(7, "user@example.com")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		service *JWTService
		token   string
	}{
		{"malformed token", service, "not-a-token"},
		{"wrong secret", NewJWTService("other-secret", testIssuer, testAudience), token},
		{"wrong issuer", NewJWTService(testSecret, "SomeOtherApi", testAudience), token},
		{"wrong audience", NewJWTService(testSecret, testIssuer, "SomeOtherClient"), token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestClaims_UserIDRejectsNonInteger(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-an-integer"},
	}
	_, err := claims.UserID()
	assert.Error(t, err)
}

func TestClaims_UserIDRoundTrip(t *testing.T) {
	for _, id := range []uint{1, 42, 99999} {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: strconv.FormatUint(uint64(id), 10)},
		}
		parsed, err := claims.UserID()
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}
