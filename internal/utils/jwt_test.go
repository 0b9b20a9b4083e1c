package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dia-companion/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "user@example.com", models.RoleAdmin, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, "user@example.com", token.Email)
	assert.Equal(t, models.RoleAdmin, token.Role)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, token.SignedString, token.String())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "e@x", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "e@x", 0, "key"},
		{"empty key", "iss", "e@x", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, models.RoleUser, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("iss", "user@example.com", models.RoleUser, time.Hour, "key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", parsed.Email)
	assert.Equal(t, models.RoleUser, parsed.Role)
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "user@example.com", models.RoleUser, time.Hour, "key")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredStr, err := expired.SignedString([]byte("key"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSubjectStr, err := noSubject.SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expiredStr, "key", "iss"},
		{"no subject", noSubjectStr, "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	tok, err = ParseBearerToken("  bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(header)
		assert.Error(t, err, "header %q", header)
	}
}

func TestParseEmailFromJWT(t *testing.T) {
	generated, err := GenerateJWTToken("iss", "who@example.com", models.RoleUser, time.Hour, "key")
	require.NoError(t, err)

	email, err := ParseEmailFromJWT(generated.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "who@example.com", email)

	_, err = ParseEmailFromJWT("garbage")
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "who@example.com"))
}
