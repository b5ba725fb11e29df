package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-note-sync"
	testSignKey = "sign-key"
)

// ── GenerateJWTToken ─────────────────────────────────────────────────────────

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Expiry(), 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, errInvalidTokenParams)
		})
	}
}

// ── ValidateAndParseJWTToken ─────────────────────────────────────────────────

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, issued.SignedString, parsed.String())
	assert.True(t, issued.Expiry().Equal(parsed.Expiry()))
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	sign := func(method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	withSubject := func(sub string) jwt.RegisteredClaims {
		c := valid
		c.Subject = sub
		return c
	}
	noExpiry := valid
	noExpiry.ExpiresAt = nil

	expired, err := GenerateJWTToken(testIssuer, 1, -time.Second, testSignKey)
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":           "not.a.token",
		"wrong key":           sign(jwt.SigningMethodHS256, []byte("other-key"), valid),
		"wrong issuer":        sign(jwt.SigningMethodHS256, []byte(testSignKey), jwt.RegisteredClaims{Issuer: "x", Subject: "1", ExpiresAt: valid.ExpiresAt}),
		"expired":             expired.SignedString,
		"no expiry":           sign(jwt.SigningMethodHS256, []byte(testSignKey), noExpiry),
		"other hmac size":     sign(jwt.SigningMethodHS512, []byte(testSignKey), valid),
		"unsigned":            sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid),
		"empty subject":       sign(jwt.SigningMethodHS256, []byte(testSignKey), withSubject("")),
		"non numeric subject": sign(jwt.SigningMethodHS256, []byte(testSignKey), withSubject("alice")),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
			assert.Error(t, err)
		})
	}
}

// ── ParseBearerToken ─────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  Bearer tok  ", want: "tok"},
		{header: "bearer tok", want: "tok"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer a b", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidBearerHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
