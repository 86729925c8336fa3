package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-for-jwt")

func newTestJWTService(t *testing.T, now time.Time) *JWTService {
	t.Helper()
	s, err := NewJWTService(testSecret)
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	return s
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService(nil)
	assert.Error(t, err)
}

func TestJWT_RoundTrip(t *testing.T) {
	issued := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	s := newTestJWTService(t, issued)

	token, err := s.CreateToken(42, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	claims, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(TokenTTL)))
}

func TestJWT_Expiry(t *testing.T) {
	issued := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	s := newTestJWTService(t, issued)

	token, err := s.CreateToken(1, "a@example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"just issued", issued, nil},
		{"one day later", issued.Add(24 * time.Hour), nil},
		{"one second before expiry", issued.Add(TokenTTL - time.Second), nil},
		{"at expiry", issued.Add(TokenTTL), ErrExpiredToken},
		{"a month later", issued.Add(30 * 24 * time.Hour), ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.now = func() time.Time { return tt.at }
			claims, err := s.VerifyToken(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), claims.UserID)
		})
	}
}

func TestJWT_TamperedSignature(t *testing.T) {
	s := newTestJWTService(t, time.Now())

	token, err := s.CreateToken(7, "bob@example.com")
	require.NoError(t, err)

	sigStart := strings.LastIndex(token, ".") + 1
	replacement := byte('A')
	if token[sigStart] == 'A' {
		replacement = 'B'
	}
	tampered := token[:sigStart] + string(replacement) + token[sigStart+1:]

	claims, err := s.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	s := newTestJWTService(t, time.Now())
	token, err := s.CreateToken(7, "bob@example.com")
	require.NoError(t, err)

	other, err := NewJWTService([]byte("another-secret"))
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	s := newTestJWTService(t, time.Now())

	for _, token := range []string{"", "garbage", "a.b.c", "a.b"} {
		_, err := s.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

// signRaw signs arbitrary claims with the test secret.
func signRaw(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWT_PayloadShapeIsValidated(t *testing.T) {
	now := time.Now()
	s := newTestJWTService(t, now)
	exp := now.Add(time.Hour).Unix()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"userId as string", jwt.MapClaims{"userId": "42", "email": "a@example.com", "exp": exp}},
		{"userId fractional", jwt.MapClaims{"userId": 4.5, "email": "a@example.com", "exp": exp}},
		{"userId missing", jwt.MapClaims{"email": "a@example.com", "exp": exp}},
		{"email as number", jwt.MapClaims{"userId": 42, "email": 5, "exp": exp}},
		{"email missing", jwt.MapClaims{"userId": 42, "exp": exp}},
		{"email empty", jwt.MapClaims{"userId": 42, "email": "", "exp": exp}},
		{"expiry missing", jwt.MapClaims{"userId": 42, "email": "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signRaw(t, jwt.SigningMethodHS256, testSecret, tt.claims)
			claims, err := s.VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	s := newTestJWTService(t, time.Now())
	claims := jwt.MapClaims{"userId": 1, "email": "a@example.com", "exp": time.Now().Add(time.Hour).Unix()}

	hs512 := signRaw(t, jwt.SigningMethodHS512, testSecret, claims)
	_, err := s.VerifyToken(hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims)
	_, err = s.VerifyToken(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService(t *testing.T) {
	jwtSvc, err := NewTokenService("jwt", testSecret)
	require.NoError(t, err)
	assert.IsType(t, &JWTService{}, jwtSvc)

	pasetoSvc, err := NewTokenService("paseto", testSecret)
	require.NoError(t, err)
	assert.IsType(t, &PasetoService{}, pasetoSvc)

	_, err = NewTokenService("saml", testSecret)
	assert.Error(t, err)
}
