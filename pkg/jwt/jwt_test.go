package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", 15*time.Minute)
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID: "user:123",
		Email:  "test@example.com",
	}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_NotExpired_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error for non-expired token, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid_ReturnsErrTokenNotYetValid(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		NotBefore: time.Now().Add(1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

// ============================================================================
// Sign / Validate Tests
// ============================================================================

func TestService_SignAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		UserID: "user:123",
		Email:  "ash@example.com",
	})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("expected three-part token, got %s", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("expected user:123, got %s", claims.UserID)
	}
	if claims.Email != "ash@example.com" {
		t.Errorf("expected ash@example.com, got %s", claims.Email)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
}

func TestService_Validate_ExpiredToken_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := svc.Validate(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestService_Validate_WrongIssuer_ReturnsError(t *testing.T) {
	t.Parallel()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	signer := NewTestService(privateKey, "other-issuer", 15*time.Minute)
	verifier := NewTestService(privateKey, "test-issuer", 15*time.Minute)

	token, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := verifier.Validate(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}
}

func TestService_Validate_TamperedSignature_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	// Validate against a different key pair
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	other := NewTestService(otherKey, "test-issuer", 15*time.Minute)

	if _, err := other.Validate(token); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Validate_MalformedToken_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no dots", "notatoken"},
		{"two parts", "a.b"},
		{"garbage signature", "a.b.!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Validate(tt.token); err == nil {
				t.Error("expected error for malformed token")
			}
		})
	}
}

func TestService_Sign_NoPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	if _, err := svc.Sign(Claims{UserID: "user:123"}); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestGenerateKeyPair_WritesLoadableKeys(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privPath := dir + "/private.pem"
	pubPath := dir + "/public.pem"

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	svc, err := NewService(Config{
		PrivateKeyPath: privPath,
		PublicKeyPath:  pubPath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("NewService failed with generated keys: %v", err)
	}

	token, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := svc.Validate(token); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
