package auth_test

import (
	"testing"
	"time"

	"github.com/fruit-order/api/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateAndValidateSessionToken(t *testing.T) {
	secret := "test-secret"
	sessionID := uuid.New()

	token, err := auth.GenerateSessionToken(secret, sessionID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := auth.ValidateSessionToken(secret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}

	if claims.SessionID != sessionID {
		t.Errorf("session ID: got %v, want %v", claims.SessionID, sessionID)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now().Add(auth.SessionTTL-time.Minute)) {
		t.Errorf("expires at: got %v", claims.ExpiresAt)
	}
}

func TestValidateSessionTokenWithWrongSecret(t *testing.T) {
	token, err := auth.GenerateSessionToken("secret-a", uuid.New())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = auth.ValidateSessionToken("secret-b", token)
	if err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestValidateSessionTokenWithInvalidString(t *testing.T) {
	_, err := auth.ValidateSessionToken("secret", "not-a-jwt")
	if err == nil {
		t.Fatal("expected error validating invalid token string")
	}
}

func TestValidateSessionTokenExpired(t *testing.T) {
	claims := auth.Claims{
		SessionID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.ValidateSessionToken("secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateSessionTokenWithoutSessionID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := auth.ValidateSessionToken("secret", token); err == nil {
		t.Fatal("expected error for token without session id")
	}
}
