package util

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	const secret = "test-secret"

	token, err := GenerateToken(secret, "financasdx", 42, "usuario@email.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "usuario@email.com" {
		t.Errorf("claims.Email = %q, want usuario@email.com", claims.Email)
	}
	if claims.Issuer != "financasdx" {
		t.Errorf("claims.Issuer = %q, want financasdx", claims.Issuer)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", "financasdx", 1, "a@email.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("ParseToken() with wrong secret error = nil, want error")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not.a.token"); err == nil {
		t.Error("ParseToken() with garbage error = nil, want error")
	}
}
