package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", 42, "testuser", time.Hour)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if int(claims["user_id"].(float64)) != 42 {
		t.Fatalf("wrong user_id claim: %v", claims["user_id"])
	}
	if claims["username"] != "testuser" {
		t.Fatalf("wrong username claim: %v", claims["username"])
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _ := GenerateToken("secret", 42, "testuser", -time.Minute)

	_, err := ParseToken("secret", token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id":  42,
		"username": "testuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected non-HS256 token to be rejected")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret", 42, "testuser", time.Hour)

	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	a := HashPassword("password123")
	b := HashPassword("password123")
	if a != b {
		t.Fatal("digest must be deterministic")
	}
	if a == "password123" {
		t.Fatal("password stored in plain text")
	}

	if !CheckPasswordHash("password123", a) {
		t.Fatal("matching password must verify")
	}
	if CheckPasswordHash("password124", a) {
		t.Fatal("non-matching password must not verify")
	}
}
