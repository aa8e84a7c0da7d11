package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Error("HashPassword() returned the plaintext")
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("CheckPasswordHash() = false for the right password")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("CheckPasswordHash() = true for a wrong password")
	}
}

func TestGenerateSessionID(t *testing.T) {
	id1 := GenerateSessionID()
	id2 := GenerateSessionID()

	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("GenerateSessionID() = %q, not a valid uuid: %v", id1, err)
	}
	if id1 == id2 {
		t.Error("GenerateSessionID() produced duplicate IDs")
	}
}

func TestGetSessionExpiry(t *testing.T) {
	expiry := GetSessionExpiry()

	if !expiry.After(time.Now()) {
		t.Errorf("GetSessionExpiry() = %v, want a future time", expiry)
	}
	want := time.Now().Add(24 * time.Hour)
	if diff := expiry.Sub(want); diff > time.Minute || diff < -time.Minute {
		t.Errorf("GetSessionExpiry() = %v, want about %v", expiry, want)
	}
}

func TestResetTokenRoundtrip(t *testing.T) {
	token, err := GenerateResetToken("user-123")
	if err != nil {
		t.Fatalf("GenerateResetToken() error = %v", err)
	}

	userID, err := ValidateResetToken(token)
	if err != nil {
		t.Fatalf("ValidateResetToken() error = %v", err)
	}
	if userID != "user-123" {
		t.Errorf("ValidateResetToken() = %q, want %q", userID, "user-123")
	}
}

func TestResetTokenRejections(t *testing.T) {
	makeToken := func(claims ResetClaims) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := tok.SignedString(getJWTSecret())
		if err != nil {
			t.Fatalf("signing test token: %v", err)
		}
		return s
	}

	expired := makeToken(ResetClaims{
		UserID:  "user-123",
		Purpose: "password_reset",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	wrongPurpose := makeToken(ResetClaims{
		UserID:  "user-123",
		Purpose: "something_else",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	tests := []struct {
		name  string
		token string
	}{
		{"expired token", expired},
		{"wrong purpose", wrongPurpose},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateResetToken(tt.token); err == nil {
				t.Error("ValidateResetToken() error = nil, want error")
			}
		})
	}
}
