package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})

	user := &models.User{ID: 42, Username: "amit", Role: models.RoleStudent}
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "amit" {
		t.Errorf("Username = %q, want amit", claims.Username)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.Issuer != "test" {
		t.Errorf("Issuer = %q, want test", claims.Issuer)
	}
}

func TestValidateTokenFailures(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExp: time.Hour, TokenIssuer: "test"})
	other := NewJWTService(JWTConfig{SecretKey: "secret-b", TokenExp: time.Hour, TokenIssuer: "test"})
	expired := NewJWTService(JWTConfig{SecretKey: "secret-a", TokenExp: -time.Minute, TokenIssuer: "test"})

	user := &models.User{ID: 1, Username: "u", Role: models.RoleAdmin}

	t.Run("empty token", func(t *testing.T) {
		if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := other.GenerateToken(user)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if _, err := svc.ValidateAndExtractClaims(token); err == nil {
			t.Error("token signed with another key was accepted")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := expired.GenerateToken(user)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("error = %v, want ErrExpiredToken", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := svc.ValidateAndExtractClaims("not.a.token"); err == nil {
			t.Error("garbage token was accepted")
		}
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
