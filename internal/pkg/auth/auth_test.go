package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/setnu/clubportal/internal/app/models"
)

func newTestJWT() *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "clubportal-test"})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: uuid.New(), Email: "mentor@club.edu"}

	token, expiresIn, err := svc.GenerateAccessToken(user, models.RoleClubMentor)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != models.RoleClubMentor {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestJWTRejectsExpiredAndForeignTokens(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: uuid.New(), Email: "a@club.edu"}
	token, _, err := svc.GenerateAccessToken(user, models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	later := newTestJWT()
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := later.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expired token error = %v, want ErrExpiredToken", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"", "", true},
		{"Bearer abc.def", "abc.def", false},
		{"abc.def", "abc.def", false},
	}
	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, %v", tt.header, got, err)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "s3cret!") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
