package authjwt

import (
	"errors"
	"testing"
	"time"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

func TestProvider_GenerateAndValidateToken(t *testing.T) {
	p := NewProvider(testSecret)
	claims := &authdomain.Claims{PlayerID: "player-123", ClubID: "club-456", Role: authdomain.RoleEditor}

	tests := []struct {
		name        string
		ttl         time.Duration
		validator   Provider
		token       string
		expectedErr error
	}{
		{name: "success", ttl: time.Hour},
		{name: "expired token", ttl: -time.Hour, expectedErr: ErrExpiredToken},
		{name: "invalid signature", ttl: time.Hour, validator: NewProvider("another-secret-that-is-32-bytes!!"), expectedErr: ErrInvalidSignature},
		{name: "malformed token", token: "not.a.jwt", expectedErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token
			if token == "" {
				var err error
				token, err = p.GenerateToken(claims, tt.ttl)
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
			}

			validator := p
			if tt.validator != nil {
				validator = tt.validator
			}

			got, err := validator.ValidateToken(token)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.PlayerID != claims.PlayerID || got.ClubID != claims.ClubID || got.Role != claims.Role {
				t.Errorf("claims mismatch: got %+v", got)
			}
			if got.ExpiresAt.IsZero() {
				t.Error("expected an expiry")
			}
		})
	}
}

func TestProvider_RejectsTokenWithoutClub(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "player-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewProvider(testSecret).ValidateToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestProvider_DefaultsRoleToPlayer(t *testing.T) {
	p := NewProvider(testSecret)
	token, err := p.GenerateToken(&authdomain.Claims{PlayerID: "p", ClubID: "c"}, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.Role != authdomain.RolePlayer {
		t.Fatalf("role = %q, want player", got.Role)
	}
}
