package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testConfig() *JWTConfig {
	return &JWTConfig{
		Secret:   []byte("testsecret"),
		Issuer:   "ircbar",
		Audience: "ircbar-api",
		TTL:      time.Hour,
	}
}

func TestGenerateAndValidate(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(cfg, "statusbar", "read")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(cfg, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "statusbar" || claims.Scope != "read" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejects(t *testing.T) {
	cfg := testConfig()

	sign := func(secret string, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return token
	}
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign("other", jwt.MapClaims{"sub": "x", "iss": "ircbar", "aud": "ircbar-api", "exp": exp})},
		{"wrong issuer", sign("testsecret", jwt.MapClaims{"sub": "x", "iss": "evil", "aud": "ircbar-api", "exp": exp})},
		{"wrong audience", sign("testsecret", jwt.MapClaims{"sub": "x", "iss": "ircbar", "aud": "other", "exp": exp})},
		{"expired", sign("testsecret", jwt.MapClaims{"sub": "x", "iss": "ircbar", "aud": "ircbar-api", "exp": time.Now().Add(-time.Hour).Unix()})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(cfg, tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestDisabledConfig(t *testing.T) {
	cfg := &JWTConfig{}
	if cfg.Enabled() {
		t.Fatal("empty secret must disable auth")
	}
	if _, err := GenerateToken(cfg, "x", ""); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
	var nilCfg *JWTConfig
	if nilCfg.Enabled() {
		t.Fatal("nil config must be disabled")
	}
}
