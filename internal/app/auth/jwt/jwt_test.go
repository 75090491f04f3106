package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	customErrors "github.com/yatradesk/yatradesk-backend/internal/domain/errors"
	"github.com/yatradesk/yatradesk-backend/internal/infra/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "unit-test-secret",
		AccessTokenTTL: time.Minute,
		JWTIssuer:      "test",
		JWTAudience:    "test",
	}
}

func TestTokenIssuer_IssueVerify(t *testing.T) {
	issuer, err := NewTokenIssuer(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	uid := uuid.New()
	token, exp, err := issuer.Issue(uid, "customer")
	if err != nil || exp.IsZero() {
		t.Fatalf("bad issue: %v", err)
	}
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != uid.String() {
		t.Fatalf("want %s got %s", uid, claims.Subject)
	}
	if claims.Role != "customer" {
		t.Fatalf("want role customer got %s", claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti")
	}
}

func TestTokenIssuer_EmptySecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	if _, err := NewTokenIssuer(cfg); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	issuer, _ := NewTokenIssuer(cfg)
	token, _, err := issuer.Issue(uuid.New(), "customer")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := issuer.Verify(token); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenIssuer(testConfig())
	otherCfg := testConfig()
	otherCfg.JWTSecret = "another-secret"
	other, _ := NewTokenIssuer(otherCfg)

	token, _, _ := other.Issue(uuid.New(), "customer")
	if _, err := issuer.Verify(token); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestTokenIssuer_WrongIssuerAudience(t *testing.T) {
	issuer, _ := NewTokenIssuer(testConfig())

	otherCfg := testConfig()
	otherCfg.JWTIssuer = "someone-else"
	other, _ := NewTokenIssuer(otherCfg)
	token, _, _ := other.Issue(uuid.New(), "customer")
	if _, err := issuer.Verify(token); err == nil {
		t.Fatal("expected issuer rejection")
	}

	otherCfg = testConfig()
	otherCfg.JWTAudience = "other-aud"
	other, _ = NewTokenIssuer(otherCfg)
	token, _, _ = other.Issue(uuid.New(), "customer")
	if _, err := issuer.Verify(token); err == nil {
		t.Fatal("expected audience rejection")
	}
}

func TestTokenIssuer_RejectsUnsignedAlg(t *testing.T) {
	issuer, _ := NewTokenIssuer(testConfig())
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
		"iss": "test",
		"aud": "test",
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := issuer.Verify(unsigned); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestTokenIssuer_GarbageToken(t *testing.T) {
	issuer, _ := NewTokenIssuer(testConfig())
	if _, err := issuer.Verify("not-a-token"); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
