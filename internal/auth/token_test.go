package auth

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		SigningKey: []byte("unit-test-key"),
		Issuer:     "hospital-frontdesk-test",
		TokenTTL:   time.Hour,
	}
}

// TestIssueAndVerifyToken tests a full issue/verify round trip
func TestIssueAndVerifyToken(t *testing.T) {
	verifier := NewVerifier(testConfig())

	token, err := verifier.IssueToken("admin", "admin")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	pr, err := verifier.ParseAndVerifyToken(token)
	if err != nil {
		t.Fatalf("Failed to verify token: %v", err)
	}
	if pr.Username != "admin" {
		t.Errorf("Expected username 'admin', got '%s'", pr.Username)
	}
	if pr.Role != "admin" {
		t.Errorf("Expected role 'admin', got '%s'", pr.Role)
	}
}

// TestVerifyToken_WrongKey tests rejection of a token signed with another key
func TestVerifyToken_WrongKey(t *testing.T) {
	issuerCfg := testConfig()
	issuerCfg.SigningKey = []byte("some-other-key")
	issuer := NewVerifier(issuerCfg)

	token, err := issuer.IssueToken("admin", "admin")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	verifier := NewVerifier(testConfig())
	if _, err := verifier.ParseAndVerifyToken(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got: %v", err)
	}
}

// TestVerifyToken_WrongIssuer tests rejection of a token from another issuer
func TestVerifyToken_WrongIssuer(t *testing.T) {
	otherCfg := testConfig()
	otherCfg.Issuer = "someone-else"
	other := NewVerifier(otherCfg)

	token, err := other.IssueToken("admin", "admin")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	verifier := NewVerifier(testConfig())
	if _, err := verifier.ParseAndVerifyToken(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got: %v", err)
	}
}

// TestVerifyToken_Expired tests rejection of an expired token
func TestVerifyToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTL = -time.Minute
	verifier := NewVerifier(cfg)

	token, err := verifier.IssueToken("staff", "staff")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if _, err := verifier.ParseAndVerifyToken(token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got: %v", err)
	}
}

// TestVerifyToken_Empty tests the missing-token error
func TestVerifyToken_Empty(t *testing.T) {
	verifier := NewVerifier(testConfig())

	if _, err := verifier.ParseAndVerifyToken(""); err != ErrNoToken {
		t.Errorf("Expected ErrNoToken, got: %v", err)
	}
}

// TestAuthenticate tests the fixed account table
func TestAuthenticate(t *testing.T) {
	role, err := Authenticate("admin", "admin123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if role != "admin" {
		t.Errorf("Expected role 'admin', got '%s'", role)
	}

	role, err = Authenticate("staff", "staff123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if role != "staff" {
		t.Errorf("Expected role 'staff', got '%s'", role)
	}

	if _, err := Authenticate("admin", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got: %v", err)
	}
	if _, err := Authenticate("nobody", "admin123"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got: %v", err)
	}
}
