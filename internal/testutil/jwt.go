package testutil

import (
	"testing"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/auth"
)

// TestSigningKey is the shared HMAC key used by test verifiers and tokens.
var TestSigningKey = []byte("test-signing-key")

// TestIssuer matches the issuer test tokens are minted with.
const TestIssuer = "hospital-frontdesk-test"

// CreateTestVerifier returns a verifier wired to the test signing key.
func CreateTestVerifier(t *testing.T) *auth.Verifier {
	t.Helper()

	return auth.NewVerifier(auth.Config{
		SigningKey: TestSigningKey,
		Issuer:     TestIssuer,
		TokenTTL:   1 * time.Hour,
	})
}

// GenerateTestJWT creates a valid session token for the given account.
func GenerateTestJWT(t *testing.T, verifier *auth.Verifier, username, role string) string {
	t.Helper()

	token, err := verifier.IssueToken(username, role)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

// GenerateAdminToken creates an admin token for testing
func GenerateAdminToken(t *testing.T, verifier *auth.Verifier) string {
	t.Helper()
	return GenerateTestJWT(t, verifier, "admin", "admin")
}

// GenerateStaffToken creates a staff token for testing
func GenerateStaffToken(t *testing.T, verifier *auth.Verifier) string {
	t.Helper()
	return GenerateTestJWT(t, verifier, "staff", "staff")
}
