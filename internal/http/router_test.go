package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/assistant"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/auth"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/testutil"
)

// startTestServer wires the full router with a test verifier and a mock
// publisher. The database handle stays nil, so these tests only exercise
// routes that never touch the store.
func startTestServer(t *testing.T) (*httptest.Server, *auth.Verifier) {
	t.Helper()

	verifier := testutil.CreateTestVerifier(t)
	router := SetupRouter(nil, verifier, auth.DefaultPermissions(), testutil.NewMockPublisher(), nil)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, verifier
}

// TestRouter_HealthIsPublic tests that /health needs no token
func TestRouter_HealthIsPublic(t *testing.T) {
	srv, _ := startTestServer(t)
	client := testutil.NewHTTPTestClient(srv.URL, "")

	resp := client.GET(t, "/health")
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)
}

// TestRouter_LoginIssuesUsableToken tests the full login round trip: the
// issued token authorizes a protected endpoint
func TestRouter_LoginIssuesUsableToken(t *testing.T) {
	srv, _ := startTestServer(t)
	anon := testutil.NewHTTPTestClient(srv.URL, "")

	resp := anon.POST(t, "/auth/login", auth.LoginRequest{Username: "admin", Password: "admin123"})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var login auth.LoginResponse
	testutil.DecodeJSON(t, resp, &login)
	if !login.Success || login.Token == "" {
		t.Fatalf("Expected a token, got %+v", login)
	}
	if login.Role != "admin" {
		t.Errorf("Expected role admin, got %s", login.Role)
	}

	client := testutil.NewHTTPTestClient(srv.URL, login.Token)
	dosageResp := client.POST(t, "/assistant/dosage", assistant.DosageRequest{Medicine: "Paracetamol", Age: 30})
	defer dosageResp.Body.Close()
	testutil.AssertStatusCode(t, dosageResp, http.StatusOK)

	var dosage assistant.DosageResponse
	testutil.DecodeJSON(t, dosageResp, &dosage)
	if dosage.AgeGroup != assistant.GroupAdult {
		t.Errorf("Expected age group %s, got %s", assistant.GroupAdult, dosage.AgeGroup)
	}
}

// TestRouter_ProtectedRejectsMissingToken tests the 401 path through the
// real middleware chain
func TestRouter_ProtectedRejectsMissingToken(t *testing.T) {
	srv, _ := startTestServer(t)
	client := testutil.NewHTTPTestClient(srv.URL, "")

	resp := client.POST(t, "/assistant/recommend", assistant.RecommendRequest{Symptoms: "fever"})
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
}

// TestRouter_UnknownRoleForbidden tests that a valid token whose role has
// no permission mapping is rejected with 403
func TestRouter_UnknownRoleForbidden(t *testing.T) {
	srv, verifier := startTestServer(t)
	token := testutil.GenerateTestJWT(t, verifier, "visitor", "visitor")
	client := testutil.NewHTTPTestClient(srv.URL, token)

	resp := client.POST(t, "/assistant/summarize", assistant.SummarizeRequest{Notes: "Take twice daily."})
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
}

// TestRouter_StaffReachesAssistant tests that the staff account authorizes
// the same routes as admin
func TestRouter_StaffReachesAssistant(t *testing.T) {
	srv, verifier := startTestServer(t)
	token := testutil.GenerateStaffToken(t, verifier)
	client := testutil.NewHTTPTestClient(srv.URL, token)

	resp := client.POST(t, "/assistant/recommend", assistant.RecommendRequest{Symptoms: "fever, headache"})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var rec assistant.RecommendResponse
	testutil.DecodeJSON(t, resp, &rec)
	if len(rec.Recommendations) != 2 {
		t.Errorf("Expected 2 recommendations, got %v", rec.Recommendations)
	}

	logoutResp := client.POST(t, "/auth/logout", nil)
	defer logoutResp.Body.Close()
	testutil.AssertStatusCode(t, logoutResp, http.StatusOK)
}
