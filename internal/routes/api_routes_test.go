package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/config"
	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/models/dtos"
)

var (
	routerOnce sync.Once
	testRouter http.Handler
	routerErr  error
)

// setupRouter builds the full stack once per test binary. The metrics
// registry and the shared in-memory store both forbid a second setup.
func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	routerOnce.Do(func() {
		if routerErr = logging.Init("development"); routerErr != nil {
			return
		}

		var gdb *gorm.DB
		if gdb, routerErr = db.Init(db.DefaultDSN); routerErr != nil {
			return
		}
		if routerErr = db.Seed(gdb); routerErr != nil {
			return
		}

		cfg := &config.Config{
			Cache:   config.CacheConfig{Backend: "memory"},
			Blob:    config.BlobConfig{Driver: "memory"},
			Session: config.SessionConfig{TTLMinutes: 60, Secret: "test-secret"},
		}
		testRouter, _, routerErr = RegisterRoutes(cfg, time.Now())
	})
	if routerErr != nil {
		t.Fatalf("Failed to set up router: %v", routerErr)
	}
	return testRouter
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler, username, password, role string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dtos.LoginRequest{
		Username: username, Password: password, Role: role,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Login %s failed with status %d: %s", username, rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data dtos.LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("Expected a token")
	}
	return envelope.Data.Token
}

func TestAPI_MissionLifecycle(t *testing.T) {
	router := setupRouter(t)

	chiefToken := login(t, router, "chief", "chief123", "chief")
	atsepToken := login(t, router, "houcine", "atsep123", "atsep")

	// Chief creates a mission.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/missions", chiefToken, dtos.CreateMissionRequest{
		Reference: "M500", Airport: "ORD", DateStart: "2025-06-10", Duration: "3d", Problem: "Antenna drift",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Create mission failed with status %d: %s", rec.Code, rec.Body.String())
	}

	// Duplicate reference is rejected with a conflict.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/missions", chiefToken, dtos.CreateMissionRequest{
		Reference: "M500", Airport: "ORD", DateStart: "2025-06-10", Duration: "3d", Problem: "Antenna drift",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("Expected 409 on duplicate reference, got %d", rec.Code)
	}

	// ATSEP sees the pending notification and accepts.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/notifications", atsepToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("List notifications failed with status %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/notifications/M500/resolve", atsepToken, dtos.ResolveNotificationRequest{Decision: "Accepted"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Resolve failed with status %d: %s", rec.Code, rec.Body.String())
	}

	// ATSEP starts the mission and files the report.
	rec = doJSON(t, router, http.MethodPatch, "/api/v1/missions/M500/status", atsepToken, dtos.UpdateMissionStatusRequest{Status: "En cours"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Status update failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/reports", atsepToken, dtos.SubmitReportRequest{
		MissionRef: "M500", MissionStatus: "Completed", Findings: "Realigned antenna", Actions: "Calibration run",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Submit report failed with status %d: %s", rec.Code, rec.Body.String())
	}

	// The mission is closed once the report lands.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/missions/M500", atsepToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Get mission failed with status %d", rec.Code)
	}
	var missionEnvelope struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &missionEnvelope); err != nil {
		t.Fatalf("Failed to decode mission: %v", err)
	}
	if missionEnvelope.Data.Status != "Done" {
		t.Errorf("Expected mission Done, got %q", missionEnvelope.Data.Status)
	}

	// Chief reviews the submitted report.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/reports?status=Submitted", chiefToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("List reports failed with status %d", rec.Code)
	}
}

func TestAPI_RoleGates(t *testing.T) {
	router := setupRouter(t)

	clientToken := login(t, router, "airport1", "client123", "client")

	// Clients cannot create missions.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/missions", clientToken, dtos.CreateMissionRequest{
		Reference: "M600", Airport: "ORD", DateStart: "2025-06-10", Duration: "1d", Problem: "Test",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 for client creating mission, got %d", rec.Code)
	}

	// Clients can file problems.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/problems", clientToken, dtos.CreateProblemRequest{
		Airport: "JFK", System: "ILS", Priority: "High", Description: "Glide slope drifting",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Client problem filing failed with status %d: %s", rec.Code, rec.Body.String())
	}

	// Missing token is rejected.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/missions", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", rec.Code)
	}

	// Bad credentials are rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dtos.LoginRequest{
		Username: "chief", Password: "wrong", Role: "chief",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 for bad credentials, got %d", rec.Code)
	}
}
