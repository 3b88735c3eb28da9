package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
)

func newAuthFixture(t *testing.T) (*AuthService, *common.SessionService, *auth.TokenService, *gorm.DB) {
	t.Helper()
	gdb := setupTestDB(t)
	if err := db.Seed(gdb); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	sessions := common.NewSessionService(common.NewCacheService(600, 60), time.Hour)
	tokens := auth.NewTokenService([]byte("test-secret"))
	svc := NewAuthService(repositories.NewUserRepository(gdb), sessions, tokens, testMetrics, time.Hour)
	return svc, sessions, tokens, gdb
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, sessions, tokens, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dtos.LoginRequest{
		Username: "chief", Password: "chief123", Role: "chief",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Role != "chief" {
		t.Errorf("Expected role chief, got %s", resp.Role)
	}

	claims, err := tokens.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("Token should validate: %v", err)
	}
	session, err := sessions.GetSession(claims.SessionID)
	if err != nil {
		t.Fatalf("Session should exist: %v", err)
	}
	if session.Username != "chief" {
		t.Errorf("Expected session for chief, got %s", session.Username)
	}
}

func TestAuthService_Login_PortalLabelRole(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dtos.LoginRequest{
		Username: "chief", Password: "chief123", Role: "Chief of Unit",
	})
	if err != nil {
		t.Fatalf("Login with portal label failed: %v", err)
	}
	if resp.Role != "chief" {
		t.Errorf("Expected normalized role chief, got %s", resp.Role)
	}
}

func TestAuthService_Login_Rejections(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	cases := []dtos.LoginRequest{
		{Username: "chief", Password: "wrong", Role: "chief"},     // bad password
		{Username: "chief", Password: "chief123", Role: "atsep"}, // wrong role
		{Username: "nobody", Password: "chief123", Role: "chief"}, // unknown account
		{Username: "chief", Password: "chief123", Role: "wizard"}, // unknown role
	}
	for i, req := range cases {
		if _, err := svc.Login(ctx, req); !errors.Is(err, constants.ErrUnauthorized) {
			t.Errorf("case %d: expected ErrUnauthorized, got %v", i, err)
		}
	}

	if _, err := svc.Login(ctx, dtos.LoginRequest{Username: "chief"}); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for missing fields, got %v", err)
	}
}

func TestAuthService_Logout_KillsSession(t *testing.T) {
	svc, sessions, tokens, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dtos.LoginRequest{
		Username: "houcine", Password: "atsep123", Role: "atsep",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := tokens.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("Token should validate: %v", err)
	}

	svc.Logout(claims.SessionID)

	if _, err := sessions.GetSession(claims.SessionID); err == nil {
		t.Error("Expected session gone after logout")
	}
}
