package common

import (
	"testing"
	"time"
)

func TestSessionService_CreateAndGet(t *testing.T) {
	svc := NewSessionService(NewCacheService(600, 60), time.Hour)

	session, err := svc.CreateSession("chief", "chief", "chief", "avatar.png")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.SessionID == "" {
		t.Fatal("Expected a session id")
	}

	got, err := svc.GetSession(session.SessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Username != "chief" || got.Role != "chief" {
		t.Errorf("Unexpected session payload: %+v", got)
	}
}

func TestSessionService_Delete(t *testing.T) {
	svc := NewSessionService(NewCacheService(600, 60), time.Hour)

	session, err := svc.CreateSession("houcine", "atsep", "houcine", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	svc.DeleteSession(session.SessionID)

	if _, err := svc.GetSession(session.SessionID); err == nil {
		t.Error("Expected error after delete")
	}
}

func TestSessionService_Expiry(t *testing.T) {
	svc := NewSessionService(NewCacheService(600, 60), -time.Minute)

	session, err := svc.CreateSession("chief", "chief", "chief", "")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if _, err := svc.GetSession(session.SessionID); err == nil {
		t.Error("Expected expired session to be rejected")
	}
}

func TestSessionService_UnknownID(t *testing.T) {
	svc := NewSessionService(NewCacheService(600, 60), time.Hour)

	if _, err := svc.GetSession("no-such-session"); err == nil {
		t.Error("Expected error for unknown session id")
	}
}
