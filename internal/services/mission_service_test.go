package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
)

func newMissionService(gdb *gorm.DB) *MissionService {
	return NewMissionService(
		repositories.NewMissionRepository(gdb),
		repositories.NewNotificationRepository(gdb),
		repositories.NewReportRepository(gdb),
		repositories.NewProblemRepository(gdb),
		testMetrics,
	)
}

func createMissionRequest(ref string) dtos.CreateMissionRequest {
	return dtos.CreateMissionRequest{
		Reference: ref,
		Airport:   "JFK",
		DateStart: "2025-06-01",
		Duration:  "2d",
		Problem:   "Radar issue",
	}
}

func TestMissionService_CreateMission_EmitsNotification(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	mission, err := svc.CreateMission(ctx, createMissionRequest("M100"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if mission.Status != constants.MissionStatusNew {
		t.Errorf("Expected status New, got %s", mission.Status)
	}
	if mission.Assignment != constants.MissionAssignmentNew {
		t.Errorf("Expected assignment New, got %s", mission.Assignment)
	}

	pending, err := svc.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("Failed to list notifications: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("Expected 1 pending notification, got %d", len(pending))
	}
	if pending[0].MissionRef != "M100" {
		t.Errorf("Expected notification for M100, got %s", pending[0].MissionRef)
	}
	if pending[0].Type != constants.NotificationTypeNewMission {
		t.Errorf("Expected type %s, got %s", constants.NotificationTypeNewMission, pending[0].Type)
	}
}

func TestMissionService_CreateMission_DuplicateReference(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := svc.CreateMission(ctx, createMissionRequest("M100"))
	if !errors.Is(err, constants.ErrDuplicateReference) {
		t.Fatalf("Expected ErrDuplicateReference, got %v", err)
	}

	missions, err := svc.ListMissions(ctx, repositories.MissionFilter{})
	if err != nil {
		t.Fatalf("Failed to list missions: %v", err)
	}
	if len(missions) != 1 {
		t.Errorf("Expected 1 mission after duplicate reject, got %d", len(missions))
	}
}

func TestMissionService_CreateMission_MissingFields(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)

	req := createMissionRequest("M100")
	req.Airport = ""

	_, err := svc.CreateMission(context.Background(), req)
	if !errors.Is(err, constants.ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}
}

func TestMissionService_ResolveNotification_Accept(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mission, err := svc.ResolveNotification(ctx, "M100", "Accepted")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if mission.Assignment != constants.MissionAssignmentAccepted {
		t.Errorf("Expected assignment Accepted, got %s", mission.Assignment)
	}

	pending, _ := svc.ListNotifications(ctx)
	if len(pending) != 0 {
		t.Errorf("Expected notification removed, %d remain", len(pending))
	}
}

func TestMissionService_ResolveNotification_Idempotent(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.ResolveNotification(ctx, "M100", "Accepted"); err != nil {
		t.Fatalf("First resolve failed: %v", err)
	}

	// A second decision must not flip the assignment.
	mission, err := svc.ResolveNotification(ctx, "M100", "Rejected")
	if err != nil {
		t.Fatalf("Repeated resolve should succeed, got %v", err)
	}
	if mission.Assignment != constants.MissionAssignmentAccepted {
		t.Errorf("Expected assignment to stay Accepted, got %s", mission.Assignment)
	}
}

func TestMissionService_ResolveNotification_Invalid(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.ResolveNotification(ctx, "M100", "Maybe"); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for bad decision, got %v", err)
	}
	if _, err := svc.ResolveNotification(ctx, "M999", "Accepted"); !errors.Is(err, constants.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown ref, got %v", err)
	}
}

func TestMissionService_UpdateStatus_Transitions(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Cannot leave New before the assignment is accepted.
	if _, err := svc.UpdateStatus(ctx, "M100", "En cours"); !errors.Is(err, constants.ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition before acceptance, got %v", err)
	}

	if _, err := svc.ResolveNotification(ctx, "M100", "Accepted"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	mission, err := svc.UpdateStatus(ctx, "M100", "En cours")
	if err != nil {
		t.Fatalf("Expected En cours to succeed, got %v", err)
	}
	if mission.Status != constants.MissionStatusEnCours {
		t.Errorf("Expected status En cours, got %s", mission.Status)
	}

	if _, err := svc.UpdateStatus(ctx, "M100", "Done"); err != nil {
		t.Fatalf("Expected Done to succeed, got %v", err)
	}

	// Forward only.
	if _, err := svc.UpdateStatus(ctx, "M100", "New"); !errors.Is(err, constants.ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition moving backwards, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, "M100", "Paused"); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown status, got %v", err)
	}
}

func TestMissionService_UpdateStatus_RejectedFrozen(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.ResolveNotification(ctx, "M100", "Rejected"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, "M100", "En cours"); !errors.Is(err, constants.ErrInvalidTransition) {
		t.Errorf("Expected rejected mission to be frozen, got %v", err)
	}
}

func TestMissionService_Dashboards(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	for _, ref := range []string{"M100", "M101", "M102"} {
		if _, err := svc.CreateMission(ctx, createMissionRequest(ref)); err != nil {
			t.Fatalf("Create %s failed: %v", ref, err)
		}
	}
	if _, err := svc.ResolveNotification(ctx, "M100", "Accepted"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "M100", "En cours"); err != nil {
		t.Fatalf("Status update failed: %v", err)
	}

	chief, err := svc.ChiefDashboard(ctx)
	if err != nil {
		t.Fatalf("ChiefDashboard failed: %v", err)
	}
	if chief.TotalMissions != 3 {
		t.Errorf("Expected 3 missions, got %d", chief.TotalMissions)
	}
	if chief.Accepted != 1 || chief.InProgress != 1 || chief.NewAssignment != 2 {
		t.Errorf("Unexpected chief counters: %+v", chief)
	}

	atsep, err := svc.AtsepDashboard(ctx)
	if err != nil {
		t.Fatalf("AtsepDashboard failed: %v", err)
	}
	if atsep.InProgress != 1 || atsep.NewAssignments != 2 || atsep.Completed != 0 {
		t.Errorf("Unexpected atsep counters: %+v", atsep)
	}
}

func TestMissionService_DroneBoard(t *testing.T) {
	gdb := setupTestDB(t)
	svc := newMissionService(gdb)
	ctx := context.Background()

	if _, err := svc.CreateMission(ctx, createMissionRequest("M100")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.ResolveNotification(ctx, "M100", "Accepted"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "M100", "En cours"); err != nil {
		t.Fatalf("Status update failed: %v", err)
	}

	board, err := svc.DroneBoard(ctx)
	if err != nil {
		t.Fatalf("DroneBoard failed: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("Expected 3 drones, got %d", len(board))
	}

	inMission := 0
	for _, d := range board {
		if d.Status == "In Mission" {
			inMission++
			if d.Airport != "JFK" {
				t.Errorf("Expected airport JFK on active drone, got %s", d.Airport)
			}
		} else if d.Status != "Local Home" {
			t.Errorf("Unexpected drone status %q", d.Status)
		}
	}
	if inMission != 1 {
		t.Errorf("Expected 1 drone in mission, got %d", inMission)
	}
}
