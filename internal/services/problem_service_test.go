package services

import (
	"context"
	"errors"
	"testing"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
)

func createProblemRequest(airport, priority string) dtos.CreateProblemRequest {
	return dtos.CreateProblemRequest{
		Airport:     airport,
		System:      "ILS",
		Priority:    priority,
		Description: "Glide slope drifting",
	}
}

func TestProblemService_CreateProblem(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProblemService(repositories.NewProblemRepository(gdb), testMetrics)
	ctx := context.Background()

	problem, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("JFK", "High"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if problem.ID == 0 {
		t.Error("Expected store-issued id")
	}
	if problem.Status != constants.ProblemStatusNew {
		t.Errorf("Expected status New, got %s", problem.Status)
	}
	if problem.Reporter != "airport1" {
		t.Errorf("Expected reporter airport1, got %s", problem.Reporter)
	}

	// Priority defaults to Medium when omitted.
	second, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("LAX", ""))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if second.Priority != constants.ProblemPriorityMedium {
		t.Errorf("Expected Medium default, got %s", second.Priority)
	}
	if second.ID == problem.ID {
		t.Error("Expected distinct ids")
	}
}

func TestProblemService_CreateProblem_Validation(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProblemService(repositories.NewProblemRepository(gdb), testMetrics)
	ctx := context.Background()

	req := createProblemRequest("JFK", "High")
	req.Description = ""
	if _, err := svc.CreateProblem(ctx, "airport1", req); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for missing description, got %v", err)
	}

	if _, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("JFK", "Urgent")); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown priority, got %v", err)
	}
}

func TestProblemService_ListProblems_HighPriorityFirst(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProblemService(repositories.NewProblemRepository(gdb), testMetrics)
	ctx := context.Background()

	if _, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("JFK", "Low")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("LAX", "High")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.CreateProblem(ctx, "airport2", createProblemRequest("ORD", "Medium")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	problems, err := svc.ListProblems(ctx, "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("Expected 3 problems, got %d", len(problems))
	}
	if problems[0].Priority != constants.ProblemPriorityHigh {
		t.Errorf("Expected High priority first, got %s", problems[0].Priority)
	}
}

func TestProblemService_UpdateStatus(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProblemService(repositories.NewProblemRepository(gdb), testMetrics)
	ctx := context.Background()

	problem, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("JFK", "High"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, problem.ID, "In Progress")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != constants.ProblemStatusInProgress {
		t.Errorf("Expected In Progress, got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, problem.ID, "Ignored"); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, 9999, "Resolved"); !errors.Is(err, constants.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestProblemService_ListMyProblems(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewProblemService(repositories.NewProblemRepository(gdb), testMetrics)
	ctx := context.Background()

	if _, err := svc.CreateProblem(ctx, "airport1", createProblemRequest("JFK", "High")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.CreateProblem(ctx, "airport2", createProblemRequest("LAX", "Low")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mine, err := svc.ListMyProblems(ctx, "airport1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Reporter != "airport1" {
		t.Errorf("Expected only airport1 reports, got %+v", mine)
	}
}
