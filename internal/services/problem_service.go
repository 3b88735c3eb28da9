package services

import (
	"context"
	"fmt"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/models/entities"
)

// ProblemService handles client problem reports and their triage by the chief.
type ProblemService struct {
	problems *repositories.ProblemRepository
	metrics  *metrics.MetricsRegistry
}

func NewProblemService(problems *repositories.ProblemRepository, metricsReg *metrics.MetricsRegistry) *ProblemService {
	return &ProblemService{problems: problems, metrics: metricsReg}
}

// CreateProblem files a new problem report. The reporter is the authenticated
// client, never a request field.
func (s *ProblemService) CreateProblem(ctx context.Context, reporter string, req dtos.CreateProblemRequest) (*entities.ProblemReport, error) {
	if req.Airport == "" || req.System == "" || req.Description == "" {
		return nil, fmt.Errorf("airport, system and description are required: %w", constants.ErrValidation)
	}

	priority := constants.ProblemPriority(req.Priority)
	if req.Priority == "" {
		priority = constants.ProblemPriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q: %w", req.Priority, constants.ErrValidation)
	}

	problem := &entities.ProblemReport{
		Airport:        req.Airport,
		System:         req.System,
		Priority:       priority,
		Reporter:       reporter,
		Contact:        req.Contact,
		Date:           req.Date,
		Description:    req.Description,
		Impact:         req.Impact,
		AdditionalInfo: req.AdditionalInfo,
		Status:         constants.ProblemStatusNew,
	}

	if err := s.problems.Create(ctx, problem); err != nil {
		return nil, err
	}

	s.metrics.ProblemsReportedTotal.Inc()
	return problem, nil
}

// GetProblem fetches one problem report by id.
func (s *ProblemService) GetProblem(ctx context.Context, id int) (*entities.ProblemReport, error) {
	return s.problems.GetByID(ctx, id)
}

// ListProblems returns problem reports for triage, high priority first.
func (s *ProblemService) ListProblems(ctx context.Context, status, airport string) ([]entities.ProblemReport, error) {
	return s.problems.List(ctx, status, airport)
}

// ListMyProblems returns the reports filed by one client account.
func (s *ProblemService) ListMyProblems(ctx context.Context, reporter string) ([]entities.ProblemReport, error) {
	return s.problems.ListByReporter(ctx, reporter)
}

// UpdateStatus moves a problem through triage (New, In Progress, Resolved).
func (s *ProblemService) UpdateStatus(ctx context.Context, id int, status string) (*entities.ProblemReport, error) {
	next := constants.ProblemStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown problem status %q: %w", status, constants.ErrValidation)
	}

	problem, err := s.problems.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	problem.Status = next
	if err := s.problems.Save(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}
