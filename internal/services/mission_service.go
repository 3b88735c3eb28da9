package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/models/entities"
)

// droneIDs is the fixed fleet shown on the location board.
var droneIDs = []string{"D001", "D002", "D003"}

// MissionService owns the mission lifecycle: creation with hand-off
// notification, the ATSEP accept/reject decision, and status progression.
type MissionService struct {
	missions      *repositories.MissionRepository
	notifications *repositories.NotificationRepository
	reports       *repositories.ReportRepository
	problems      *repositories.ProblemRepository
	metrics       *metrics.MetricsRegistry
}

func NewMissionService(
	missions *repositories.MissionRepository,
	notifications *repositories.NotificationRepository,
	reports *repositories.ReportRepository,
	problems *repositories.ProblemRepository,
	metricsReg *metrics.MetricsRegistry,
) *MissionService {
	return &MissionService{
		missions:      missions,
		notifications: notifications,
		reports:       reports,
		problems:      problems,
		metrics:       metricsReg,
	}
}

// CreateMission registers a mission and emits the hand-off notification in
// one go. The reference must be unique across all missions ever created.
func (s *MissionService) CreateMission(ctx context.Context, req dtos.CreateMissionRequest) (*entities.Mission, error) {
	if req.Reference == "" || req.Airport == "" || req.DateStart == "" || req.Duration == "" || req.Problem == "" {
		return nil, fmt.Errorf("ref, airport, date_start, duration and problem are required: %w", constants.ErrValidation)
	}

	mission := &entities.Mission{
		ID:          uuid.New().String(),
		Reference:   req.Reference,
		Airport:     req.Airport,
		DateStart:   req.DateStart,
		DateFinish:  req.DateFinish,
		Duration:    req.Duration,
		Problem:     req.Problem,
		Status:      constants.MissionStatusNew,
		Assignment:  constants.MissionAssignmentNew,
		GroupChief:  req.GroupChief,
		Pilot:       req.Pilot,
		DataAnalyst: req.DataAnalyst,
	}

	if err := s.missions.Create(ctx, mission); err != nil {
		return nil, err
	}

	notification := &entities.Notification{
		ID:         uuid.New().String(),
		Type:       constants.NotificationTypeNewMission,
		MissionRef: mission.Reference,
		Airport:    mission.Airport,
		Problem:    mission.Problem,
		Date:       mission.DateStart,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		// Mission row exists either way; the pending list is recoverable
		// from missions with assignment New.
		logging.Error("failed to emit mission notification", "ref", mission.Reference, "error", err)
	}

	s.metrics.MissionsCreatedTotal.Inc()
	return mission, nil
}

// GetMission fetches one mission by reference.
func (s *MissionService) GetMission(ctx context.Context, ref string) (*entities.Mission, error) {
	return s.missions.GetByReference(ctx, ref)
}

// ListMissions returns missions matching the filter.
func (s *MissionService) ListMissions(ctx context.Context, filter repositories.MissionFilter) ([]entities.Mission, error) {
	return s.missions.List(ctx, filter)
}

// UpdateMission applies partial field edits. Status and assignment have their
// own dedicated paths and cannot be touched here.
func (s *MissionService) UpdateMission(ctx context.Context, ref string, req dtos.UpdateMissionRequest) (*entities.Mission, error) {
	mission, err := s.missions.GetByReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	if req.Airport != nil {
		mission.Airport = *req.Airport
	}
	if req.DateStart != nil {
		mission.DateStart = *req.DateStart
	}
	if req.DateFinish != nil {
		mission.DateFinish = *req.DateFinish
	}
	if req.Duration != nil {
		mission.Duration = *req.Duration
	}
	if req.Problem != nil {
		mission.Problem = *req.Problem
	}
	if req.GroupChief != nil {
		mission.GroupChief = *req.GroupChief
	}
	if req.Pilot != nil {
		mission.Pilot = *req.Pilot
	}
	if req.DataAnalyst != nil {
		mission.DataAnalyst = *req.DataAnalyst
	}

	if err := s.missions.Save(ctx, mission); err != nil {
		return nil, err
	}
	return mission, nil
}

// UpdateStatus advances the mission lifecycle. Transitions run forward only
// (New, En cours, Done); a mission cannot leave New before the assignment is
// accepted, and a rejected mission is frozen.
func (s *MissionService) UpdateStatus(ctx context.Context, ref string, status string) (*entities.Mission, error) {
	next := constants.MissionStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown mission status %q: %w", status, constants.ErrValidation)
	}

	mission, err := s.missions.GetByReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	if mission.Status == next {
		return mission, nil
	}

	if mission.Assignment == constants.MissionAssignmentRejected {
		return nil, fmt.Errorf("mission %s was rejected: %w", ref, constants.ErrInvalidTransition)
	}
	if mission.Status == constants.MissionStatusNew && mission.Assignment != constants.MissionAssignmentAccepted {
		return nil, fmt.Errorf("mission %s has no accepted assignment: %w", ref, constants.ErrInvalidTransition)
	}
	if statusRank(next) < statusRank(mission.Status) {
		return nil, fmt.Errorf("mission %s cannot move from %s back to %s: %w",
			ref, mission.Status, next, constants.ErrInvalidTransition)
	}

	mission.Status = next
	if err := s.missions.Save(ctx, mission); err != nil {
		return nil, err
	}
	return mission, nil
}

func statusRank(s constants.MissionStatus) int {
	switch s {
	case constants.MissionStatusNew:
		return 0
	case constants.MissionStatusEnCours:
		return 1
	default:
		return 2
	}
}

// DeleteMission removes a mission and any lingering hand-off notification.
func (s *MissionService) DeleteMission(ctx context.Context, ref string) error {
	if err := s.missions.Delete(ctx, ref); err != nil {
		return err
	}
	if _, err := s.notifications.DeleteByMissionRef(ctx, ref); err != nil {
		logging.Error("failed to clear notifications", "ref", ref, "error", err)
	}
	return nil
}

// ListNotifications returns pending hand-off notifications, oldest first.
func (s *MissionService) ListNotifications(ctx context.Context) ([]entities.Notification, error) {
	return s.notifications.ListPending(ctx)
}

// ResolveNotification applies the ATSEP accept/reject decision. Resolving an
// already-decided mission is a no-op that still clears any lingering
// notification, so retries and double-clicks are harmless.
func (s *MissionService) ResolveNotification(ctx context.Context, ref string, decision string) (*entities.Mission, error) {
	d := constants.MissionAssignment(decision)
	if d != constants.MissionAssignmentAccepted && d != constants.MissionAssignmentRejected {
		return nil, fmt.Errorf("decision must be Accepted or Rejected: %w", constants.ErrValidation)
	}

	mission, err := s.missions.GetByReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	if mission.Assignment == constants.MissionAssignmentNew {
		mission.Assignment = d
		if err := s.missions.Save(ctx, mission); err != nil {
			return nil, err
		}
	}

	if _, err := s.notifications.DeleteByMissionRef(ctx, ref); err != nil {
		logging.Error("failed to clear notifications", "ref", ref, "error", err)
	}
	return mission, nil
}

// ChiefDashboard aggregates the mission-tracking cards plus the chief's
// notification badge (new problems and unreviewed reports).
func (s *MissionService) ChiefDashboard(ctx context.Context) (*dtos.ChiefDashboard, error) {
	missions, err := s.missions.List(ctx, repositories.MissionFilter{})
	if err != nil {
		return nil, err
	}

	dash := &dtos.ChiefDashboard{TotalMissions: len(missions)}
	for _, m := range missions {
		if m.Assignment == constants.MissionAssignmentAccepted {
			dash.Accepted++
		}
		if m.Assignment == constants.MissionAssignmentNew {
			dash.NewAssignment++
		}
		switch m.Status {
		case constants.MissionStatusEnCours:
			dash.InProgress++
		case constants.MissionStatusDone:
			dash.Completed++
		}
	}

	newProblems, err := s.problems.CountByStatus(ctx, constants.ProblemStatusNew)
	if err != nil {
		return nil, err
	}
	dash.NewProblems = int(newProblems)

	pending, err := s.reports.List(ctx, string(constants.ReportStatusSubmitted))
	if err != nil {
		return nil, err
	}
	dash.PendingReports = len(pending)
	dash.NotificationBadge = dash.NewProblems + dash.PendingReports

	return dash, nil
}

// AtsepDashboard aggregates the technician's summary cards.
func (s *MissionService) AtsepDashboard(ctx context.Context) (*dtos.AtsepDashboard, error) {
	missions, err := s.missions.List(ctx, repositories.MissionFilter{})
	if err != nil {
		return nil, err
	}

	dash := &dtos.AtsepDashboard{}
	for _, m := range missions {
		switch m.Status {
		case constants.MissionStatusDone:
			dash.Completed++
		case constants.MissionStatusEnCours:
			dash.InProgress++
		}
		if m.Assignment == constants.MissionAssignmentNew {
			dash.NewAssignments++
		}
	}
	return dash, nil
}

// DroneBoard derives the location board: each in-progress mission occupies
// one drone of the fixed fleet; the rest sit at home.
func (s *MissionService) DroneBoard(ctx context.Context) ([]dtos.DroneStatus, error) {
	active, err := s.missions.List(ctx, repositories.MissionFilter{
		Status: string(constants.MissionStatusEnCours),
	})
	if err != nil {
		return nil, err
	}

	board := make([]dtos.DroneStatus, 0, len(droneIDs))
	for i, id := range droneIDs {
		if i < len(active) {
			board = append(board, dtos.DroneStatus{
				DroneID:   id,
				Status:    "In Mission",
				Airport:   active[i].Airport,
				Duration:  active[i].Duration,
				DateStart: active[i].DateStart,
			})
			continue
		}
		board = append(board, dtos.DroneStatus{DroneID: id, Status: "Local Home"})
	}
	return board, nil
}
