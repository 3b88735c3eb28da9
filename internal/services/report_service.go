package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/blob"
	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/models/dtos"
	"aeromaint/opsdesk/internal/models/entities"
)

// FileUpload carries one multipart file into the service layer.
type FileUpload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// ReportService handles mission report submission and the chief's review.
type ReportService struct {
	reports  *repositories.ReportRepository
	missions *repositories.MissionRepository
	files    blob.Store
	metrics  *metrics.MetricsRegistry
}

func NewReportService(
	reports *repositories.ReportRepository,
	missions *repositories.MissionRepository,
	files blob.Store,
	metricsReg *metrics.MetricsRegistry,
) *ReportService {
	return &ReportService{
		reports:  reports,
		missions: missions,
		files:    files,
		metrics:  metricsReg,
	}
}

// SubmitReport files a report against an accepted, unfinished mission and
// closes the mission. The mission ends Done regardless of the technician's
// own completion wording; "Partially Completed" still closes it.
func (s *ReportService) SubmitReport(
	ctx context.Context,
	submittedBy string,
	req dtos.SubmitReportRequest,
	flightProfile, reportFile *FileUpload,
) (*entities.MissionReport, error) {
	if req.MissionRef == "" || req.MissionStatus == "" || req.Findings == "" || req.Actions == "" {
		return nil, fmt.Errorf("ref, mission_status, findings and actions are required: %w", constants.ErrValidation)
	}

	mission, err := s.missions.GetByReference(ctx, req.MissionRef)
	if err != nil {
		return nil, err
	}
	if mission.Assignment != constants.MissionAssignmentAccepted {
		return nil, fmt.Errorf("mission %s has no accepted assignment: %w", req.MissionRef, constants.ErrInvalidTransition)
	}
	if mission.Status == constants.MissionStatusDone {
		return nil, fmt.Errorf("mission %s is already done: %w", req.MissionRef, constants.ErrInvalidTransition)
	}

	report := &entities.MissionReport{
		ID:              uuid.New().String(),
		MissionRef:      req.MissionRef,
		Airport:         req.Airport,
		DateStart:       req.DateStart,
		DateFinish:      req.DateFinish,
		Status:          constants.ReportStatusSubmitted,
		MissionStatus:   req.MissionStatus,
		Pilot:           req.Pilot,
		DataAnalyst:     req.DataAnalyst,
		Findings:        req.Findings,
		Actions:         req.Actions,
		Recommendations: req.Recommendations,
		SubmittedBy:     submittedBy,
	}
	if report.Airport == "" {
		report.Airport = mission.Airport
	}

	if flightProfile != nil {
		key, err := s.storeFile(ctx, report.ID, flightProfile)
		if err != nil {
			return nil, err
		}
		report.FlightProfileName = flightProfile.Name
		report.FlightProfileKey = key
	}
	if reportFile != nil {
		key, err := s.storeFile(ctx, report.ID, reportFile)
		if err != nil {
			return nil, err
		}
		report.ReportFileName = reportFile.Name
		report.ReportFileKey = key
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	mission.Status = constants.MissionStatusDone
	if err := s.missions.Save(ctx, mission); err != nil {
		logging.Error("failed to close mission after report", "ref", mission.Reference, "error", err)
	}

	s.metrics.ReportsSubmittedTotal.Inc()
	return report, nil
}

func (s *ReportService) storeFile(ctx context.Context, reportID string, upload *FileUpload) (string, error) {
	key := path.Join("reports", reportID, upload.Name)
	if _, err := s.files.Put(ctx, key, upload.Content, blob.PutOptions{ContentType: upload.ContentType}); err != nil {
		return "", fmt.Errorf("failed to store attachment %s: %w", upload.Name, err)
	}
	return key, nil
}

// ReviewReport records the chief's verdict on a submitted report.
func (s *ReportService) ReviewReport(ctx context.Context, id string, decision string) (*entities.MissionReport, error) {
	d := constants.ReportStatus(decision)
	if d != constants.ReportStatusApproved && d != constants.ReportStatusNeedsRevision {
		return nil, fmt.Errorf("decision must be Approved or Needs Revision: %w", constants.ErrValidation)
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report.Status = d
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetReport fetches one report by id.
func (s *ReportService) GetReport(ctx context.Context, id string) (*entities.MissionReport, error) {
	return s.reports.GetByID(ctx, id)
}

// GetReportByMission fetches the report filed against a mission reference.
func (s *ReportService) GetReportByMission(ctx context.Context, ref string) (*entities.MissionReport, error) {
	return s.reports.GetByMissionRef(ctx, ref)
}

// ListReports returns reports, optionally narrowed to one review status.
func (s *ReportService) ListReports(ctx context.Context, status string) ([]entities.MissionReport, error) {
	return s.reports.List(ctx, status)
}

// ListMyReports returns the reports filed by one technician.
func (s *ReportService) ListMyReports(ctx context.Context, username string) ([]entities.MissionReport, error) {
	return s.reports.ListBySubmitter(ctx, username)
}

// OpenAttachment streams a stored report attachment. Kind selects between the
// flight profile and the report file.
func (s *ReportService) OpenAttachment(ctx context.Context, id string, kind string) (string, blob.Info, io.ReadCloser, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return "", blob.Info{}, nil, err
	}

	var name, key string
	switch kind {
	case "flight_profile":
		name, key = report.FlightProfileName, report.FlightProfileKey
	case "report_file":
		name, key = report.ReportFileName, report.ReportFileKey
	default:
		return "", blob.Info{}, nil, fmt.Errorf("unknown attachment kind %q: %w", kind, constants.ErrValidation)
	}
	if key == "" {
		return "", blob.Info{}, nil, fmt.Errorf("report %s has no %s attachment: %w", id, kind, constants.ErrNotFound)
	}

	info, rc, err := s.files.Get(ctx, key)
	if err != nil {
		return "", blob.Info{}, nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	return name, info, rc, nil
}
