package constants

type (
	MissionStatus     string
	MissionAssignment string
	ReportStatus      string
	ProblemStatus     string
	ProblemPriority   string
	APIStatus         string
	CachePrefix       string
)

const (
	// Mission lifecycle. "En cours" is kept verbatim from the portal vocabulary.
	MissionStatusNew     MissionStatus = "New"
	MissionStatusEnCours MissionStatus = "En cours"
	MissionStatusDone    MissionStatus = "Done"

	MissionAssignmentNew      MissionAssignment = "New"
	MissionAssignmentAccepted MissionAssignment = "Accepted"
	MissionAssignmentRejected MissionAssignment = "Rejected"

	ReportStatusSubmitted     ReportStatus = "Submitted"
	ReportStatusApproved      ReportStatus = "Approved"
	ReportStatusNeedsRevision ReportStatus = "Needs Revision"

	ProblemStatusNew        ProblemStatus = "New"
	ProblemStatusInProgress ProblemStatus = "In Progress"
	ProblemStatusResolved   ProblemStatus = "Resolved"

	ProblemPriorityHigh   ProblemPriority = "High"
	ProblemPriorityMedium ProblemPriority = "Medium"
	ProblemPriorityLow    ProblemPriority = "Low"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSession  CachePrefix = "SESSION_"
	CachePrefixLowStock CachePrefix = "LOW_STOCK"
)

// NotificationTypeNewMission tags the hand-off record emitted on mission creation.
const NotificationTypeNewMission = "new_mission"

// Document categories for the downloads area.
const (
	DocumentTypeMission   = "Mission"
	DocumentTypeChecklist = "Checklist"
	DocumentTypeManual    = "Manual"
	DocumentTypeGeneral   = "General"
)

func (s MissionStatus) Valid() bool {
	switch s {
	case MissionStatusNew, MissionStatusEnCours, MissionStatusDone:
		return true
	}
	return false
}

func (a MissionAssignment) Valid() bool {
	switch a {
	case MissionAssignmentNew, MissionAssignmentAccepted, MissionAssignmentRejected:
		return true
	}
	return false
}

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusSubmitted, ReportStatusApproved, ReportStatusNeedsRevision:
		return true
	}
	return false
}

func (s ProblemStatus) Valid() bool {
	switch s {
	case ProblemStatusNew, ProblemStatusInProgress, ProblemStatusResolved:
		return true
	}
	return false
}

func (p ProblemPriority) Valid() bool {
	switch p {
	case ProblemPriorityHigh, ProblemPriorityMedium, ProblemPriorityLow:
		return true
	}
	return false
}
