package dtos

// APIResponse is the standard envelope written by common.RespondSuccess /
// common.RespondError.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// ChiefDashboard mirrors the mission-tracking metric cards plus the chief's
// notification badge (new problems + unreviewed reports).
type ChiefDashboard struct {
	TotalMissions    int `json:"total_missions"`
	Accepted         int `json:"accepted"`
	InProgress       int `json:"in_progress"`
	NewAssignment    int `json:"new_assignment"`
	Completed        int `json:"completed"`
	NewProblems      int `json:"new_problems"`
	PendingReports   int `json:"pending_reports"`
	NotificationBadge int `json:"notification_badge"`
}

// AtsepDashboard mirrors the ATSEP summary cards.
type AtsepDashboard struct {
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	NewAssignments int `json:"new_assignments"`
}

// DroneStatus is a derived row on the drone location board.
type DroneStatus struct {
	DroneID   string `json:"drone_id"`
	Status    string `json:"status"` // "In Mission" or "Local Home"
	Airport   string `json:"airport,omitempty"`
	Duration  string `json:"duration,omitempty"`
	DateStart string `json:"date_start,omitempty"`
}
