package dtos

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateMissionRequest struct {
	Reference   string `json:"ref"`
	Airport     string `json:"airport"`
	DateStart   string `json:"date_start"`
	DateFinish  string `json:"date_finish"`
	Duration    string `json:"duration"`
	Problem     string `json:"problem"`
	GroupChief  string `json:"groupchief"`
	Pilot       string `json:"pilot"`
	DataAnalyst string `json:"data_analyst"`
}

type UpdateMissionRequest struct {
	Airport     *string `json:"airport"`
	DateStart   *string `json:"date_start"`
	DateFinish  *string `json:"date_finish"`
	Duration    *string `json:"duration"`
	Problem     *string `json:"problem"`
	GroupChief  *string `json:"groupchief"`
	Pilot       *string `json:"pilot"`
	DataAnalyst *string `json:"data_analyst"`
}

type UpdateMissionStatusRequest struct {
	Status string `json:"status"`
}

// ResolveNotificationRequest carries the ATSEP accept/reject decision for a
// pending mission hand-off.
type ResolveNotificationRequest struct {
	Decision string `json:"decision"` // "Accepted" or "Rejected"
}

type SubmitReportRequest struct {
	MissionRef      string `json:"ref"`
	Airport         string `json:"airport"`
	DateStart       string `json:"date_start"`
	DateFinish      string `json:"date_finish"`
	MissionStatus   string `json:"mission_status"` // Completed / Partially Completed / Need Follow-up
	Pilot           string `json:"pilot"`
	DataAnalyst     string `json:"data_analyst"`
	Findings        string `json:"findings"`
	Actions         string `json:"actions"`
	Recommendations string `json:"recommendations"`
}

type ReviewReportRequest struct {
	Decision string `json:"decision"` // "Approved" or "Needs Revision"
}

type CreateProblemRequest struct {
	Airport        string `json:"airport"`
	System         string `json:"system"`
	Priority       string `json:"priority"`
	Reporter       string `json:"reporter"`
	Contact        string `json:"contact"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	AdditionalInfo string `json:"additional_info"`
}

type UpdateProblemStatusRequest struct {
	Status string `json:"status"`
}

type UpsertPartRequest struct {
	PartID      string `json:"part_id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	Quantity    int    `json:"qty"`
	Minimum     int    `json:"min"`
}

type UsePartRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
	Note     string `json:"note"`
}

type CreateMaintenanceRequest struct {
	Equipment   string `json:"equipment"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Technician  string `json:"technician"`
	Status      string `json:"status"`
	NextDate    string `json:"next_date"`
	PartsChange string `json:"parts"`
	Description string `json:"desc"`
	Findings    string `json:"findings"`
	Actions     string `json:"actions"`
}

type UpsertUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Username string `json:"username"`
	Password string `json:"password"`
}
