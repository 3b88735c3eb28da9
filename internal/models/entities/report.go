package entities

import (
	"time"

	"aeromaint/opsdesk/internal/constants"
)

// MissionReport is filed by ATSEP against an accepted mission. Status tracks
// the chief's review; MissionStatus is the technician's free-form completion
// state and has no effect on the mission itself.
type MissionReport struct {
	ID              string                 `gorm:"column:id;primaryKey" json:"id"`
	MissionRef      string                 `gorm:"column:mission_ref;index" json:"ref"`
	Airport         string                 `gorm:"column:airport" json:"airport"`
	DateStart       string                 `gorm:"column:date_start" json:"date_start"`
	DateFinish      string                 `gorm:"column:date_finish" json:"date_finish"`
	Status          constants.ReportStatus `gorm:"column:status" json:"status"`
	MissionStatus   string                 `gorm:"column:mission_status" json:"mission_status"`
	Pilot           string                 `gorm:"column:pilot" json:"pilot"`
	DataAnalyst     string                 `gorm:"column:data_analyst" json:"data_analyst"`
	Findings        string                 `gorm:"column:findings" json:"findings"`
	Actions         string                 `gorm:"column:actions" json:"actions"`
	Recommendations string                 `gorm:"column:recommendations" json:"recommendations"`
	SubmittedBy     string                 `gorm:"column:submitted_by" json:"submitted_by"`

	// Optional attachments held in the blob store.
	FlightProfileName string `gorm:"column:flight_profile_name" json:"flight_profile_name,omitempty"`
	FlightProfileKey  string `gorm:"column:flight_profile_key" json:"-"`
	ReportFileName    string `gorm:"column:report_file_name" json:"report_file_name,omitempty"`
	ReportFileKey     string `gorm:"column:report_file_key" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (MissionReport) TableName() string {
	return "mission_reports"
}
