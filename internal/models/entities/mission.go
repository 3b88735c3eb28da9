package entities

import (
	"time"

	"aeromaint/opsdesk/internal/constants"
)

// Mission is a scheduled maintenance task at an airport. Status (lifecycle)
// and Assignment (hand-off) are independent axes.
type Mission struct {
	ID          string                      `gorm:"column:id;primaryKey" json:"id"`
	Reference   string                      `gorm:"column:reference;uniqueIndex" json:"ref"`
	Airport     string                      `gorm:"column:airport" json:"airport"`
	DateStart   string                      `gorm:"column:date_start" json:"date_start"`
	DateFinish  string                      `gorm:"column:date_finish" json:"date_finish"`
	Duration    string                      `gorm:"column:duration" json:"duration"`
	Problem     string                      `gorm:"column:problem" json:"problem"`
	Status      constants.MissionStatus     `gorm:"column:status" json:"status"`
	Assignment  constants.MissionAssignment `gorm:"column:assignment" json:"assignment"`
	GroupChief  string                      `gorm:"column:groupchief" json:"groupchief"`
	Pilot       string                      `gorm:"column:pilot" json:"pilot"`
	DataAnalyst string                      `gorm:"column:data_analyst" json:"data_analyst"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Mission) TableName() string {
	return "missions"
}

// Notification is the ephemeral record signaling a newly created mission
// awaiting ATSEP accept/reject. Removed once the assignment is decided.
type Notification struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	Type       string    `gorm:"column:type" json:"type"`
	MissionRef string    `gorm:"column:mission_ref" json:"mission_ref"`
	Airport    string    `gorm:"column:airport" json:"airport"`
	Problem    string    `gorm:"column:problem" json:"problem"`
	Date       string    `gorm:"column:date" json:"date"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
